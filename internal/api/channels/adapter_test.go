package channels_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkylineKAI/platform-api/internal/api/channels"
	"github.com/SkylineKAI/platform-api/internal/types"
)

func TestResolveKnownChannels(t *testing.T) {
	for _, name := range []string{"whatsapp", "instagram", "messenger", "twitter", "shopify", "web_widget"} {
		adapter := channels.Resolve(name)
		require.NotNil(t, adapter)
		assert.Equal(t, types.ChannelType(name), adapter.Channel())
	}
}

func TestResolveUnknownChannelFallsBackToWeb(t *testing.T) {
	adapter := channels.Resolve("telegram")
	require.NotNil(t, adapter)
	assert.Equal(t, types.ChannelWebWidget, adapter.Channel())
}

func TestWhatsAppExtractForm(t *testing.T) {
	adapter := channels.Resolve("whatsapp")
	header := http.Header{"Content-Type": []string{"application/x-www-form-urlencoded"}}

	result, err := adapter.Extract([]byte("From=%2B1555&Body=Hi"), header)
	require.NoError(t, err)
	assert.Equal(t, "Hi", result.Text)
	assert.Equal(t, "+1555", result.SenderID)
}

func TestWhatsAppExtractJSON(t *testing.T) {
	adapter := channels.Resolve("whatsapp")
	header := http.Header{"Content-Type": []string{"application/json"}}

	result, err := adapter.Extract([]byte(`{"From":"whatsapp:+1555","Body":"hello there"}`), header)
	require.NoError(t, err)
	assert.Equal(t, "hello there", result.Text)
	assert.Equal(t, "whatsapp:+1555", result.SenderID)
}

func TestTwiMLFormat(t *testing.T) {
	got := channels.TwiML("Hello!")
	want := "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<Response>\n  <Message>Hello!</Message>\n</Response>"
	assert.Equal(t, want, got)
}

func TestTwiMLEscapesMarkup(t *testing.T) {
	got := channels.TwiML(`2 < 3 & "quotes"`)
	assert.Contains(t, got, "2 &lt; 3 &amp; &#34;quotes&#34;")
	assert.NotContains(t, got, `2 < 3`)
}

func TestMetaExtract(t *testing.T) {
	adapter := channels.Resolve("instagram")

	body := []byte(`{"object":"instagram","entry":[{"messaging":[{"sender":{"id":"ig-42"},"message":{"text":"is the villa still available?"}}]}]}`)
	result, err := adapter.Extract(body, nil)
	require.NoError(t, err)
	assert.Equal(t, "is the villa still available?", result.Text)
	assert.Equal(t, "ig-42", result.SenderID)
}

func TestMetaExtractDeliveryReceiptIsEmpty(t *testing.T) {
	adapter := channels.Resolve("messenger")

	result, err := adapter.Extract([]byte(`{"object":"page","entry":[{"messaging":[]}]}`), nil)
	require.NoError(t, err)
	assert.Empty(t, result.Text)
	assert.Nil(t, result.Lead)
}

func TestTwitterExtract(t *testing.T) {
	adapter := channels.Resolve("twitter")

	body := []byte(`{"direct_message_events":[{"message_create":{"sender_id":"tw-7","message_data":{"text":"dm me the price"}}}]}`)
	result, err := adapter.Extract(body, nil)
	require.NoError(t, err)
	assert.Equal(t, "dm me the price", result.Text)
	assert.Equal(t, "tw-7", result.SenderID)
}

func TestShopifyExtractOrderBecomesLead(t *testing.T) {
	adapter := channels.Resolve("shopify")
	header := http.Header{}
	header.Set(channels.ShopifyTopicHeader, "orders/create")

	body := []byte(`{"order_number":1001,"total_price":"249.99","currency":"USD","customer":{"first_name":"Jane","last_name":"Doe","email":"jane@example.com","phone":"+1555"}}`)
	result, err := adapter.Extract(body, header)
	require.NoError(t, err)
	require.NotNil(t, result.Lead)

	assert.Equal(t, "Jane Doe", result.Lead.Name)
	assert.Equal(t, "jane@example.com", result.Lead.Email)
	assert.Equal(t, "+1555", result.Lead.Phone)
	assert.Equal(t, "Order #1001 - Total: 249.99 USD", result.Lead.Message)
	assert.Equal(t, "shopify", result.Lead.Source)
	assert.Equal(t, types.LeadStatusNew, result.Lead.Status)
	assert.Empty(t, result.Text)
}

func TestShopifyExtractAnonymousCustomer(t *testing.T) {
	adapter := channels.Resolve("shopify")
	header := http.Header{}
	header.Set(channels.ShopifyTopicHeader, "orders/paid")

	body := []byte(`{"order_number":7,"total_price":"10.00","currency":"EUR","customer":{"first_name":"","last_name":""}}`)
	result, err := adapter.Extract(body, header)
	require.NoError(t, err)
	require.NotNil(t, result.Lead)
	assert.Equal(t, "Shopify Customer", result.Lead.Name)
}

func TestShopifyExtractIgnoresNonOrderTopics(t *testing.T) {
	adapter := channels.Resolve("shopify")
	header := http.Header{}
	header.Set(channels.ShopifyTopicHeader, "products/update")

	result, err := adapter.Extract([]byte(`{"id":1}`), header)
	require.NoError(t, err)
	assert.Nil(t, result.Lead)
	assert.Empty(t, result.Text)
}

func TestWebExtractDefaultsSender(t *testing.T) {
	adapter := channels.Resolve("web_widget")

	result, err := adapter.Extract([]byte(`{"message":"hi"}`), nil)
	require.NoError(t, err)
	assert.Equal(t, "hi", result.Text)
	assert.Equal(t, "anonymous", result.SenderID)

	result, err = adapter.Extract([]byte(`{"message":"hi","sessionId":"sess-1"}`), nil)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", result.SenderID)
}
