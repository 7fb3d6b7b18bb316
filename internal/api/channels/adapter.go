package channels

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SkylineKAI/platform-api/internal/llm"
	"github.com/SkylineKAI/platform-api/internal/loaders"
	"github.com/SkylineKAI/platform-api/internal/types"
)

// Result is the normalized outcome of parsing a raw webhook body.
//
// A zero Result means the payload carried nothing actionable; the
// dispatcher acknowledges it without invoking the completion API.
// Lead is set only by commerce channels that convert events straight
// into CRM records, bypassing the AI pipeline.
type Result struct {
	Text     string
	SenderID string
	Lead     *loaders.LeadInput
}

// Adapter normalizes one platform's webhook payloads and encodes replies
// in the platform's expected wire format. One implementation is
// registered per channel; unknown channels fall back to the generic web
// adapter.
type Adapter interface {
	// Channel returns the channel type this adapter serves.
	Channel() types.ChannelType

	// Extract pulls the user message and sender identifier out of a raw
	// webhook body. Channel-specific headers (e.g. the Shopify topic)
	// are consulted where the body alone is not enough.
	Extract(body []byte, header http.Header) (Result, error)

	// EncodeReply writes the model reply in the channel's wire format.
	EncodeReply(c *gin.Context, reply, senderID string)

	// EncodeUnavailable writes the channel-appropriate response for a
	// missing AI integration.
	EncodeUnavailable(c *gin.Context)
}

var registry = map[types.ChannelType]Adapter{
	types.ChannelWhatsApp:  &WhatsAppAdapter{},
	types.ChannelInstagram: &MetaAdapter{channel: types.ChannelInstagram},
	types.ChannelMessenger: &MetaAdapter{channel: types.ChannelMessenger},
	types.ChannelTwitter:   &TwitterAdapter{},
	types.ChannelShopify:   &ShopifyAdapter{},
	types.ChannelWebWidget: &WebAdapter{},
}

// Resolve returns the adapter for name. Unrecognized channels get the
// generic web adapter so widget-style callers keep working.
func Resolve(name string) Adapter {
	if adapter, ok := registry[types.ChannelType(name)]; ok {
		return adapter
	}
	return registry[types.ChannelWebWidget]
}

// jsonEncoder is the default reply encoding shared by every channel that
// speaks plain JSON.
type jsonEncoder struct{}

func (jsonEncoder) EncodeReply(c *gin.Context, reply, senderID string) {
	c.JSON(http.StatusOK, gin.H{
		"reply":    reply,
		"senderId": senderID,
	})
}

func (jsonEncoder) EncodeUnavailable(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"error":     "AI service not configured",
		"reply":     llm.UnavailableReply,
		"timestamp": time.Now().UTC(),
	})
}
