package channels

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/SkylineKAI/platform-api/internal/loaders"
	"github.com/SkylineKAI/platform-api/internal/types"
)

// ShopifyTopicHeader carries the commerce event topic, e.g. "orders/create".
const ShopifyTopicHeader = "X-Shopify-Topic"

// ShopifyAdapter converts order webhooks into CRM leads. There is no
// chat message to extract, so the AI pipeline is bypassed entirely;
// non-order topics extract to nothing and are acknowledged.
type ShopifyAdapter struct {
	jsonEncoder
}

func (*ShopifyAdapter) Channel() types.ChannelType {
	return types.ChannelShopify
}

type shopifyOrder struct {
	OrderNumber int64  `json:"order_number"`
	TotalPrice  string `json:"total_price"`
	Currency    string `json:"currency"`
	Customer    *struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
	} `json:"customer"`
}

func (*ShopifyAdapter) Extract(body []byte, header http.Header) (Result, error) {
	topic := header.Get(ShopifyTopicHeader)
	if !strings.Contains(topic, "orders") {
		return Result{}, nil
	}

	var order shopifyOrder
	if err := json.Unmarshal(body, &order); err != nil {
		return Result{}, err
	}
	if order.Customer == nil {
		return Result{}, nil
	}

	name := strings.TrimSpace(order.Customer.FirstName + " " + order.Customer.LastName)
	if name == "" {
		name = "Shopify Customer"
	}

	return Result{
		Lead: &loaders.LeadInput{
			Name:    name,
			Email:   order.Customer.Email,
			Phone:   order.Customer.Phone,
			Message: fmt.Sprintf("Order #%d - Total: %s %s", order.OrderNumber, order.TotalPrice, order.Currency),
			Source:  string(types.ChannelShopify),
			Status:  types.LeadStatusNew,
		},
	}, nil
}
