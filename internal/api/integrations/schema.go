package integrations

// ConnectRequest connects or reconfigures one channel for a business.
// Credentials and the webhook secret are optional; reconnecting without
// them keeps the stored values.
type ConnectRequest struct {
	Channel       string `json:"channel" binding:"required,oneof=whatsapp instagram messenger twitter shopify web_widget"`
	Credentials   string `json:"credentials"`
	WebhookSecret string `json:"webhookSecret"`
}
