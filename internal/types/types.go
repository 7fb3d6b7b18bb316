package types

import "time"

// ChannelType identifies a messaging platform connected to a business.
type ChannelType string

const (
	ChannelWhatsApp  ChannelType = "whatsapp"
	ChannelInstagram ChannelType = "instagram"
	ChannelMessenger ChannelType = "messenger"
	ChannelTwitter   ChannelType = "twitter"
	ChannelShopify   ChannelType = "shopify"
	ChannelWebWidget ChannelType = "web_widget"
)

// Integration status values. There is no error or expired state; an
// integration is either usable or it is not.
const (
	IntegrationConnected    = "connected"
	IntegrationDisconnected = "disconnected"
)

// Lead status values mutated manually from the CRM.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusHot       = "hot"
	LeadStatusWarm      = "warm"
	LeadStatusCold      = "cold"
	LeadStatusConverted = "converted"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Business is a tenant workspace. The API key is generated once at
// creation and never rotated.
type Business struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	BusinessName string    `json:"businessName"`
	Industry     string    `json:"industry"`
	Plan         string    `json:"plan"`
	APIKey       string    `json:"apiKey"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Subscription struct {
	ID           string     `json:"id"`
	BusinessID   string     `json:"businessId"`
	Plan         string     `json:"plan"`
	Status       string     `json:"status"`
	CreditsTotal int        `json:"creditsTotal"`
	CreditsUsed  int        `json:"creditsUsed"`
	PeriodStart  time.Time  `json:"periodStart"`
	PeriodEnd    *time.Time `json:"periodEnd,omitempty"`
}

type Lead struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"businessId"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email,omitempty"`
	Message    string    `json:"message,omitempty"`
	Source     string    `json:"source"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type BotSettings struct {
	ID             string `json:"id"`
	BusinessID     string `json:"businessId"`
	SystemPrompt   string `json:"systemPrompt"`
	Theme          string `json:"theme"`
	WelcomeMessage string `json:"welcomeMessage"`
	ModelName      string `json:"modelName"`
}

type IntegrationChannel struct {
	ID            string     `json:"id"`
	BusinessID    string     `json:"businessId"`
	Channel       string     `json:"channel"`
	Status        string     `json:"status"`
	Credentials   string     `json:"-"`
	WebhookSecret string     `json:"-"`
	WebhookURL    string     `json:"webhookUrl"`
	LastSyncedAt  *time.Time `json:"lastSyncedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// SanitizedIntegration is what the dashboard sees: connection state
// without credential values.
type SanitizedIntegration struct {
	ID             string     `json:"id"`
	BusinessID     string     `json:"businessId"`
	Channel        string     `json:"channel"`
	Status         string     `json:"status"`
	WebhookURL     string     `json:"webhookUrl"`
	LastSyncedAt   *time.Time `json:"lastSyncedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	HasCredentials bool       `json:"hasCredentials"`
}

func (i IntegrationChannel) Sanitized() SanitizedIntegration {
	return SanitizedIntegration{
		ID:             i.ID,
		BusinessID:     i.BusinessID,
		Channel:        i.Channel,
		Status:         i.Status,
		WebhookURL:     i.WebhookURL,
		LastSyncedAt:   i.LastSyncedAt,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
		HasCredentials: i.Credentials != "",
	}
}

type Conversation struct {
	ID               string    `json:"id"`
	BusinessID       string    `json:"businessId"`
	SessionID        string    `json:"sessionId"`
	Channel          string    `json:"channel"`
	ExternalThreadID string    `json:"externalThreadId,omitempty"`
	Messages         string    `json:"messages"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ChatMessage is a single role-tagged turn sent to the completion API.
type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant system"`
	Content string `json:"content" binding:"required"`
}
