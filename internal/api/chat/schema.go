package chat

import "github.com/SkylineKAI/platform-api/internal/types"

// Request drives the dashboard chat tester. Either a full history or a
// single message must be present.
type Request struct {
	History    []types.ChatMessage `json:"history"`
	Message    string              `json:"message"`
	BusinessID string              `json:"businessId"`
}

type Response struct {
	Reply string `json:"reply"`
}

// WidgetRequest is posted by the embedded widget, authenticated with the
// business API key header rather than a user session.
type WidgetRequest struct {
	History   []types.ChatMessage `json:"history" binding:"required"`
	SessionID string              `json:"sessionId"`
}

type WidgetResponse struct {
	Reply          string `json:"reply"`
	WelcomeMessage string `json:"welcomeMessage"`
}
