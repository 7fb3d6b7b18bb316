package channels

import (
	"encoding/json"
	"net/http"

	"github.com/SkylineKAI/platform-api/internal/types"
)

// WebAdapter covers the generic widget callers and any channel without a
// dedicated adapter: plain JSON with message and sessionId fields.
type WebAdapter struct {
	jsonEncoder
}

func (*WebAdapter) Channel() types.ChannelType {
	return types.ChannelWebWidget
}

type webPayload struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

func (*WebAdapter) Extract(body []byte, _ http.Header) (Result, error) {
	var payload webPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return Result{}, err
	}

	senderID := payload.SessionID
	if senderID == "" {
		senderID = "anonymous"
	}
	return Result{Text: payload.Message, SenderID: senderID}, nil
}
