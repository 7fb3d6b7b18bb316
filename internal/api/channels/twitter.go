package channels

import (
	"encoding/json"
	"net/http"

	"github.com/SkylineKAI/platform-api/internal/types"
)

// TwitterAdapter handles Twitter/X Account Activity direct messages:
// text and sender id under direct_message_events[0].message_create.
// Events of other kinds extract to nothing and are acknowledged.
type TwitterAdapter struct {
	jsonEncoder
}

func (*TwitterAdapter) Channel() types.ChannelType {
	return types.ChannelTwitter
}

type twitterPayload struct {
	DirectMessageEvents []struct {
		MessageCreate struct {
			SenderID    string `json:"sender_id"`
			MessageData struct {
				Text string `json:"text"`
			} `json:"message_data"`
		} `json:"message_create"`
	} `json:"direct_message_events"`
}

func (*TwitterAdapter) Extract(body []byte, _ http.Header) (Result, error) {
	var payload twitterPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return Result{}, err
	}

	if len(payload.DirectMessageEvents) == 0 {
		return Result{}, nil
	}

	event := payload.DirectMessageEvents[0].MessageCreate
	return Result{Text: event.MessageData.Text, SenderID: event.SenderID}, nil
}
