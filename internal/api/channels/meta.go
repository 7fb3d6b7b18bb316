package channels

import (
	"encoding/json"
	"net/http"

	"github.com/SkylineKAI/platform-api/internal/types"
)

// MetaAdapter serves both Instagram and Messenger, which share the Meta
// webhook envelope: message text and sender id live under
// entry[0].messaging[0]. Payloads without that path (delivery receipts,
// read events) extract to nothing and are acknowledged as a no-op.
type MetaAdapter struct {
	jsonEncoder
	channel types.ChannelType
}

func (a *MetaAdapter) Channel() types.ChannelType {
	return a.channel
}

type metaPayload struct {
	Object string `json:"object"`
	Entry  []struct {
		Messaging []struct {
			Sender struct {
				ID string `json:"id"`
			} `json:"sender"`
			Message struct {
				Text string `json:"text"`
			} `json:"message"`
		} `json:"messaging"`
	} `json:"entry"`
}

func (*MetaAdapter) Extract(body []byte, _ http.Header) (Result, error) {
	var payload metaPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return Result{}, err
	}

	if len(payload.Entry) == 0 || len(payload.Entry[0].Messaging) == 0 {
		return Result{}, nil
	}

	event := payload.Entry[0].Messaging[0]
	return Result{Text: event.Message.Text, SenderID: event.Sender.ID}, nil
}
