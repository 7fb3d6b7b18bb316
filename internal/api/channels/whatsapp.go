package channels

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SkylineKAI/platform-api/internal/llm"
	"github.com/SkylineKAI/platform-api/internal/types"
)

// WhatsAppAdapter handles the Twilio WhatsApp webhook contract: inbound
// messages arrive as top-level form fields and replies must be a TwiML
// document, not JSON.
type WhatsAppAdapter struct{}

func (*WhatsAppAdapter) Channel() types.ChannelType {
	return types.ChannelWhatsApp
}

// twilioPayload mirrors the top-level fields of a Twilio inbound message
// for callers that post JSON instead of form data.
type twilioPayload struct {
	From string `json:"From"`
	Body string `json:"Body"`
}

func (*WhatsAppAdapter) Extract(body []byte, header http.Header) (Result, error) {
	contentType := header.Get("Content-Type")
	if strings.Contains(contentType, "json") {
		var payload twilioPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			return Result{}, err
		}
		return Result{Text: payload.Body, SenderID: payload.From}, nil
	}

	// Twilio delivers application/x-www-form-urlencoded by default.
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return Result{}, err
	}
	return Result{Text: values.Get("Body"), SenderID: values.Get("From")}, nil
}

func (*WhatsAppAdapter) EncodeReply(c *gin.Context, reply, _ string) {
	WriteTwiML(c, reply)
}

func (*WhatsAppAdapter) EncodeUnavailable(c *gin.Context) {
	WriteTwiML(c, llm.UnavailableTwimlMessage)
}

// WriteTwiML emits the restricted XML reply envelope Twilio expects:
// a Response root with a single Message element.
func WriteTwiML(c *gin.Context, message string) {
	c.Data(http.StatusOK, "text/xml; charset=utf-8", []byte(TwiML(message)))
}

// TwiML renders the reply envelope with the message text XML-escaped.
func TwiML(message string) string {
	var escaped bytes.Buffer
	_ = xml.EscapeText(&escaped, []byte(message))

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString("<Response>\n")
	b.WriteString("  <Message>")
	b.WriteString(escaped.String())
	b.WriteString("</Message>\n")
	b.WriteString("</Response>")
	return b.String()
}
