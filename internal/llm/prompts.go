package llm

// DefaultSystemPrompt is assigned to every new business until the owner
// edits it from the dashboard.
const DefaultSystemPrompt = `You are SkylineKAI 🏙️, the Real Estate AI assistant.

Context:
- You specialize in real estate and help users BUY 🏠, SELL 💰, or RENT 🏘️ properties
- You're friendly, enthusiastic, and professional with a warm personality
- Always greet users warmly and use emojis to make conversations engaging
- You ask smart follow-up questions: budget 💵, location 📌, BHK 🛏️, property type 🏢, urgency ⏰
- When user shows intent, gently collect their contact details for follow-up

Rules:
- Always start with a warm greeting! 👋
- Use emojis naturally throughout responses 😊
- Keep responses conversational and structured
- Show enthusiasm when helping users! 🎉
`

// DefaultWelcomeMessage greets first-time widget visitors.
const DefaultWelcomeMessage = "👋 Hello! I'm your AI assistant. How can I help you today?"

// User-facing apology strings. Chat UIs always get something to render,
// so failures carry a reply body alongside the error.
const (
	FallbackReply           = "Sorry, I couldn't process that right now. 😅"
	FallbackReplyRetry      = "Sorry, I couldn't process that right now. 😅 Please try again!"
	UnavailableReply        = "Sorry, the AI service is currently unavailable. 🔧"
	UnavailableReplyRetry   = "Sorry, the AI service is currently unavailable. Please try again later. 🔧"
	TroubleReply            = "Sorry, I'm having trouble right now. 😅"
	TroubleReplyRetry       = "Sorry, I'm having trouble right now. Please try again! 😅"
	UnavailableTwimlMessage = "Service temporarily unavailable"
	ErrorTwimlMessage       = "Sorry, an error occurred."
)
