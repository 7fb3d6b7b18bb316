package settings

// UpdateRequest carries optional bot configuration updates; nil fields
// keep their stored value.
type UpdateRequest struct {
	SystemPrompt   *string `json:"systemPrompt"`
	Theme          *string `json:"theme"`
	WelcomeMessage *string `json:"welcomeMessage"`
	ModelName      *string `json:"modelName"`
}
