package entity

// ChatRole is the author of a message sent to the generative provider.
type ChatRole string

const (
	RoleSystem    ChatRole = "system"
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// GenerationPurpose tags a completion request with the flow that issued it.
type GenerationPurpose string

const (
	PurposeChat              GenerationPurpose = "chat"
	PurposeProfileExtraction GenerationPurpose = "profile_extraction"
	PurposeGuidance          GenerationPurpose = "guidance"
	PurposeScholarshipSearch GenerationPurpose = "scholarship_search"
)

type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// GenerationProfile is the fixed sampling configuration used for one call type.
type GenerationProfile struct {
	Model       string
	Temperature float32
	// MaxTokens of zero leaves the output length to the provider.
	MaxTokens int
	// JSONOutput asks the provider to emit a JSON-shaped string.
	JSONOutput bool
}

type CompletionRequest struct {
	Purpose  GenerationPurpose
	Messages []ChatMessage
	GenerationProfile
}

// OpenAI-compatible chat completion wire types.

type LLMResponseFormat struct {
	Type string `json:"type"`
}

type LLMChatCompletionRequest struct {
	Model          string             `json:"model"`
	Messages       []ChatMessage      `json:"messages"`
	Temperature    float32            `json:"temperature"`
	MaxTokens      int                `json:"max_tokens,omitempty"`
	ResponseFormat *LLMResponseFormat `json:"response_format,omitempty"`
}

type LLMChatCompletionChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type LLMChatCompletionResponse struct {
	ID      string                    `json:"id"`
	Model   string                    `json:"model"`
	Choices []LLMChatCompletionChoice `json:"choices"`
}
