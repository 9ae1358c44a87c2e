package entity

import (
	"time"
	"unicode/utf8"
)

const (
	titleMaxRunes = 40
	titleEllipsis = "..."
)

// Turn is one message of a stored conversation. Only RoleUser and RoleAssistant
// are ever persisted.
type Turn struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// Conversation is a persisted, owner-scoped, append-only advisory session.
type Conversation struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"user_email"`
	Title     string    `json:"title"`
	Messages  []Turn    `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
}

// ConversationSummary is the listing view of a conversation.
type ConversationSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// ConversationTitle derives a session title from the first user message.
func ConversationTitle(message string) string {
	if utf8.RuneCountInString(message) <= titleMaxRunes {
		return message
	}
	runes := []rune(message)
	return string(runes[:titleMaxRunes]) + titleEllipsis
}

type ChatRequest struct {
	UserEmail   string  `json:"user_email"`
	UserProfile string  `json:"user_profile"`
	Message     string  `json:"message"`
	SessionID   *string `json:"session_id,omitempty"`
}

type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
