package types

import (
	"fmt"
	"strings"
)

// UserProfile is a free-form mapping of profile fields supplied by the caller.
// Recognised keys are fullName, email, fitness_goal, body_type and macro_split.
type UserProfile map[string]interface{}

// Get returns the value stored under key, or fallback when it is missing, null or blank
func (p UserProfile) Get(key, fallback string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return fallback
	}

	var s string
	switch val := v.(type) {
	case string:
		s = val
	default:
		s = fmt.Sprint(val)
	}

	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// ConversationTurn is one entry of the caller-supplied chat history
type ConversationTurn struct {
	Text  string `json:"text"`
	IsBot bool   `json:"isBot"`
}

// ChatRequest is the body of POST /api/chat
type ChatRequest struct {
	Message             string             `json:"message"`
	UserProfile         UserProfile        `json:"user_profile"`
	ConversationHistory []ConversationTurn `json:"conversation_history"`
}

// ChatResponse is the payload of POST /api/chat for both outcomes
type ChatResponse struct {
	Response  string `json:"response"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
