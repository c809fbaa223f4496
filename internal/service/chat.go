package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pageza/gemini-micro-service/backend/internal/types"
)

// ContextWindow is the number of most recent history entries included in the prompt
const ContextWindow = 5

// ErrMessageRequired is returned when a chat request carries no message
var ErrMessageRequired = errors.New("message is required")


const chatPromptTemplate = `You are FitBot, an expert AI nutritionist and fitness advisor. You provide personalized, evidence-based advice about nutrition, meal planning, and healthy eating.

User Profile:
- Name: %s
- Email: %s
- Fitness Goal: %s
- Body Type: %s
- Preferred Macro Split: %s

Recent Conversation Context:
%s

Guidelines for your responses:
1. Be helpful, friendly, and professional
2. Provide evidence-based nutrition advice
3. Consider the user's fitness goals and body type
4. Keep responses concise but informative (2-4 sentences ideal)
5. Use encouraging and motivational language
6. If asked about medical conditions, recommend consulting healthcare professionals
7. Focus on nutrition, meal planning, food choices, and healthy eating habits
8. Use emojis sparingly to keep responses friendly
9. Reference previous conversation when relevant

Current User Question: %s

Provide a helpful response as FitBot:`

// ChatService relays nutrition questions to the language model
type ChatService struct {
	llm TextGenerator
}

// NewChatService creates a new ChatService instance
func NewChatService(llm TextGenerator) *ChatService {
	return &ChatService{llm: llm}
}

// Reply builds the persona prompt for req, calls the model once and returns the cleaned answer
func (s *ChatService) Reply(ctx context.Context, req *types.ChatRequest) (string, error) {
	if req == nil || strings.TrimSpace(req.Message) == "" {
		return "", ErrMessageRequired
	}

	conversation := BuildConversationContext(req.ConversationHistory)
	prompt := BuildChatPrompt(req.Message, req.UserProfile, conversation)

	text, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate chat response: %w", err)
	}

	return CleanChatResponse(text), nil
}

// BuildConversationContext renders the last ContextWindow turns, oldest first
func BuildConversationContext(history []types.ConversationTurn) string {
	if len(history) > ContextWindow {
		history = history[len(history)-ContextWindow:]
	}

	lines := make([]string, 0, len(history))
	for _, turn := range history {
		role := "User"
		if turn.IsBot {
			role = "FitBot"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", role, turn.Text))
	}
	return strings.Join(lines, "\n")
}

// BuildChatPrompt fills the FitBot persona template
func BuildChatPrompt(message string, profile types.UserProfile, conversation string) string {
	return fmt.Sprintf(chatPromptTemplate,
		profile.Get("fullName", "User"),
		profile.Get("email", "Not provided"),
		profile.Get("fitness_goal", "general health"),
		profile.Get("body_type", "not specified"),
		profile.Get("macro_split", "not specified"),
		conversation,
		message,
	)
}
