package service

import (
	"regexp"
	"strings"
)

var codeFencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// StripCodeFence trims text and, when it opens with a markdown fence, returns the
// body of the first fenced block. Text without a closing fence is returned trimmed.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	match := codeFencePattern.FindStringSubmatch(text)
	if match == nil {
		return text
	}
	return strings.TrimSpace(match[1])
}

// CleanChatResponse trims the reply and drops markdown emphasis markers
func CleanChatResponse(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "**", "")
	return strings.ReplaceAll(text, "*", "")
}
