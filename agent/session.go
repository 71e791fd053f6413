// Package agent is the conversational layer: a Gemini chat session primed
// with the current portfolio snapshot, acting as the family's investment
// mentor.
package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for mentor sessions.
const DefaultModel = "gemini-2.5-flash"

// Session is one multi-turn chat with the mentor. The system instruction
// carries the portfolio snapshot, so the mentor answers about the family's
// actual holdings instead of generic advice.
type Session struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
	chat   *genai.Chat
}

// NewSession opens a chat primed with the given system instruction.
func NewSession(ctx context.Context, client *genai.Client, instruction string) (*Session, error) {
	s := &Session{
		client: client,
		model:  DefaultModel,
		config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		},
	}
	if err := s.Reset(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset discards the conversation history and starts a fresh chat with the
// same system instruction.
func (s *Session) Reset(ctx context.Context) error {
	chat, err := s.client.Chats.Create(ctx, s.model, s.config, nil)
	if err != nil {
		return fmt.Errorf("could not start mentor chat: %w", err)
	}
	s.chat = chat
	return nil
}

// Ask sends one user message and returns the mentor's text reply.
func (s *Session) Ask(ctx context.Context, question string) (string, error) {
	resp, err := s.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from mentor")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
