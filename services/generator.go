// services/generator.go
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"deenly-backend/models"
)

// NudgeFallback is used verbatim whenever message generation fails. Generation
// errors are logged and never propagated out of the nudge flow.
const NudgeFallback = "Time for your daily lesson!"

// MessageGenerator produces one short nudge message for an inactive user.
type MessageGenerator interface {
	Generate(ctx context.Context, profile models.Profile) (string, error)
}

// OpenAIGenerator generates nudge texts via the chat completions API.
type OpenAIGenerator struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAIGenerator(apiKey string) *OpenAIGenerator {
	return &OpenAIGenerator{
		client:  openai.NewClient(apiKey),
		model:   openai.GPT4oMini,
		timeout: 15 * time.Second,
	}
}

func nudgePrompt(p models.Profile) string {
	return fmt.Sprintf(`You are a persistent, slightly dramatic language coach. Your goal is to guilt-trip the user into doing their lesson. Keep it under 100 characters.
User Data: Name: %s, Streak: %d, Language: %s.
Example Output: 'Hey %s, your %d day streak looks lonely. %s won't learn itself! 🦉'`,
		p.Username, p.StreakCount, p.PreferredLanguage,
		p.Username, p.StreakCount, p.PreferredLanguage)
}

func (g *OpenAIGenerator) Generate(ctx context.Context, profile models.Profile) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: nudgePrompt(profile)},
		},
		MaxTokens: 60,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty choices")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	text = strings.Trim(text, `"`)
	if text == "" {
		return "", fmt.Errorf("chat completion: empty message")
	}
	return text, nil
}

// GenerateNudge wraps a MessageGenerator with the fallback contract: any
// failure yields NudgeFallback and is only logged.
func GenerateNudge(ctx context.Context, gen MessageGenerator, profile models.Profile, log *zap.Logger) string {
	text, err := gen.Generate(ctx, profile)
	if err != nil {
		log.Warn("nudge generation failed, using fallback",
			zap.String("user", profile.ID.String()),
			zap.Error(err),
		)
		return NudgeFallback
	}
	return text
}
