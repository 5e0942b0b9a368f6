package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"portfoliotracker/internal/domain"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	SummarizePerformance(ctx context.Context, period domain.Period, metrics domain.PerformanceMetrics) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const summaryPrompt = `
You are a personal-finance assistant summarizing a portfolio's computed performance metrics for its owner.

You will receive a JSON object with total return, period return, best and worst day, maximum drawdown, and drawdown recovery status for one time period. Write a short plain-English summary (3-5 sentences) of how the portfolio performed. Mention the headline return, the largest decline and whether the portfolio has recovered from it, and the single best and worst days. Use plain language, no financial jargon beyond "drawdown", and do not give investment advice or predictions.
`

func (h gptRepositoryHandler) SummarizePerformance(ctx context.Context, period domain.Period, metrics domain.PerformanceMetrics) (string, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"period":  period,
		"metrics": metrics,
	})
	if err != nil {
		return "", err
	}

	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: summaryPrompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: string(payload),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate performance summary: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("gpt returned no choices")
	}

	return res.Choices[0].Message.Content, nil
}
