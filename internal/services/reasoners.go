package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"finance-assistant/internal/backend"

	"google.golang.org/genai"
)

var (
	ErrRemoteDisabled = errors.New("remote reasoning is disabled")
)

type backendReasoner struct {
	client backend.ClientInterface
}

// NewBackendReasoner forwards chat messages to the finance backend's /api/chat endpoint
func NewBackendReasoner(client backend.ClientInterface) RemoteReasoner {
	return &backendReasoner{client: client}
}

func (r *backendReasoner) Name() string {
	return "backend"
}

func (r *backendReasoner) Reply(ctx context.Context, message string) (string, error) {
	resp, err := r.client.Chat(ctx, message)
	if err != nil {
		return "", err
	}
	return resp.Response, nil
}

const geminiSystemPrompt = "You are a friendly personal finance assistant inside a budgeting app. " +
	"The app tracks income and expense transactions, savings goals with deadlines and priorities, " +
	"and spending categories. Answer briefly and practically in plain text without Markdown. " +
	"Do not give individual investment recommendations; suggest consulting a financial advisor instead."

// contentGenerator is the part of *genai.Models the reasoner needs
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type geminiReasoner struct {
	models contentGenerator
	model  string
}

// NewGeminiReasoner answers chat messages with a Gemini model through the Gemini API
func NewGeminiReasoner(ctx context.Context, apiKey, model string) (RemoteReasoner, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &geminiReasoner{models: client.Models, model: model}, nil
}

func (r *geminiReasoner) Name() string {
	return "gemini"
}

func (r *geminiReasoner) Reply(ctx context.Context, message string) (string, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: geminiSystemPrompt},
				{Text: message},
			},
		},
	}

	resp, err := r.models.GenerateContent(ctx, r.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w: %v", backend.ErrNetwork, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini: %w: empty response from model", backend.ErrMalformedBody)
	}
	return text, nil
}

type disabledReasoner struct{}

// NewDisabledReasoner always fails, so sessions answer from the rule table only
func NewDisabledReasoner() RemoteReasoner {
	return disabledReasoner{}
}

func (disabledReasoner) Name() string {
	return "none"
}

func (disabledReasoner) Reply(context.Context, string) (string, error) {
	return "", ErrRemoteDisabled
}
