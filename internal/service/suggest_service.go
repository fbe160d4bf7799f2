package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"

	"taskdeck/internal/model"
)

const maxEchoedTasks = 5

// SuggestResult is the response of the suggestion endpoint: a short list of
// productivity hints plus an echo of the highest-listed tasks.
type SuggestResult struct {
	Suggestions      []string     `json:"suggestions"`
	PrioritizedTasks []model.Task `json:"prioritizedTasks"`
}

// SuggestService produces task advice. Without an API key it serves the
// fixed fallback set; with one it asks a chat-completion model and falls
// back to the fixed set on any failure.
type SuggestService struct {
	client *openai.Client
	model  string
}

func NewSuggestService(apiKey, baseURL, modelName string) *SuggestService {
	s := &SuggestService{model: modelName}
	if apiKey != "" {
		cfg := openai.DefaultConfig(apiKey)
		if baseURL != "" {
			cfg.BaseURL = baseURL
		}
		s.client = openai.NewClientWithConfig(cfg)
	}
	return s
}

func fallbackSuggestions() []string {
	return []string{
		"Start with your highest-priority tasks",
		"Group similar tasks together",
		"Use the Pomodoro technique",
	}
}

// Suggest returns advice for the submitted tasks. The echoed task list is
// capped at the first five entries.
func (s *SuggestService) Suggest(ctx context.Context, tasks []model.Task, contextNote string) (*SuggestResult, error) {
	echoed := tasks
	if len(echoed) > maxEchoedTasks {
		echoed = echoed[:maxEchoedTasks]
	}

	result := &SuggestResult{
		Suggestions:      fallbackSuggestions(),
		PrioritizedTasks: echoed,
	}
	if s.client == nil {
		return result, nil
	}

	suggestions, err := s.askModel(ctx, tasks, contextNote)
	if err != nil {
		log.Printf("[warn] ai suggestions unavailable, using fallback: %v", err)
		return result, nil
	}
	result.Suggestions = suggestions
	return result, nil
}

func (s *SuggestService) askModel(ctx context.Context, tasks []model.Task, contextNote string) ([]string, error) {
	var sb strings.Builder
	sb.WriteString("The user has these tasks:\n")
	for _, t := range tasks {
		fmt.Fprintf(&sb, "- [%s/%s] %s\n", t.Category, t.Priority, t.Title)
	}
	if contextNote != "" {
		fmt.Fprintf(&sb, "Context: %s\n", contextNote)
	}
	sb.WriteString("Give short prioritization, time-management and productivity advice, one suggestion per line.")

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a productivity assistant. Answer with plain suggestion lines, no numbering.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: sb.String(),
			},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("call ai api: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from ai")
	}

	var suggestions []string
	for _, line := range strings.Split(resp.Choices[0].Message.Content, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "-"))
		if line != "" {
			suggestions = append(suggestions, line)
		}
	}
	if len(suggestions) == 0 {
		return nil, fmt.Errorf("empty suggestion list from ai")
	}
	return suggestions, nil
}
