package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/futureday25/viberlab/internal/config"
	"github.com/futureday25/viberlab/internal/domain"
)

// CompletionService talks to an Azure OpenAI chat-completions deployment.
// It is stateless: the deployment to call comes in with every request, so
// one instance serves all workspaces.
type CompletionService struct {
	httpClient *http.Client
}

func NewCompletionService() *CompletionService {
	return &CompletionService{
		httpClient: &http.Client{Timeout: config.RequestTimeout},
	}
}

type chatRequest struct {
	Messages            []domain.LlmMessage `json:"messages"`
	MaxCompletionTokens int                 `json:"max_completion_tokens"`
	ResponseFormat      responseFormat      `json:"response_format"`
}

type responseFormat struct {
	Type string `json:"type"`
}

// chatResponse covers the fields of interest of the provider reply. Content
// fields stay raw because the provider sends either a string or a chunk
// sequence there.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content          json.RawMessage `json:"content"`
			ReasoningContent json.RawMessage `json:"reasoning_content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// RequestCompletion sends one completion request and returns the normalized
// reply text. No network call is made when the config is incomplete, and
// nothing is retried; callers re-invoke on failure.
func (s *CompletionService) RequestCompletion(ctx context.Context, cfg domain.CompletionConfig, messages []domain.LlmMessage) (string, error) {
	if !cfg.Complete() {
		return "", domain.ErrConfigIncomplete
	}

	payload, err := json.Marshal(chatRequest{
		Messages:            messages,
		MaxCompletionTokens: config.MaxCompletionTokens,
		ResponseFormat:      responseFormat{Type: "text"},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		strings.TrimSuffix(cfg.Endpoint, "/"),
		url.PathEscape(cfg.Deployment),
		url.QueryEscape(cfg.APIVersion),
	)

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", cfg.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &domain.UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", domain.ErrEmptyResponse
	}

	choice := chatResp.Choices[0]
	text, ok := normalizeContent(choice.Message.Content)
	if !ok {
		// Some deployments put the whole answer into the reasoning field.
		text, ok = normalizeContent(choice.Message.ReasoningContent)
	}
	if !ok {
		if choice.FinishReason == "length" {
			return "", domain.ErrTruncatedResponse
		}
		return "", domain.ErrEmptyResponse
	}

	return text, nil
}
