package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/taskpilot/backend/internal/config"
	"github.com/taskpilot/backend/internal/domain"
	"github.com/taskpilot/backend/internal/infrastructure/logger"
)

const defaultOpenRouterURL = "https://openrouter.ai/api/v1/chat/completions"

// OpenRouterClient talks to the OpenRouter chat completions API. The model
// is asked for a JSON object so the completion can be handed straight to the
// normalizer.
type OpenRouterClient struct {
	endpoint string
	client   *http.Client
	logger   *logger.Logger
}

func NewOpenRouterClient(cfg config.AIConfig, log *logger.Logger) *OpenRouterClient {
	endpoint := cfg.OpenRouterURL
	if endpoint == "" {
		endpoint = defaultOpenRouterURL
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}
	return &OpenRouterClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		logger:   log,
	}
}

func (c *OpenRouterClient) Provider() domain.Provider {
	return domain.ProviderOpenRouter
}

func (c *OpenRouterClient) Complete(ctx context.Context, prompt, apiKey string) (string, error) {
	if err := validateCompletionInput(prompt, apiKey); err != nil {
		return "", err
	}

	payload := map[string]interface{}{
		"model": "openrouter/auto",
		"messages": []map[string]string{
			{"role": "system", "content": "Extract a short checklist of tasks as JSON."},
			{
				"role": "user",
				"content": `Given this goal, reply strictly as JSON like {"tasks":[{"title":"..."}]} with 3-7 tasks. Goal: ` +
					prompt,
			},
		},
		"response_format": map[string]string{"type": "json_object"},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", &ProviderError{Provider: c.Provider(), Kind: KindUnexpected, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &ProviderError{Provider: c.Provider(), Kind: KindUnexpected, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	c.logger.Infow("openrouter_request", "endpoint", c.endpoint)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warnw("openrouter_request_failed", "error", err)
		return "", translateTransportError(c.Provider(), err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Provider: c.Provider(), Kind: KindUnexpected, Err: err}
	}

	if err := translateStatus(c.Provider(), resp.StatusCode); err != nil {
		c.logger.Warnw("openrouter_bad_status", "status", resp.StatusCode)
		return "", err
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", &ProviderError{
			Provider: c.Provider(),
			Kind:     KindUnexpected,
			Err:      fmt.Errorf("decode response: %w", err),
		}
	}

	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", &ProviderError{Provider: c.Provider(), Kind: KindNoContent}
	}

	return parsed.Choices[0].Message.Content, nil
}
