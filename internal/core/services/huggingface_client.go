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

const defaultHuggingFaceURL = "https://api-inference.huggingface.co/models/Qwen/Qwen2.5-7B-Instruct"

// HuggingFaceClient talks to the Hugging Face inference API. The JSON shape
// instruction is inlined in the input text because the API has no response
// format parameter. Depending on the serving mode the response is either a
// single object or an array whose first element holds the generated text.
type HuggingFaceClient struct {
	endpoint string
	client   *http.Client
	logger   *logger.Logger
}

func NewHuggingFaceClient(cfg config.AIConfig, log *logger.Logger) *HuggingFaceClient {
	endpoint := cfg.HuggingFaceURL
	if endpoint == "" {
		endpoint = defaultHuggingFaceURL
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}
	return &HuggingFaceClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		logger:   log,
	}
}

func (c *HuggingFaceClient) Provider() domain.Provider {
	return domain.ProviderHuggingFace
}

func (c *HuggingFaceClient) Complete(ctx context.Context, prompt, apiKey string) (string, error) {
	if err := validateCompletionInput(prompt, apiKey); err != nil {
		return "", err
	}

	payload := map[string]interface{}{
		"inputs": `Extract a short checklist of tasks as JSON like {"tasks":[{"title":"..."}]}. Goal: ` + prompt,
		"parameters": map[string]interface{}{
			"max_new_tokens":   256,
			"return_full_text": false,
		},
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

	c.logger.Infow("huggingface_request", "endpoint", c.endpoint)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warnw("huggingface_request_failed", "error", err)
		return "", translateTransportError(c.Provider(), err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Provider: c.Provider(), Kind: KindUnexpected, Err: err}
	}

	if err := translateStatus(c.Provider(), resp.StatusCode); err != nil {
		c.logger.Warnw("huggingface_bad_status", "status", resp.StatusCode)
		return "", err
	}

	text, err := extractGeneratedText(data)
	if err != nil {
		return "", &ProviderError{Provider: c.Provider(), Kind: KindUnexpected, Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", &ProviderError{Provider: c.Provider(), Kind: KindNoContent}
	}

	return text, nil
}

func extractGeneratedText(data []byte) (string, error) {
	var list []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(data, &list); err == nil {
		if len(list) == 0 {
			return "", nil
		}
		return list[0].GeneratedText, nil
	}

	var single struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(data, &single); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return single.GeneratedText, nil
}
