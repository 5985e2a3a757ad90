package dto

import (
	"strings"

	"github.com/taskpilot/backend/internal/core/ports"
	"github.com/taskpilot/backend/internal/domain"
)

type GenerateTasksRequest struct {
	Provider string `json:"provider" validate:"required,oneof=openrouter huggingface"`
	APIKey   string `json:"apiKey" validate:"required"`
	Prompt   string `json:"prompt" validate:"required"`
}

func (r *GenerateTasksRequest) Validate() []string {
	var errors []string

	if r.Provider == "" {
		errors = append(errors, "provider is required")
	} else if !domain.Provider(r.Provider).Valid() {
		errors = append(errors, "provider must be one of: openrouter, huggingface")
	}

	if strings.TrimSpace(r.APIKey) == "" {
		errors = append(errors, "apiKey is required")
	}

	if strings.TrimSpace(r.Prompt) == "" {
		errors = append(errors, "prompt is required")
	}

	return errors
}

type GenerateTasksResponse struct {
	Created int            `json:"created"`
	Tasks   []TaskResponse `json:"tasks"`
}

func GenerationResultToResponse(result *ports.GenerationResult) GenerateTasksResponse {
	return GenerateTasksResponse{
		Created: result.Created,
		Tasks:   TasksToResponse(result.Tasks),
	}
}
