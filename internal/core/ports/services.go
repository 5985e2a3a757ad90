package ports

import (
	"context"

	"github.com/taskpilot/backend/internal/domain"
)

type CreateTaskInput struct {
	Title       string
	IsCompleted bool
}

// UpdateTaskInput carries a partial update; nil fields are left untouched.
type UpdateTaskInput struct {
	Title       *string
	IsCompleted *bool
}

type TaskService interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	GetTasks(ctx context.Context) ([]domain.Task, error)
	GetTaskByID(ctx context.Context, id string) (*domain.Task, error)
	UpdateTask(ctx context.Context, id string, input UpdateTaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// ProviderClient is a single upstream LLM API. Complete sends one request
// built from the caller-supplied prompt and key and returns the raw
// completion text; parsing is left to the normalizer.
type ProviderClient interface {
	Provider() domain.Provider
	Complete(ctx context.Context, prompt, apiKey string) (string, error)
}

type GenerationResult struct {
	Created int
	Tasks   []domain.Task
}

type GenerationService interface {
	GenerateTasks(ctx context.Context, provider domain.Provider, apiKey, prompt string) (*GenerationResult, error)
}
