package dto

import (
	"strings"
	"time"

	"github.com/taskpilot/backend/internal/domain"
)

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	IsCompleted *bool  `json:"isCompleted,omitempty"`
}

func (r *CreateTaskRequest) Validate() []string {
	var errors []string

	if strings.TrimSpace(r.Title) == "" {
		errors = append(errors, "title is required")
	} else if len([]rune(r.Title)) > 200 {
		errors = append(errors, "title must be at most 200 characters")
	}

	return errors
}

func (r *CreateTaskRequest) GetIsCompleted() bool {
	if r.IsCompleted == nil {
		return false
	}
	return *r.IsCompleted
}

type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=200"`
	IsCompleted *bool   `json:"isCompleted,omitempty"`
}

func (r *UpdateTaskRequest) Validate() []string {
	var errors []string

	if r.Title != nil {
		if strings.TrimSpace(*r.Title) == "" {
			errors = append(errors, "title must not be empty")
		} else if len([]rune(*r.Title)) > 200 {
			errors = append(errors, "title must be at most 200 characters")
		}
	}

	return errors
}

type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	IsCompleted bool      `json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
}

func TaskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		IsCompleted: task.IsCompleted,
		CreatedAt:   task.CreatedAt,
	}
}

func TasksToResponse(tasks []domain.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, TaskToResponse(&tasks[i]))
	}
	return responses
}
