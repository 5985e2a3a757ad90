package services

import (
	"context"
	"errors"
	"strings"

	"github.com/taskpilot/backend/internal/core/ports"
	"github.com/taskpilot/backend/internal/domain"
	"github.com/taskpilot/backend/internal/infrastructure/logger"
	"gorm.io/gorm"
)

const maxTitleLength = 200

type TaskServiceConfig struct {
	Repository ports.TaskRepository
	Logger     *logger.Logger
}

type TaskService struct {
	repo ports.TaskRepository
	log  *logger.Logger
}

func NewTaskService(cfg TaskServiceConfig) *TaskService {
	return &TaskService{repo: cfg.Repository, log: cfg.Logger}
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrTaskInvalidInput
	}
	if len([]rune(title)) > maxTitleLength {
		return "", ErrTaskTitleTooLong
	}
	return title, nil
}

func (s *TaskService) CreateTask(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return nil, err
	}

	task := &domain.Task{
		Title:       title,
		IsCompleted: input.IsCompleted,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.log.Infow("task_create_ok", "id", task.ID, "title", task.Title)
	return task, nil
}

func (s *TaskService) GetTasks(ctx context.Context) ([]domain.Task, error) {
	return s.repo.GetAll(ctx)
}

func (s *TaskService) GetTaskByID(ctx context.Context, id string) (*domain.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id string, input ports.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.GetTaskByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title, err := validateTitle(*input.Title)
		if err != nil {
			return nil, err
		}
		task.Title = title
	}
	if input.IsCompleted != nil {
		task.IsCompleted = *input.IsCompleted
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	s.log.Infow("task_update_ok", "id", task.ID)
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return err
	}

	s.log.Infow("task_delete_ok", "id", id)
	return nil
}
