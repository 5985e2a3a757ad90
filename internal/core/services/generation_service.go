package services

import (
	"context"
	"errors"

	"github.com/taskpilot/backend/internal/core/ports"
	"github.com/taskpilot/backend/internal/domain"
	"github.com/taskpilot/backend/internal/infrastructure/logger"
)

type GenerationServiceConfig struct {
	Tasks   ports.TaskService
	Clients []ports.ProviderClient
	Logger  *logger.Logger
}

// GenerationService ties a provider call to normalization and persistence.
type GenerationService struct {
	tasks   ports.TaskService
	clients map[domain.Provider]ports.ProviderClient
	log     *logger.Logger
}

func NewGenerationService(cfg GenerationServiceConfig) *GenerationService {
	clients := make(map[domain.Provider]ports.ProviderClient, len(cfg.Clients))
	for _, client := range cfg.Clients {
		clients[client.Provider()] = client
	}
	return &GenerationService{tasks: cfg.Tasks, clients: clients, log: cfg.Logger}
}

// GenerateTasks asks the selected provider for task suggestions and persists
// them. A failing provider call or an unusable completion aborts the whole
// request; a failing create only drops that one candidate, so the batch can
// succeed partially. Returned tasks keep candidate order.
func (s *GenerationService) GenerateTasks(ctx context.Context, provider domain.Provider, apiKey, prompt string) (*ports.GenerationResult, error) {
	client, ok := s.clients[provider]
	if !ok {
		return nil, ErrUnknownProvider
	}

	raw, err := client.Complete(ctx, prompt, apiKey)
	if err != nil {
		return nil, err
	}

	candidates, err := NormalizeTaskSuggestions(raw)
	if err != nil {
		return nil, normalizeError(provider, err)
	}

	s.log.Infow("ai_generate_candidates", "provider", provider, "count", len(candidates))

	created := make([]domain.Task, 0, len(candidates))
	for i, candidate := range candidates {
		task, err := s.tasks.CreateTask(ctx, ports.CreateTaskInput{
			Title:       candidate.Title,
			IsCompleted: candidate.IsCompleted,
		})
		if err != nil {
			s.log.Warnw("ai_generate_candidate_skipped",
				"provider", provider,
				"index", i,
				"title", candidate.Title,
				"error", err,
			)
			continue
		}
		created = append(created, *task)
	}

	s.log.Infow("ai_generate_ok", "provider", provider, "created", len(created))
	return &ports.GenerationResult{Created: len(created), Tasks: created}, nil
}

// normalizeError attaches the provider identity to a normalizer failure so
// it surfaces like any other provider-level error.
func normalizeError(provider domain.Provider, err error) error {
	kind := KindUnexpected
	switch {
	case errors.Is(err, ErrEmptyResponse):
		kind = KindEmptyResponse
	case errors.Is(err, ErrMalformedResponse):
		kind = KindMalformedResponse
	}
	return &ProviderError{Provider: provider, Kind: kind, Err: err}
}
