package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/taskpilot/backend/internal/core/ports"
	"github.com/taskpilot/backend/internal/core/services"
	"github.com/taskpilot/backend/internal/domain"
	"github.com/taskpilot/backend/internal/infrastructure/logger"
	"github.com/taskpilot/backend/internal/transport/http/dto"
)

type GenerateHandler struct {
	service ports.GenerationService
	logger  *logger.Logger
}

func NewGenerateHandler(service ports.GenerationService, logger *logger.Logger) *GenerateHandler {
	return &GenerateHandler{service: service, logger: logger}
}

func (h *GenerateHandler) GenerateTasks(c *fiber.Ctx) error {
	var req dto.GenerateTasksRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warnw("ai_generate_body_parse_failed", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
		})
	}

	if errs := req.Validate(); len(errs) > 0 {
		h.logger.Warnw("ai_generate_validation_failed", "details", errs)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Details: errs,
		})
	}

	h.logger.Infow("ai_generate_request", "provider", req.Provider)

	result, err := h.service.GenerateTasks(
		c.Context(),
		domain.Provider(req.Provider),
		req.APIKey,
		req.Prompt,
	)
	if err != nil {
		return h.generateError(c, err)
	}

	return c.JSON(dto.GenerationResultToResponse(result))
}

func (h *GenerateHandler) generateError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrGenerateInvalidInput) || errors.Is(err, services.ErrUnknownProvider) {
		h.logger.Warnw("ai_generate_bad_request", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}

	var providerErr *services.ProviderError
	if errors.As(err, &providerErr) {
		status := providerErrorStatus(providerErr.Kind)
		if status >= fiber.StatusInternalServerError {
			h.logger.Errorw("ai_generate_failed",
				"provider", providerErr.Provider, "kind", providerErr.Kind, "error", err)
		} else {
			h.logger.Warnw("ai_generate_failed",
				"provider", providerErr.Provider, "kind", providerErr.Kind, "error", err)
		}
		return c.Status(status).JSON(dto.ErrorResponse{
			Error: providerErr.Error(),
		})
	}

	h.logger.Errorw("ai_generate_failed", "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: err.Error(),
	})
}

func providerErrorStatus(kind services.ProviderErrorKind) int {
	switch kind {
	case services.KindInvalidCredentials:
		return fiber.StatusUnauthorized
	case services.KindRateLimited:
		return fiber.StatusTooManyRequests
	case services.KindTimeout:
		return fiber.StatusGatewayTimeout
	case services.KindUpstreamError, services.KindNoContent,
		services.KindEmptyResponse, services.KindMalformedResponse:
		return fiber.StatusBadGateway
	case services.KindUpstreamUnreachable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
