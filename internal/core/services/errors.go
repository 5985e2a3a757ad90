package services

import (
	"errors"
	"fmt"

	"github.com/taskpilot/backend/internal/domain"
)

// Task errors
var (
	ErrTaskNotFound     = errors.New("task: not found")
	ErrTaskInvalidInput = errors.New("task: title is required")
	ErrTaskTitleTooLong = errors.New("task: title exceeds 200 characters")
)

// Generation errors
var (
	ErrGenerateInvalidInput = errors.New("generate: api key and prompt are required")
	ErrUnknownProvider      = errors.New("generate: unknown provider")
	ErrEmptyResponse        = errors.New("generate: provider returned an empty response")
	ErrMalformedResponse    = errors.New("generate: provider response is not a JSON object")
)

// ProviderErrorKind classifies failures of a single upstream call.
type ProviderErrorKind string

const (
	KindInvalidCredentials  ProviderErrorKind = "invalid_credentials"
	KindRateLimited         ProviderErrorKind = "rate_limited"
	KindTimeout             ProviderErrorKind = "timeout"
	KindUpstreamError       ProviderErrorKind = "upstream_error"
	KindUpstreamUnreachable ProviderErrorKind = "upstream_unreachable"
	KindNoContent           ProviderErrorKind = "no_content"
	KindEmptyResponse       ProviderErrorKind = "empty_response"
	KindMalformedResponse   ProviderErrorKind = "malformed_response"
	KindUnexpected          ProviderErrorKind = "unexpected"
)

// ProviderError is any failure of the AI generation path past input
// validation. It always carries the identity of the provider that produced
// it; Status is only set for KindUpstreamError.
type ProviderError struct {
	Provider domain.Provider
	Kind     ProviderErrorKind
	Status   int
	Err      error
}

func (e *ProviderError) Error() string {
	switch e.Kind {
	case KindInvalidCredentials:
		return fmt.Sprintf("%s: invalid credentials", e.Provider)
	case KindRateLimited:
		return fmt.Sprintf("%s: rate limited", e.Provider)
	case KindTimeout:
		return fmt.Sprintf("%s: request timed out", e.Provider)
	case KindUpstreamError:
		return fmt.Sprintf("%s: upstream error (status %d)", e.Provider, e.Status)
	case KindUpstreamUnreachable:
		return fmt.Sprintf("%s: upstream unreachable", e.Provider)
	case KindNoContent:
		return fmt.Sprintf("%s: response contained no content", e.Provider)
	case KindEmptyResponse:
		return fmt.Sprintf("%s: empty completion", e.Provider)
	case KindMalformedResponse:
		return fmt.Sprintf("%s: malformed completion", e.Provider)
	default:
		return fmt.Sprintf("%s: unexpected error: %v", e.Provider, e.Err)
	}
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
