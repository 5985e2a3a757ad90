package services

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/taskpilot/backend/internal/domain"
)

const defaultProviderTimeout = 25 * time.Second

// validateCompletionInput rejects blank credentials or prompts before any
// network I/O happens.
func validateCompletionInput(prompt, apiKey string) error {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(prompt) == "" {
		return ErrGenerateInvalidInput
	}
	return nil
}

// translateTransportError classifies a failed round trip: a client-side
// timeout is reported as such, everything else means the upstream was never
// reached.
func translateTransportError(provider domain.Provider, err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &ProviderError{Provider: provider, Kind: KindTimeout, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &ProviderError{Provider: provider, Kind: KindTimeout, Err: err}
	}
	return &ProviderError{Provider: provider, Kind: KindUpstreamUnreachable, Err: err}
}

// translateStatus maps a non-2xx upstream status to the error taxonomy.
// Returns nil for 2xx.
func translateStatus(provider domain.Provider, status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized:
		return &ProviderError{Provider: provider, Kind: KindInvalidCredentials, Status: status}
	case status == http.StatusTooManyRequests:
		return &ProviderError{Provider: provider, Kind: KindRateLimited, Status: status}
	case status == http.StatusRequestTimeout:
		return &ProviderError{Provider: provider, Kind: KindTimeout, Status: status}
	default:
		return &ProviderError{Provider: provider, Kind: KindUpstreamError, Status: status}
	}
}
