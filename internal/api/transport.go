package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/NicoCalcagno/Spendly/internal/log"
	"github.com/NicoCalcagno/Spendly/internal/token"
)

// authTransport attaches the stored bearer credential to every outbound
// request and clears it whenever the service answers 401. Putting the
// policy in the transport keeps it crosscutting: no individual operation
// can forget it.
type authTransport struct {
	base   http.RoundTripper
	tokens token.Store
	logger *log.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Per RoundTripper contract the request must not be mutated.
	req = req.Clone(req.Context())

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Content-Type", "application/json")

	tok, err := t.tokens.Load()
	switch {
	case err == nil:
		req.Header.Set("Authorization", "Bearer "+tok)
	case errors.Is(err, token.ErrNotFound):
		// Unauthenticated call (login, register)
	default:
		t.logger.Warn("Failed to load credential", "error", err, "request_id", requestID)
	}

	start := time.Now()
	resp, rtErr := t.base.RoundTrip(req)
	if rtErr != nil {
		t.logger.DebugContext(req.Context(), "HTTP request failed",
			"request_id", requestID,
			"method", req.Method,
			"path", req.URL.Path,
			"error", rtErr)
		return nil, rtErr
	}

	t.logger.DebugContext(req.Context(), "HTTP request completed",
		"request_id", requestID,
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode == http.StatusUnauthorized {
		// The credential is no longer accepted. Drop it before the failure
		// propagates so the next auth check starts clean.
		if clearErr := t.tokens.Clear(); clearErr != nil {
			t.logger.Error("Failed to clear rejected credential", "error", clearErr, "request_id", requestID)
		} else {
			t.logger.Info("Cleared rejected credential", "request_id", requestID)
		}
	}

	return resp, nil
}
