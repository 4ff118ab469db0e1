package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"servicehub/internal/pkg/apperr"
)

// TokenSource supplies the bearer credential for outgoing requests. Clear is
// invoked when the backend answers 401/403 so the caller is forced to
// re-authenticate.
type TokenSource interface {
	Token() string
	Clear()
}

// Client is the typed REST client for the marketplace backend. It normalizes
// every failure into an apperr kind; callers never see raw HTTP details.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return apperr.Wrap(apperr.KindValidation, "could not encode request body", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperr.Wrap(apperr.KindNetworkFailure, "could not build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return apperr.Wrap(apperr.KindNetworkFailure, "could not reach the server", err)
	}
	defer resp.Body.Close()

	c.log.Debug("request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", requestID),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		// Session problem: drop the credential so the caller re-authenticates.
		c.tokens.Clear()
		return apperr.New(apperr.KindPermissionDenied, serverMessage(resp.Body, "your session has expired, please sign in again"))
	}

	if resp.StatusCode >= 400 {
		return apperr.New(apperr.KindServerRejected, serverMessage(resp.Body, genericMessage(method)))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.Wrap(apperr.KindServerRejected, "could not decode server response", err)
	}
	return nil
}

// serverMessage extracts the backend's human-readable rejection reason. The
// API answers either {"detail": "..."} or a field-error map; the first string
// found wins, fallback otherwise.
func serverMessage(body io.Reader, fallback string) string {
	raw, err := io.ReadAll(io.LimitReader(body, 64<<10))
	if err != nil || len(raw) == 0 {
		return fallback
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fallback
	}

	if detail, ok := payload["detail"]; ok {
		var msg string
		if json.Unmarshal(detail, &msg) == nil && msg != "" {
			return msg
		}
	}
	if nfe, ok := payload["non_field_errors"]; ok {
		var msgs []string
		if json.Unmarshal(nfe, &msgs) == nil && len(msgs) > 0 {
			return msgs[0]
		}
	}
	for field, v := range payload {
		var msgs []string
		if json.Unmarshal(v, &msgs) == nil && len(msgs) > 0 {
			return fmt.Sprintf("%s: %s", field, msgs[0])
		}
	}
	return fallback
}

func genericMessage(method string) string {
	if method == http.MethodGet {
		return "the server could not return the requested data"
	}
	return "the server rejected the request"
}
