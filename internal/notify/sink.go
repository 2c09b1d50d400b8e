package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Logger is the logging interface used by the sink.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// HTTPClient abstracts the HTTP transport for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

const defaultTimeout = 30 * time.Second

// Sink delivers composed notifications to a webhook endpoint. An
// unconfigured endpoint is a logged soft-skip; delivery failures are logged
// and never propagated, and no delivery is retried.
type Sink struct {
	url    string
	client HTTPClient
	logger Logger
}

// NewSink creates a Sink posting to url. A nil client gets a default with a
// request timeout.
func NewSink(url string, client HTTPClient, logger Logger) *Sink {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Sink{url: url, client: client, logger: logger}
}

// Send posts the message as JSON and logs the delivery status.
func (s *Sink) Send(ctx context.Context, message Message) {
	if s.url == "" {
		s.logger.Info("webhook not configured, notification skipped")
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		s.logger.Error("marshal notification", "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(data))
	if err != nil {
		s.logger.Error("build notification request", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("notification delivery failed", "error", err)
		return
	}
	defer resp.Body.Close()

	s.logger.Info("notification posted", "status", resp.StatusCode)
}
