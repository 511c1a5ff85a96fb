package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

var ErrRejected error = errors.New("notification rejected")

// HTTPNotifier posts payloads as JSON and accepts any 2xx answer.
type HTTPNotifier struct {
	logs   *zap.SugaredLogger
	client *http.Client
}

func NewHTTPNotifier(logger *zap.SugaredLogger, timeout time.Duration) *HTTPNotifier {
	return &HTTPNotifier{
		logs:   logger,
		client: &http.Client{Timeout: timeout},
	}
}

func (n *HTTPNotifier) Post(ctx context.Context, endpoint string, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("post notification: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d from %s", ErrRejected, resp.StatusCode, endpoint)
	}

	n.logs.Debugw("notification delivered",
		"endpoint", endpoint,
		"transaction", payload.ID,
		"status", resp.StatusCode)
	return nil
}
