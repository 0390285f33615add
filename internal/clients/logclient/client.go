// Package logclient is an API client that only logs what it receives.
package logclient

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"payproc/internal/logging"
)

type Client struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Client {
	return &Client{logger: logging.OrDiscard(logger)}
}

// Post logs path and the JSON encoding of body.
func (c *Client) Post(ctx context.Context, path string, body any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode body for %s: %w", path, err)
	}
	c.logger.InfoContext(ctx, "api post", "path", path, "body", string(data))
	return nil
}
