// Package httpclient posts records as JSON to a remote payments API.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

var ErrUnexpectedStatus = errors.New("unexpected status from payments api")

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		timeout: timeout,
	}
}

// Post sends body as JSON to baseURL+path. Any non-2xx status is an error.
// The request timeout is the smaller of the configured timeout and the
// time left before ctx's deadline.
func (c *Client) Post(ctx context.Context, path string, body any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}

	a := fiber.Post(c.baseURL + path)
	a.JSON(body)
	a.Timeout(timeout)
	if c.apiKey != "" {
		a.Set(fiber.HeaderAuthorization, "Bearer "+c.apiKey)
	}
	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return fmt.Errorf("failed to prepare request to %s: %w", path, err)
	}

	code, resp, errs := a.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("post %s: %w", path, errors.Join(errs...))
	}
	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return fmt.Errorf("%w: post %s returned %d: %s", ErrUnexpectedStatus, path, code, resp)
	}
	return nil
}
