package httpclient

import (
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"payproc/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type received struct {
	path   string
	auth   string
	record map[string]any
}

func startServer(t *testing.T, status int) (string, chan received) {
	t.Helper()

	got := make(chan received, 1)
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Post("/payments/:route", func(c *fiber.Ctx) error {
		var body map[string]any
		if err := json.Unmarshal(c.Body(), &body); err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}
		got <- received{path: c.Path(), auth: c.Get(fiber.HeaderAuthorization), record: body}
		return c.Status(status).SendString("ok")
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return "http://" + ln.Addr().String(), got
}

func TestClient_Post(t *testing.T) {
	baseURL, got := startServer(t, fiber.StatusCreated)
	c := New(Config{BaseURL: baseURL + "/", APIKey: "secret", Timeout: 2 * time.Second})

	tx := &models.Transaction{ID: "id-1", UserID: "u1", OriginalAmount: 100, FinalAmount: 96}
	require.NoError(t, c.Post(context.Background(), "/payments/credit_card", tx))

	select {
	case r := <-got:
		assert.Equal(t, "/payments/credit_card", r.path)
		assert.Equal(t, "Bearer secret", r.auth)
		assert.Equal(t, "u1", r.record["userId"])
		assert.Equal(t, 100.0, r.record["originalAmount"])
	case <-time.After(2 * time.Second):
		t.Fatal("request not received")
	}
}

func TestClient_Post_ErrorStatus(t *testing.T) {
	baseURL, _ := startServer(t, fiber.StatusBadGateway)
	c := New(Config{BaseURL: baseURL, Timeout: 2 * time.Second})

	err := c.Post(context.Background(), "/payments/refund", &models.Refund{TransactionID: "tx1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "502")
}

func TestClient_Post_CanceledContext(t *testing.T) {
	c := New(Config{BaseURL: "http://127.0.0.1:1"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Post(ctx, "/payments/paypal", &models.Transaction{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_DefaultTimeout(t *testing.T) {
	c := New(Config{BaseURL: "http://example.test//"})
	assert.Equal(t, 10*time.Second, c.timeout)
	assert.Equal(t, "http://example.test", c.baseURL)
}
