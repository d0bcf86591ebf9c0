package logger

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"Debug console", Config{Level: "debug", Format: "console"}, false},
		{"Info json", Config{Level: "info", Format: "json"}, false},
		{"Warn", Config{Level: "warn"}, false},
		{"Empty level", Config{}, false},
		{"Invalid level", Config{Level: "loud"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestMiddleware_LogsRayID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := zap.New(core)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("ray_id", "ray-123")
		return c.Next()
	})
	app.Use(Middleware(l))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	entries := logs.FilterMessage("Request handled").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "ray-123", entries[0].ContextMap()["ray_id"])
	assert.Equal(t, "/ping", entries[0].ContextMap()["path"])
}
