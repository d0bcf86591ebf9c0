package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayID(t *testing.T) {
	app := fiber.New()
	app.Use(RayID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(RayIDKey).(string))
	})

	t.Run("Generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil), 2000)
		require.NoError(t, err)
		id := resp.Header.Get(RayIDHeader)
		_, err = uuid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("Propagated", func(t *testing.T) {
		incoming := uuid.NewString()
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(RayIDHeader, incoming)
		resp, err := app.Test(req, 2000)
		require.NoError(t, err)
		assert.Equal(t, incoming, resp.Header.Get(RayIDHeader))
	})

	t.Run("InvalidReplaced", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(RayIDHeader, "not-a-uuid")
		resp, err := app.Test(req, 2000)
		require.NoError(t, err)
		assert.NotEqual(t, "not-a-uuid", resp.Header.Get(RayIDHeader))
	})
}

func TestAuth(t *testing.T) {
	newApp := func(key string) *fiber.App {
		app := fiber.New()
		app.Use(Auth(key))
		app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
		return app
	}

	tests := []struct {
		name   string
		key    string
		header string
		value  string
		want   int
	}{
		{"Disabled", "", "", "", fiber.StatusOK},
		{"Missing", "secret", "", "", fiber.StatusUnauthorized},
		{"Wrong", "secret", APIKeyHeader, "nope", fiber.StatusUnauthorized},
		{"Header", "secret", APIKeyHeader, "secret", fiber.StatusOK},
		{"Bearer", "secret", fiber.HeaderAuthorization, "Bearer secret", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			resp, err := newApp(tt.key).Test(req, 2000)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
