package loader

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(r fiber.Router) error {
	if f.err != nil {
		return f.err
	}
	f.loaded = true
	r.Get("/"+f.name, func(c *fiber.Ctx) error { return c.SendString(f.name) })
	return nil
}

func TestManager_LoadAll(t *testing.T) {
	books := &fakeFeature{name: "books", enabled: true}
	off := &fakeFeature{name: "off", enabled: false}

	m := NewManager(zap.NewNop())
	m.Register(books, off)
	assert.Len(t, m.Features(), 2)

	app := fiber.New()
	require.NoError(t, m.LoadAll(app.Group("/api")))

	assert.True(t, books.loaded)
	assert.False(t, off.loaded)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/books", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/off", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestManager_LoadAllStopsOnError(t *testing.T) {
	bad := &fakeFeature{name: "bad", enabled: true, err: errors.New("boom")}
	after := &fakeFeature{name: "after", enabled: true}

	m := NewManager(zap.NewNop())
	m.Register(bad, after)

	err := m.LoadAll(fiber.New())
	assert.ErrorContains(t, err, "load feature bad: boom")
	assert.False(t, after.loaded)
}
