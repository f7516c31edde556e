package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func TestHealthHandler_Ready(t *testing.T) {
	tests := []struct {
		name       string
		mongo      Pinger
		redis      Pinger
		wantStatus int
		wantMongo  string
		wantRedis  string
	}{
		{"all up", fakePinger{}, fakePinger{}, fiber.StatusOK, "ok", "ok"},
		{"cache disabled", fakePinger{}, nil, fiber.StatusOK, "ok", "disabled"},
		{"mongo down", fakePinger{err: errors.New("no primary")}, nil, fiber.StatusServiceUnavailable, "no primary", "disabled"},
		{"redis down", fakePinger{}, fakePinger{err: errors.New("refused")}, fiber.StatusServiceUnavailable, "ok", "refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler("plantnet", "test", tt.mongo, tt.redis)
			app := fiber.New()
			app.Get("/ready", h.Ready)

			resp, err := app.Test(httptest.NewRequest("GET", "/ready", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			deps, ok := body["dependencies"].(map[string]any)
			if !ok {
				deps = body["error"].(map[string]any)["details"].(map[string]any)
			}
			assert.Equal(t, tt.wantMongo, deps["mongo"])
			assert.Equal(t, tt.wantRedis, deps["redis"])
		})
	}
}

func TestHealthHandler_Live(t *testing.T) {
	app := fiber.New()
	app.Get("/live", NewHealthHandler("plantnet", "1.2.3", fakePinger{}, nil).Live)

	resp, err := app.Test(httptest.NewRequest("GET", "/live", nil), -1)
	require.NoError(t, err)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "alive", body["status"])
	assert.Equal(t, "1.2.3", body["version"])
}
