package router

import (
	"net/http"
	"testing"
	"time"

	"taskdesk/internal/cache"
	"taskdesk/internal/config"
	"taskdesk/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	e := echo.New()
	cfg := &config.Config{
		JWTSecret:      "testsecret",
		JWTAlgorithm:   "HS256",
		AccessTokenTTL: 15 * time.Minute,
	}
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, cfg)

	want := map[string]bool{
		http.MethodGet + " /ping":                  true,
		http.MethodPost + " /auth/":                true,
		http.MethodPost + " /auth/token":           true,
		http.MethodGet + " /todo/":                 true,
		http.MethodGet + " /todo/me":               true,
		http.MethodGet + " /todo/:todo_id/":        true,
		http.MethodPost + " /todo/":                true,
		http.MethodPut + " /todo/:todo_id/":        true,
		http.MethodDelete + " /todo/:todo_id/":     true,
		http.MethodGet + " /user/me":               true,
		http.MethodPut + " /user/change_password":  true,
		http.MethodPost + " /address/":             true,
	}

	got := map[string]bool{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = true
	}
	for route := range want {
		require.True(t, got[route], "missing route %s", route)
	}
	require.Len(t, got, len(want))
}
