package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nsleadprovider/internal/logging"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/require"
)

func TestRequestLoggingCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: func() string { return "rid-1" }}))
	e.Use(InjectLogger(base))
	e.Use(RequestLogger())
	e.GET("/hello", func(c echo.Context) error {
		logging.FromContext(c.Request().Context()).Info("inside handler")
		return c.String(http.StatusOK, "hi")
	})
	e.GET("/missing", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "nope")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hello", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "rid-1", rec.Header().Get(echo.HeaderXRequestID))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "inside handler", entry["msg"])
	require.Equal(t, "rid-1", entry["request_id"])

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	require.Equal(t, "request", entry["msg"])
	require.Equal(t, "/hello", entry["uri"])
	require.EqualValues(t, 200, entry["status"])

	entry = map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &entry))
	require.Equal(t, "WARN", entry["level"])
	require.EqualValues(t, 404, entry["status"])
}

func TestRecoverLogsPanicThroughSlog(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: func() string { return "rid-2" }}))
	e.Use(InjectLogger(base))
	e.Use(RequestLogger())
	e.Use(Recover())
	e.GET("/boom", func(echo.Context) error { panic("kaboom") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "panic recovered", entry["msg"])
	require.Equal(t, "ERROR", entry["level"])
	require.Equal(t, "kaboom", entry["error"])
	require.Equal(t, "rid-2", entry["request_id"])
	require.Contains(t, entry["stack"], "goroutine")

	entry = map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	require.Equal(t, "request", entry["msg"])
	require.EqualValues(t, 500, entry["status"])
}
