package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nsleadprovider/internal/logging"
	"nsleadprovider/internal/model"
	"nsleadprovider/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var tokens = service.NewTokenManager("middleware-secret", time.Minute)

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func issue(t *testing.T, u model.User) string {
	t.Helper()
	tok, err := tokens.Issue(u)
	require.NoError(t, err)
	return tok
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	return he.Code
}

func TestExtractClaims(t *testing.T) {
	ctx, _ := newContext("")
	_, err := extractClaims(ctx, tokens)
	require.Equal(t, http.StatusUnauthorized, httpCode(t, err))
	require.Equal(t, "missing token", err.(*echo.HTTPError).Message)

	for _, h := range []string{"BadHeader", "Bearer ", "Basic abc"} {
		ctx, _ = newContext(h)
		_, err = extractClaims(ctx, tokens)
		require.Equal(t, http.StatusUnauthorized, httpCode(t, err), h)
	}

	ctx, _ = newContext("Bearer invalid")
	_, err = extractClaims(ctx, tokens)
	require.Equal(t, http.StatusUnauthorized, httpCode(t, err))

	expired := service.NewTokenManager("middleware-secret", time.Nanosecond)
	tok, err := expired.Issue(model.User{ID: 1})
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)
	ctx, _ = newContext("Bearer " + tok)
	_, err = extractClaims(ctx, tokens)
	require.Equal(t, http.StatusUnauthorized, httpCode(t, err))

	ctx, _ = newContext("bearer " + issue(t, model.User{ID: 1, Email: "a@x.com", Role: model.RoleAdmin}))
	claims, err := extractClaims(ctx, tokens)
	require.NoError(t, err)
	require.Equal(t, 1, claims.UserID)
	require.True(t, claims.IsAdmin())
}

func TestRequireAuth(t *testing.T) {
	ctx, rec := newContext("Bearer " + issue(t, model.User{ID: 2, Role: model.RoleUser}))
	called := false
	handler := RequireAuth(tokens)(func(c echo.Context) error {
		called = true
		cl, ok := CurrentClaims(c)
		require.True(t, ok)
		require.Equal(t, 2, cl.UserID)
		require.NotNil(t, logging.FromContext(c.Request().Context()))
		id, ok := IdentityFromContext(c.Request().Context())
		require.True(t, ok)
		require.Equal(t, 2, id.UserID)
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(ctx))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	ctx, _ = newContext("")
	called = false
	err := RequireAuth(tokens)(func(echo.Context) error { called = true; return nil })(ctx)
	require.Equal(t, http.StatusUnauthorized, httpCode(t, err))
	require.False(t, called)
}

func TestIdentityFromContext(t *testing.T) {
	_, ok := IdentityFromContext(context.Background())
	require.False(t, ok)

	ctx := WithIdentity(context.Background(), &service.Claims{UserID: 9})
	id, ok := IdentityFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, 9, id.UserID)

	_, ok = IdentityFromContext(WithIdentity(context.Background(), nil))
	require.False(t, ok)
}

func TestRequireAdmin(t *testing.T) {
	adminTok := issue(t, model.User{ID: 3, Role: model.RoleAdmin})
	userTok := issue(t, model.User{ID: 4, Role: model.RoleUser})

	ctx, rec := newContext("Bearer " + adminTok)
	called := false
	err := RequireAdmin(tokens)(func(c echo.Context) error { called = true; return c.String(http.StatusOK, "admin") })(ctx)
	require.NoError(t, err)
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	ctx, _ = newContext("Bearer " + userTok)
	called = false
	err = RequireAdmin(tokens)(func(c echo.Context) error { called = true; return nil })(ctx)
	require.Equal(t, http.StatusForbidden, httpCode(t, err))
	require.False(t, called)

	for _, h := range []string{"", "Bearer garbage"} {
		ctx, _ = newContext(h)
		err = RequireAdmin(tokens)(func(c echo.Context) error { called = true; return nil })(ctx)
		require.Equal(t, http.StatusForbidden, httpCode(t, err), h)
		require.False(t, called)
	}
}

func TestOptionalAuth(t *testing.T) {
	for _, h := range []string{"", "Bearer garbage"} {
		ctx, _ := newContext(h)
		err := OptionalAuth(tokens)(func(c echo.Context) error {
			_, ok := CurrentClaims(c)
			require.False(t, ok)
			return nil
		})(ctx)
		require.NoError(t, err)
	}

	ctx, _ := newContext("Bearer " + issue(t, model.User{ID: 9, Email: "z@x.com"}))
	err := OptionalAuth(tokens)(func(c echo.Context) error {
		cl, ok := CurrentClaims(c)
		require.True(t, ok)
		require.Equal(t, "z@x.com", cl.Email)
		return nil
	})(ctx)
	require.NoError(t, err)
}
