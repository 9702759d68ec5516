package service

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"nsleadprovider/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Cleanup(restoreGlobals)
	m := NewTokenManager("s", 0)
	require.Equal(t, 24*time.Hour, m.TTL())

	tok, err := m.Issue(model.User{ID: 5, Email: "a@x.com", Role: model.RoleAdmin})
	require.NoError(t, err)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, 5, claims.UserID)
	require.Equal(t, "a@x.com", claims.Email)
	require.Equal(t, "5", claims.Subject)
	require.True(t, claims.IsAdmin())
	require.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenPayloadFieldNames(t *testing.T) {
	m := NewTokenManager("s", time.Hour)
	tok, err := m.Issue(model.User{ID: 9, Email: "b@x.com", Role: model.RoleUser})
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	require.EqualValues(t, 9, payload["userId"])
	require.Equal(t, "b@x.com", payload["email"])
	require.Equal(t, "user", payload["role"])
	require.Contains(t, payload, "exp")
}

func TestTokenVerifyRejects(t *testing.T) {
	t.Cleanup(restoreGlobals)
	m := NewTokenManager("s", time.Minute)

	_, err := m.Verify("invalid")
	require.Error(t, err)

	other, err := NewTokenManager("other", time.Minute).Issue(model.User{ID: 1})
	require.NoError(t, err)
	_, err = m.Verify(other)
	require.Error(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 1, RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = m.Verify(unsigned)
	require.Error(t, err)

	tok, err := m.Issue(model.User{ID: 1})
	require.NoError(t, err)
	timeNow = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = m.Verify(tok)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenEmptySecret(t *testing.T) {
	m := NewTokenManager("", time.Minute)
	_, err := m.Issue(model.User{ID: 1})
	require.Error(t, err)
	_, err = m.Verify("x.y.z")
	require.Error(t, err)
}

func TestTokenInvalidClaims(t *testing.T) {
	t.Cleanup(restoreGlobals)
	parseWithClaims = func(string, jwt.Claims, jwt.Keyfunc, ...jwt.ParserOption) (*jwt.Token, error) {
		return &jwt.Token{Claims: jwt.MapClaims{}, Valid: true}, nil
	}
	_, err := NewTokenManager("s", time.Minute).Verify("a.b.c")
	require.EqualError(t, err, "invalid token")
}
