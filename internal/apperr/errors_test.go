package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	require.Equal(t, KindValidation, KindOf(Validation("bad")))
	require.Equal(t, KindConflict, KindOf(Conflict("dup")))
	require.Equal(t, KindAuth, KindOf(Auth("no")))
	require.Equal(t, KindForbidden, KindOf(Forbidden("no")))
	require.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	require.Equal(t, KindPersistence, KindOf(Persistence("db", errors.New("boom"))))
	require.Equal(t, KindUnknown, KindOf(errors.New("plain")))

	wrapped := fmt.Errorf("outer: %w", NotFound("order not found"))
	require.Equal(t, KindNotFound, KindOf(wrapped))
	require.Equal(t, "order not found", MessageOf(wrapped))
	require.Equal(t, "", MessageOf(errors.New("plain")))
}

func TestPersistenceUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Persistence("failed to place order", cause)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "connection reset")
	require.Equal(t, "failed to place order", MessageOf(err))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:  http.StatusBadRequest,
		KindConflict:    http.StatusConflict,
		KindAuth:        http.StatusUnauthorized,
		KindForbidden:   http.StatusForbidden,
		KindNotFound:    http.StatusNotFound,
		KindPersistence: http.StatusInternalServerError,
		KindUnknown:     http.StatusInternalServerError,
	}
	for kind, want := range cases {
		require.Equal(t, want, HTTPStatus(kind), kind.String())
	}
}
