package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	err := Wrap(ErrConflict, "user %d already friends with %d", 1, 2)

	require.ErrorIs(t, err, ErrConflict)
	require.True(t, IsConflict(err))
	require.False(t, IsNotFound(err))
	require.Equal(t, "conflict: user 1 already friends with 2", err.Error())
}

func TestWrap_KindsAreDistinct(t *testing.T) {
	kinds := []error{ErrValidation, ErrConflict, ErrForbidden, ErrNotFound, ErrExpired, ErrInternal}

	for _, kind := range kinds {
		err := Wrap(kind, "boom")
		require.ErrorIs(t, err, kind)
		for _, other := range kinds {
			if other == kind {
				continue
			}
			require.NotErrorIs(t, err, other)
		}
	}
}

func TestWrap_WrapsPlainErrors(t *testing.T) {
	cause := errors.New("db is down")
	err := Wrap(ErrInternal, "list friends: %v", cause)

	require.True(t, IsInternal(err))
	require.Contains(t, err.Error(), "db is down")
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{Wrap(ErrValidation, "bad input"), http.StatusBadRequest},
		{Wrap(ErrForbidden, "nope"), http.StatusForbidden},
		{Wrap(ErrNotFound, "missing"), http.StatusNotFound},
		{Wrap(ErrConflict, "dup"), http.StatusConflict},
		{Wrap(ErrExpired, "stale"), http.StatusGone},
		{Wrap(ErrInternal, "boom"), http.StatusInternalServerError},
		{errors.New("untyped"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d", tc.want), func(t *testing.T) {
			require.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}
