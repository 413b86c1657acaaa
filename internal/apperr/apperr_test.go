package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"taxi-zebra/internal/apperr"
)

func TestWith_matchesKind(t *testing.T) {
	err := apperr.With(apperr.ErrUnauthorized, "login failed for %s", "john")
	require.ErrorIs(t, err, apperr.ErrUnauthorized)
	require.NotErrorIs(t, err, apperr.ErrServer)
	require.Equal(t, "login failed for john", err.Error())
}

func TestWrap_matchesCauseAndKind(t *testing.T) {
	cause := errors.New("boom")
	err := apperr.Wrap(apperr.ErrServer, cause, "zebra server error")
	require.ErrorIs(t, err, cause)
	require.ErrorIs(t, err, apperr.ErrServer)
	require.Equal(t, "zebra server error: boom", err.Error())

	wrapped := fmt.Errorf("get projects: %w", err)
	require.ErrorIs(t, wrapped, apperr.ErrServer)
	require.Equal(t, "zebra server error", apperr.UserMessage(wrapped))
}

func TestError_kindOnly(t *testing.T) {
	err := &apperr.Error{}
	require.Equal(t, "unknown error", err.Error())
	require.Equal(t, "plain", apperr.UserMessage(errors.New("plain")))
}
