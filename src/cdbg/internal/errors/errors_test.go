package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCustomErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"bad request", NoMessageOnWireError, true},
		{"missing run configuration", fmt.Errorf("attach: %w", MissingRunConfigurationError), true},
		{"unregistered session", SessionNotRegisteredError, true},
		{"other", New("other"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBadRequest(tt.err))
		})
	}
}

func TestRemoteErrors(t *testing.T) {
	wrap := func(err error) error { return fmt.Errorf("polling: %w", err) }

	t.Run("timeout", func(t *testing.T) {
		err := wrap(&TransportTimeoutError{Op: "list", Err: context.DeadlineExceeded})
		assert.True(t, IsTimeout(err))
		assert.False(t, IsConflict(err))
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, "list: wait expired", (&TransportTimeoutError{Op: "list"}).Error())
	})

	t.Run("conflict", func(t *testing.T) {
		err := wrap(&RemoteConflictError{Op: "list", Err: New("409")})
		assert.True(t, IsConflict(err))
		assert.False(t, IsAuthFailure(err))
	})

	t.Run("auth", func(t *testing.T) {
		err := wrap(&AuthFailureError{Op: "list", Code: 403, Err: New("forbidden")})
		assert.True(t, IsAuthFailure(err))
		assert.Contains(t, err.Error(), "403")
	})

	t.Run("not found", func(t *testing.T) {
		err := wrap(&NotFoundError{Kind: "breakpoint", ID: "bp-1"})
		assert.True(t, IsNotFound(err))
		assert.Equal(t, "polling: breakpoint \"bp-1\" not found", err.Error())
	})

	t.Run("rejected", func(t *testing.T) {
		msg, ok := RejectedMessage(wrap(&RemoteRejectedError{Op: "set", Message: "invalid condition"}))
		assert.True(t, ok)
		assert.Equal(t, "invalid condition", msg)

		_, ok = RejectedMessage(New("other"))
		assert.False(t, ok)
	})
}

func TestNotFoundUUID(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	found, ok := NotFoundUUID(fmt.Errorf("getting session: %w", &UUIDNotFoundError{UUID: id}))
	assert.True(t, ok)
	assert.Equal(t, id, found)

	_, ok = NotFoundUUID(New("other"))
	assert.False(t, ok)
	assert.Equal(t, "No session found in context", (&NoSessionFoundError{}).Error())
}

func TestIsRunConfigurationNotFound(t *testing.T) {
	err := fmt.Errorf("loading: %w", &RunConfigurationNotFoundError{WorkspaceRoot: "/ws", RunConfiguration: "server"})
	assert.True(t, IsRunConfigurationNotFound(err))
	assert.False(t, IsNotFound(err))
	assert.Contains(t, err.Error(), `"server"`)
	assert.False(t, IsRunConfigurationNotFound(New("other")))
}
