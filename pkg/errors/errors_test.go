// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/metov/dotstree/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "root not found",
			wantStr: "[NOT_FOUND] root not found",
		},
		{
			name:    "spec_invalid_error",
			code:    errors.ErrSpecInvalid,
			message: "spec is not a mapping",
			wantStr: "[SPEC_INVALID] spec is not a mapping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	base := stderrors.New("permission denied")

	err := errors.Wrap(base, errors.ErrFileAccess, "cannot read spec")
	require.NotNil(t, err)
	assert.Equal(t, "[FILE_ACCESS] cannot read spec: permission denied", err.Error())
	assert.True(t, stderrors.Is(err, base))

	assert.Nil(t, errors.Wrap(nil, errors.ErrFileAccess, "nothing"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrFileAccess, "nothing %d", 1))
}

func TestIsMatchesByCode(t *testing.T) {
	err := errors.Newf(errors.ErrCommandFailed, "%q exited with %d", "exit 3", 3)

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrCommandFailed, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrSpecInvalid, "")))
}

func TestErrorCodeHelpers(t *testing.T) {
	err := errors.New(errors.ErrTargetExists, "target occupied").
		WithDetail("target", "/cfg/bash/bashrc")
	wrapped := stderrors.Join(stderrors.New("context"), err)

	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrTargetExists))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrLocked))
	assert.Equal(t, errors.ErrTargetExists, errors.GetErrorCode(wrapped))
	assert.Equal(t, "/cfg/bash/bashrc", errors.GetErrorDetails(wrapped)["target"])

	plain := stderrors.New("plain")
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(plain))
	assert.Nil(t, errors.GetErrorDetails(plain))
}
