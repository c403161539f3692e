package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/buildmaster/cli/internal/api"
)

func TestExitCodeFromError_Nil(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCodeFromError(nil))
}

func TestExitCodeFromError_ExitErrorWins(t *testing.T) {
	err := NewExitError(errors.New("boom"), ExitNotFound)
	assert.Equal(t, ExitNotFound, ExitCodeFromError(err))

	wrapped := fmt.Errorf("context: %w", err)
	assert.Equal(t, ExitNotFound, ExitCodeFromError(wrapped))
}

func TestExitCodeFromError_Sentinels(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", WrapValidation(errors.New("bad input"), "checking"), ExitValidationError},
		{"connectivity", WrapConnectivity(errors.New("refused"), "dialing"), ExitConnectivityError},
		{"unauthorized", WrapUnauthorized(errors.New("no session"), "guarding"), ExitUnauthorized},
		{"not found", WrapNotFound(errors.New("gone"), "fetching"), ExitNotFound},
		{"unknown", errors.New("mystery"), ExitGeneralError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExitCodeFromError(tc.err))
		})
	}
}

func TestExitCodeFromError_APISentinelsMapped(t *testing.T) {
	assert.Equal(t, ExitConnectivityError,
		ExitCodeFromError(fmt.Errorf("listing: %w", api.ErrConnectivity)))
	assert.Equal(t, ExitUnauthorized,
		ExitCodeFromError(fmt.Errorf("saving: %w", api.ErrUnauthorized)))
	assert.Equal(t, ExitNotFound,
		ExitCodeFromError(fmt.Errorf("fetching: %w", api.ErrNotFound)))
	assert.Equal(t, ExitValidationError,
		ExitCodeFromError(fmt.Errorf("form: %w", api.ErrValidation)))
	assert.Equal(t, ExitGeneralError,
		ExitCodeFromError(fmt.Errorf("rejected: %w", api.ErrRemote)))
}

func TestExitError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := NewExitError(inner, ExitGeneralError)
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "inner", err.Error())
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Unauthorized", ExitCodeName(ExitUnauthorized))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}
