package errutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := map[CoreStatus]int{
		StatusBadRequest:       http.StatusBadRequest,
		StatusValidationFailed: http.StatusBadRequest,
		StatusUnauthorized:     http.StatusUnauthorized,
		StatusTokenMissing:     http.StatusUnauthorized,
		StatusTokenInvalid:     http.StatusUnauthorized,
		StatusForbidden:        http.StatusForbidden,
		StatusNotFound:         http.StatusNotFound,
		StatusConflict:         http.StatusConflict,
		StatusInternal:         http.StatusInternalServerError,
	}
	for code, want := range cases {
		require.Equal(t, want, code.HTTPStatus(), code)
	}
	require.Equal(t, http.StatusInternalServerError, CoreStatus("SOMETHING").HTTPStatus())
}

func TestAsUnwrapsWrappedErrors(t *testing.T) {
	cause := errors.New("db down")
	err := fmt.Errorf("load user: %w", Internal("Failed to load user!", cause))

	base, ok := As(err)
	require.True(t, ok)
	require.Equal(t, StatusInternal, base.Code)
	require.ErrorIs(t, err, cause)
	require.Contains(t, base.Error(), "db down")
}

func TestValidationFailedCarriesDetails(t *testing.T) {
	err := ValidationFailed(map[string]string{"email": "Invalid email!"})

	base, ok := As(err)
	require.True(t, ok)
	require.Equal(t, StatusValidationFailed, base.Code)
	require.Equal(t, "Invalid email!", base.Details["email"])
}

func TestAsRejectsPlainErrors(t *testing.T) {
	_, ok := As(errors.New("plain"))
	require.False(t, ok)
}
