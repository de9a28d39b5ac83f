package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrDuplicate, http.StatusBadRequest},
		{ErrValidation, http.StatusBadRequest},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrUpstream, http.StatusInternalServerError},
		{ErrConfig, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		res := httptest.NewRecorder()
		RespondError(res, fmt.Errorf("context: %w", tc.err))
		require.Equal(t, tc.status, res.Code, "error %v", tc.err)
		require.Contains(t, res.Body.String(), `"error"`)
	}
}

func TestInternalErrorsAreOpaque(t *testing.T) {
	res := httptest.NewRecorder()
	RespondError(res, errors.New("pq: connection refused"))
	require.NotContains(t, res.Body.String(), "connection refused")
}
