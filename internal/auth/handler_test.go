package auth_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/stride-commerce/stride/internal/auth"
)

func slogDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthRouter(t *testing.T) http.Handler {
	t.Helper()
	svc, _ := newService(newMemoryRepo())
	handler := auth.NewHandler(slogDiscard(), svc)
	r := chi.NewRouter()
	r.Route("/users", handler.MountRoutes)
	return r
}

func postJSON(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func TestSignupEndpoint(t *testing.T) {
	router := newAuthRouter(t)

	res := postJSON(t, router, "/users/signup", `{"email":"a@x.com","password":"secret1","firstName":"A","lastName":"B"}`)
	require.Equal(t, http.StatusCreated, res.Code)

	var body struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)

	// Same email again fails regardless of the other fields.
	res = postJSON(t, router, "/users/signup", `{"email":"a@x.com","password":"other-pass","firstName":"C","lastName":"D"}`)
	require.Equal(t, http.StatusBadRequest, res.Code)
	require.Contains(t, res.Body.String(), "already exists")
}

func TestSignupShortPassword(t *testing.T) {
	router := newAuthRouter(t)

	res := postJSON(t, router, "/users/signup", `{"email":"a@x.com","password":"12345","firstName":"A","lastName":"B"}`)
	require.Equal(t, http.StatusBadRequest, res.Code)
	require.Contains(t, res.Body.String(), "at least 6 characters")
}

func TestSignupMissingFields(t *testing.T) {
	router := newAuthRouter(t)

	res := postJSON(t, router, "/users/signup", `{"email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusBadRequest, res.Code)
	require.Contains(t, res.Body.String(), "required")
}

func TestLoginEndpoint(t *testing.T) {
	router := newAuthRouter(t)

	res := postJSON(t, router, "/users/signup", `{"email":"a@x.com","password":"secret1","firstName":"A","lastName":"B"}`)
	require.Equal(t, http.StatusCreated, res.Code)

	res = postJSON(t, router, "/users/login", `{"email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, res.Code)

	var body struct {
		Token string `json:"token"`
		User  struct {
			Email     string `json:"email"`
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	require.Equal(t, "a@x.com", body.User.Email)
	require.NotContains(t, res.Body.String(), "password")
	require.NotContains(t, res.Body.String(), "hash")
}

func TestLoginStoreFaultAnswers500(t *testing.T) {
	svc, _ := newService(faultyRepo{})
	handler := auth.NewHandler(slogDiscard(), svc)
	r := chi.NewRouter()
	r.Route("/users", handler.MountRoutes)

	res := postJSON(t, r, "/users/login", `{"email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusInternalServerError, res.Code)
	require.NotContains(t, res.Body.String(), "connection refused")
}

func TestLoginFailureBodiesIdentical(t *testing.T) {
	router := newAuthRouter(t)

	res := postJSON(t, router, "/users/signup", `{"email":"a@x.com","password":"secret1","firstName":"A","lastName":"B"}`)
	require.Equal(t, http.StatusCreated, res.Code)

	wrongPass := postJSON(t, router, "/users/login", `{"email":"a@x.com","password":"wrong"}`)
	unknownEmail := postJSON(t, router, "/users/login", `{"email":"nobody@x.com","password":"secret1"}`)

	require.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	require.Equal(t, wrongPass.Body.String(), unknownEmail.Body.String())
}
