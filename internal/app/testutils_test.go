package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"cinebook/api"
	"cinebook/internal/mailer"
	"cinebook/internal/mocks"
	"cinebook/internal/validator"
)

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		config:         Config{Env: "test"},
		validator:      validator.NewValidator(),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		sessionManager: scs.New(),
		mailer:         mailer.NewMockMailer(),
		userRepo:       &mocks.MockUserRepo{},
		movieRepo:      &mocks.MockMovieRepo{},
		showRepo:       &mocks.MockShowRepo{},
		seatRepo:       &mocks.MockSeatRepo{},
		bookingRepo:    &mocks.MockBookingRepo{},
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	var reader io.Reader

	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

// withURLParams injects chi route parameters so handlers can be called
// without going through the router.
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()

	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withUser injects an authenticated user id the way requireAuthentication
// does.
func withUser(r *http.Request, userID int) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), SessionKeyUserId, userID))
}

// withSession loads a fresh session into the request context so handlers
// that touch the session manager can run outside the middleware chain.
func withSession(t *testing.T, app *Application, r *http.Request) *http.Request {
	t.Helper()

	ctx, err := app.sessionManager.Load(r.Context(), "")
	if err != nil {
		t.Fatalf("failed to load session: %v", err)
	}

	return r.WithContext(ctx)
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantErrMessage string) {
	t.Helper()

	if wantStatus >= 200 && wantStatus < 300 {
		return
	}

	switch wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if wantErrMessage != "" && !errorSet[wantErrMessage] {
			t.Errorf("expected validation error message %q not found in response", wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("failed to decode error response: %v", err)
		}

		if wantErrMessage != "" && errorResp.Message != wantErrMessage {
			t.Errorf("error message = %v, want %v", errorResp.Message, wantErrMessage)
		}
	}
}
