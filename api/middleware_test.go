package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// probeHandler reports whether the middleware let the request through and
// what username it attached.
func probeHandler(called *bool, username *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		if u, err := ctxUsername(r.Context()); err == nil {
			*username = u
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateValidToken(t *testing.T) {
	issuer := newTestIssuer(t)
	middleware := newAuthMiddleware(issuer)

	token, err := issuer.Generate("admin@gmail.com")
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	var called bool
	var username string
	req := httptest.NewRequest(http.MethodPost, "/api/blogs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	middleware.authenticate(probeHandler(&called, &username)).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if !called {
		t.Fatal("expected the protected handler to run")
	}
	if username != "admin@gmail.com" {
		t.Errorf("expected username in context, got %q", username)
	}
}

func TestAuthenticateRejects(t *testing.T) {
	issuer := newTestIssuer(t)
	middleware := newAuthMiddleware(issuer)

	// Signed with the right key but already expired.
	expiredClaims := jwt.RegisteredClaims{
		Subject:   "admin@gmail.com",
		Issuer:    "blog-api",
		Audience:  jwt.ClaimStrings{"blog-api-clients"},
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).
		SignedString([]byte("handler-test-signing-key"))
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"empty bearer", "Bearer "},
		{"garbage token", "Bearer not-a-token"},
		{"expired token", "Bearer " + expired},
	}

	for _, tc := range cases {
		var called bool
		var username string
		req := httptest.NewRequest(http.MethodPost, "/api/blogs", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		w := httptest.NewRecorder()
		middleware.authenticate(probeHandler(&called, &username)).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected status %d, got %d", tc.name, http.StatusUnauthorized, w.Code)
		}
		if called {
			t.Errorf("%s: protected handler ran without a valid token", tc.name)
		}
	}
}

func TestRecoverPanicsWritesMasked500(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("database exploded: secret dsn")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/blogs", nil)
	w := httptest.NewRecorder()
	RecoverPanics(panicking).ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
	msg := decodeJSON[MessageResponse](t, w)
	if msg.Message != "Internal server error" {
		t.Errorf("expected masked message, got %q", msg.Message)
	}
}
