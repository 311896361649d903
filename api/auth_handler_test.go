package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blog-api/auth"
)

func newTestIssuer(t *testing.T) *auth.Issuer {
	t.Helper()
	issuer, err := auth.NewIssuer(auth.IssuerConfig{
		Key:           "handler-test-signing-key",
		Issuer:        "blog-api",
		Audience:      "blog-api-clients",
		ExpireMinutes: 30,
	})
	if err != nil {
		t.Fatalf("creating issuer: %v", err)
	}
	return issuer
}

func TestLoginSuccess(t *testing.T) {
	issuer := newTestIssuer(t)
	handler := newAuthHandler(issuer, auth.NewStaticCredentials())

	body := `{"username":"admin@gmail.com","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.login()(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	resp := decodeJSON[TokenResponse](t, w)
	if resp.Token == "" {
		t.Fatal("expected a token in the response")
	}

	subject, err := issuer.Verify(resp.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if subject != "admin@gmail.com" {
		t.Errorf("expected subject %q, got %q", "admin@gmail.com", subject)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	handler := newAuthHandler(newTestIssuer(t), auth.NewStaticCredentials())

	bodies := []string{
		`{"username":"admin@gmail.com","password":"wrong"}`,
		`{"username":"someone@else.com","password":"password123"}`,
		`{"username":"","password":""}`,
		`{not json`,
	}
	for _, body := range bodies {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		w := httptest.NewRecorder()
		handler.login()(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("body %q: expected status %d, got %d", body, http.StatusUnauthorized, w.Code)
			continue
		}
		msg := decodeJSON[MessageResponse](t, w)
		if msg.Message != "Invalid credentials" {
			t.Errorf("body %q: expected %q, got %q", body, "Invalid credentials", msg.Message)
		}
		if strings.Contains(w.Body.String(), "token") {
			t.Errorf("body %q: no token must be produced on failure", body)
		}
	}
}
