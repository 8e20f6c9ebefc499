package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TestTokenSigner_RoundTrip verifies an issued token verifies back to the
// same username with an expiry in the future.
func TestTokenSigner_RoundTrip(t *testing.T) {
	signer := NewTokenSigner([]byte("test-secret"))

	token, err := signer.Issue("admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	session, err := signer.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if session.Username != "admin" {
		t.Errorf("Username = %q, want \"admin\"", session.Username)
	}
	if !session.ExpiresAt.After(time.Now()) {
		t.Errorf("ExpiresAt = %v, want future", session.ExpiresAt)
	}
}

// TestTokenSigner_WrongSecret verifies a token signed with one secret is
// rejected by a signer holding another.
func TestTokenSigner_WrongSecret(t *testing.T) {
	token, err := NewTokenSigner([]byte("secret-a")).Issue("admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := NewTokenSigner([]byte("secret-b")).Verify(token); err != ErrInvalidToken {
		t.Errorf("Verify error = %v, want ErrInvalidToken", err)
	}
}

// TestTokenSigner_Expired verifies an expired token is rejected.
func TestTokenSigner_Expired(t *testing.T) {
	secret := []byte("test-secret")
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-9 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewTokenSigner(secret).Verify(token); err != ErrInvalidToken {
		t.Errorf("Verify error = %v, want ErrInvalidToken", err)
	}
}

// TestRequireAuth_MissingHeader verifies a request without credentials is
// rejected with 403.
func TestRequireAuth_MissingHeader(t *testing.T) {
	signer := NewTokenSigner([]byte("test-secret"))
	handler := RequireAuth(signer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest("GET", "/api/admin/overrides", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rr.Code)
	}
}

// TestRequireAuth_MalformedHeader verifies a non-Bearer scheme is treated
// the same as a missing header.
func TestRequireAuth_MalformedHeader(t *testing.T) {
	signer := NewTokenSigner([]byte("test-secret"))
	handler := RequireAuth(signer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest("GET", "/api/admin/overrides", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rr.Code)
	}
}

// TestRequireAuth_InvalidToken verifies a present but bogus token is
// rejected with 401, not 403.
func TestRequireAuth_InvalidToken(t *testing.T) {
	signer := NewTokenSigner([]byte("test-secret"))
	handler := RequireAuth(signer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest("GET", "/api/admin/overrides", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rr.Code)
	}
}

// TestRequireAuth_ValidToken verifies a valid token reaches the handler
// with the session set in context.
func TestRequireAuth_ValidToken(t *testing.T) {
	signer := NewTokenSigner([]byte("test-secret"))
	token, err := signer.Issue("admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	var got Session
	var found bool
	handler := RequireAuth(signer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = GetSessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/admin/overrides", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rr.Code)
	}
	if !found {
		t.Fatal("session not set in context")
	}
	if got.Username != "admin" {
		t.Errorf("Username = %q, want \"admin\"", got.Username)
	}
}
