package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type mockValidator struct {
	validateFunc func(ctx context.Context, token string) (string, error)
}

func (m *mockValidator) ValidateSession(ctx context.Context, token string) (string, error) {
	if m.validateFunc != nil {
		return m.validateFunc(ctx, token)
	}
	return "", errors.New("not found")
}

func TestRequireAuth_NoCookie_Returns401(t *testing.T) {
	mw := RequireAuth(&mockValidator{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not be called")
	})

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAuth_InvalidToken_Returns401(t *testing.T) {
	mw := RequireAuth(&mockValidator{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not be called")
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName(), Value: "bogus"})
	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAuth_ValidToken_CallsNextWithUserID(t *testing.T) {
	mw := RequireAuth(&mockValidator{
		validateFunc: func(_ context.Context, token string) (string, error) {
			if token == "good-token" {
				return "user-123", nil
			}
			return "", errors.New("not found")
		},
	})

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName(), Value: "good-token"})
	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if gotUserID != "user-123" {
		t.Errorf("expected userID=user-123, got %q", gotUserID)
	}
}

func TestGenerateSessionToken_UniqueHex(t *testing.T) {
	a, err := GenerateSessionToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _ := GenerateSessionToken()
	if len(a) != 64 {
		t.Errorf("expected 64 chars, got %d", len(a))
	}
	if a == b {
		t.Error("expected distinct tokens")
	}
}

func TestSessionCookies(t *testing.T) {
	rec := httptest.NewRecorder()
	ClearSessionCookie(rec, true)
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != SessionCookieName() || cookies[0].MaxAge >= 0 {
		t.Errorf("expected expired session cookie, got %+v", cookies)
	}
	if !cookies[0].HttpOnly || !cookies[0].Secure {
		t.Error("expected HttpOnly and Secure cookie")
	}
}
