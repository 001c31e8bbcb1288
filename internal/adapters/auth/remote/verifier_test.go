package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"goat-tracker/internal/ports/auth"
)

func newIAM(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != verifyPath || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("X-Api-Key") != "k" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		var in verifyRequest
		_ = json.NewDecoder(r.Body).Decode(&in)
		switch in.Token {
		case "good":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"user_id":" farmer-1 ","email":"f@example.com"}`))
		case "nouser":
			_, _ = w.Write([]byte(`{"email":"f@example.com"}`))
		case "boom":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
}

func TestVerify_OK(t *testing.T) {
	srv := newIAM(t)
	defer srv.Close()

	v, err := NewVerifier(Config{BaseURL: srv.URL, APIKey: "k"})
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}

	c, err := v.Verify(context.Background(), "good")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if c.UserID != "farmer-1" || c.Email != "f@example.com" {
		t.Fatalf("unexpected claims %#v", c)
	}
}

func TestVerify_ErrorMapping(t *testing.T) {
	srv := newIAM(t)
	defer srv.Close()

	v, _ := NewVerifier(Config{BaseURL: srv.URL, APIKey: "k"})

	if _, err := v.Verify(context.Background(), "bad"); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken on 401, got %v", err)
	}
	if _, err := v.Verify(context.Background(), "boom"); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream on 502, got %v", err)
	}
	if _, err := v.Verify(context.Background(), "nouser"); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream on missing user_id, got %v", err)
	}
	if _, err := v.Verify(context.Background(), "  "); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken on empty token, got %v", err)
	}

	wrongKey, _ := NewVerifier(Config{BaseURL: srv.URL, APIKey: "nope"})
	if _, err := wrongKey.Verify(context.Background(), "good"); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken on 403, got %v", err)
	}
}

func TestNewVerifier_NotConfigured(t *testing.T) {
	if _, err := NewVerifier(Config{BaseURL: "http://iam"}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
