package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDoJSON_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/echo" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("User-Agent") != DefaultUserAgent || r.Header.Get("X-Trace") != "1" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		_ = json.NewEncoder(w).Encode(map[string]string{"got": in["msg"]})
	}))
	defer srv.Close()

	c, err := New(Options{BaseURL: srv.URL + "/"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var out map[string]string
	if err := c.DoJSON(context.Background(), http.MethodPost, "echo", map[string]string{"X-Trace": "1"}, map[string]string{"msg": "hola"}, &out); err != nil {
		t.Fatalf("DoJSON: %v", err)
	}
	if out["got"] != "hola" {
		t.Fatalf("unexpected response %v", out)
	}
}

func TestDoJSON_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusTeapot)
	}))
	defer srv.Close()

	c, _ := New(Options{})
	err := c.DoJSON(context.Background(), http.MethodGet, srv.URL+"/x", nil, nil, nil)

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusTeapot || httpErr.Body != "nope" {
		t.Fatalf("expected HTTPError 418, got %v", err)
	}
}

func TestResolveURL(t *testing.T) {
	c, _ := New(Options{})
	if _, err := c.resolveURL("/relative"); err == nil {
		t.Fatal("expected error for relative path without BaseURL")
	}
	if _, err := New(Options{BaseURL: "not a url"}); err == nil {
		t.Fatal("expected error for invalid base url")
	}
}
