package recaptcha

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient("secret-key")
	c.verifyURL = srv.URL
	return c, srv
}

func TestVerify_PassingScore(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		if r.PostForm.Get("secret") != "secret-key" || r.PostForm.Get("response") != "tok" {
			t.Errorf("unexpected form: %v", r.PostForm)
		}
		_, _ = w.Write([]byte(`{"success":true,"score":0.9}`))
	})
	defer srv.Close()

	ok, err := c.Verify(context.Background(), "tok", "203.0.113.7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected verification to pass")
	}
}

func TestVerify_LowScoreFails(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"score":0.2}`))
	})
	defer srv.Close()

	ok, err := c.Verify(context.Background(), "tok", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected low score to fail verification")
	}
}

func TestVerify_UnsuccessfulFails(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"score":0.9}`))
	})
	defer srv.Close()

	ok, _ := c.Verify(context.Background(), "tok", "")
	if ok {
		t.Error("expected success=false to fail verification")
	}
}

func TestVerify_NotConfigured(t *testing.T) {
	c := NewClient("")
	_, err := c.Verify(context.Background(), "tok", "")
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}
