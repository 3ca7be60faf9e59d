package zulu

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
)

func TestPackagesURL(t *testing.T) {
	c := NewClient()
	got := c.PackagesURL(Request{JavaVersion: "24", OS: "linux-glibc", Arch: "x64", JavaFXBundled: "false"})

	if !strings.HasPrefix(got, DefaultBaseURL+"?") {
		t.Fatalf("PackagesURL = %q, want prefix %q", got, DefaultBaseURL)
	}
	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("parsing %q: %v", got, err)
	}
	if u.Query().Get("release_status") != "ga" {
		t.Errorf("release_status = %q, want ga", u.Query().Get("release_status"))
	}
}

func TestWithBaseURL_TrimsSlash(t *testing.T) {
	c := NewClient(WithBaseURL("http://example.test/packages/"))
	if c.baseURL != "http://example.test/packages" {
		t.Errorf("baseURL = %q", c.baseURL)
	}

	c = NewClient(WithBaseURL(""))
	if c.baseURL != DefaultBaseURL {
		t.Errorf("empty base URL should keep the default, got %q", c.baseURL)
	}
}

func TestPackages(t *testing.T) {
	var query url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name":"first"},{"name":"second"}]`))
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL))
	pkgs, err := c.Packages(context.Background(), Request{JavaVersion: "25", OS: "macos", Arch: "aarch64", JavaFXBundled: "true"})
	if err != nil {
		t.Fatalf("Packages failed: %v", err)
	}
	if len(pkgs) != 2 {
		t.Fatalf("got %d packages, want 2", len(pkgs))
	}
	if string(pkgs[0]) != `{"name":"first"}` {
		t.Errorf("first package = %s", pkgs[0])
	}
	if query.Get("release_status") != "ea" {
		t.Errorf("release_status = %q, want ea", query.Get("release_status"))
	}
	if query.Get("javafx_bundled") != "true" || query.Get("os") != "macos" {
		t.Errorf("unexpected query: %v", query)
	}
}

func TestPackages_Empty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL))
	pkgs, err := c.Packages(context.Background(), Request{JavaVersion: "24"})
	if err != nil {
		t.Fatalf("Packages failed: %v", err)
	}
	if len(pkgs) != 0 {
		t.Errorf("got %d packages, want 0", len(pkgs))
	}
}

func TestPackages_StatusError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL))
	_, err := c.Packages(context.Background(), Request{JavaVersion: "24"})

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Packages error = %v, want *StatusError", err)
	}
	if statusErr.Code != http.StatusServiceUnavailable {
		t.Errorf("Code = %d, want 503", statusErr.Code)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("server called %d times, want exactly 1 (no retries)", n)
	}
}

func TestPackages_NotAnArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"nope"}`))
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL))
	if _, err := c.Packages(context.Background(), Request{JavaVersion: "24"}); err == nil {
		t.Fatal("expected decode error for non-array body")
	}
}
