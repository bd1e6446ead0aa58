package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchText_OK(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("proxies: []\n"))
	}))
	defer ts.Close()

	got, err := FetchText(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "proxies: []\n" {
		t.Fatalf("got=%q", got)
	}
}

func TestFetchText_RejectsNonHTTPURL(t *testing.T) {
	for _, u := range []string{"ftp://example.com/a", "file:///etc/passwd", "not a url", ""} {
		_, err := FetchText(context.Background(), u)
		var fe *FetchError
		if !errors.As(err, &fe) || fe.Status != http.StatusBadRequest {
			t.Fatalf("url=%q err=%v, want 400 FetchError", u, err)
		}
	}
}

func TestFetchText_Non2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := FetchText(context.Background(), ts.URL)
	var fe *FetchError
	if !errors.As(err, &fe) || fe.Status != http.StatusBadGateway || fe.AppError.Code != "FETCH_FAILED" {
		t.Fatalf("err=%v, want 502 FETCH_FAILED", err)
	}
}

func TestFetchText_TooLarge(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 64)))
	}))
	defer ts.Close()

	_, err := FetchTextWithOptions(context.Background(), ts.URL, Options{MaxBytes: 16})
	var fe *FetchError
	if !errors.As(err, &fe) || fe.AppError.Code != "TOO_LARGE" {
		t.Fatalf("err=%v, want TOO_LARGE", err)
	}
}

func TestFetchText_InvalidUTF8(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte{0xff, 0xfe, 0xfd})
	}))
	defer ts.Close()

	_, err := FetchText(context.Background(), ts.URL)
	var fe *FetchError
	if !errors.As(err, &fe) || fe.AppError.Code != "FETCH_INVALID_UTF8" {
		t.Fatalf("err=%v, want FETCH_INVALID_UTF8", err)
	}
}

func TestFetchText_RedirectCap(t *testing.T) {
	var ts *httptest.Server
	ts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, ts.URL+r.URL.Path+"x", http.StatusFound)
	}))
	defer ts.Close()

	_, err := FetchTextWithOptions(context.Background(), ts.URL, Options{MaxRedirects: 2})
	var fe *FetchError
	if !errors.As(err, &fe) || fe.AppError.Code != "FETCH_FAILED" {
		t.Fatalf("err=%v, want FETCH_FAILED after redirect cap", err)
	}
}
