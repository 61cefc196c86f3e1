package fetch_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/VOLLPilates/assetforge/internal/fetch"
	"github.com/VOLLPilates/assetforge/internal/utils"
)

func newClient() *utils.AssetHTTPClient {
	return utils.NewAssetHTTPClient(utils.HTTPClientConfig{UserAgent: utils.ToolUserAgent})
}

func TestFetchReturnsFullBody(t *testing.T) {
	payload := []byte("raw image bytes")
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write(payload)
	}))
	defer server.Close()

	body, err := fetch.Fetch(newClient(), server.URL+"/pic.webp")
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if !bytes.Equal(body, payload) {
		t.Fatalf("body mismatch: got %q", body)
	}
	if gotAgent != utils.ToolUserAgent {
		t.Fatalf("expected identifying user agent, got %q", gotAgent)
	}
}

func TestFetchNon2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := fetch.Fetch(newClient(), server.URL+"/missing.png")
	if err == nil {
		t.Fatal("expected error for 404")
	}
	var fetchErr *fetch.Error
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *fetch.Error, got %T", err)
	}
	if fetchErr.Status != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", fetchErr.Status)
	}
}

func TestFetchTransportFailureIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	_, err := fetch.Fetch(newClient(), server.URL)
	if err == nil {
		t.Fatal("expected error for refused connection")
	}
	var fetchErr *fetch.Error
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *fetch.Error, got %T", err)
	}
	if fetchErr.Status != 0 {
		t.Fatalf("transport failures carry no status, got %d", fetchErr.Status)
	}
}
