package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGet_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(200)
		_, _ = w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	c := &Client{UserAgent: "goscrape-test", Timeout: 2 * time.Second}
	body, ct, err := c.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ct == "" || string(body) == "" {
		t.Fatalf("expected content type and body")
	}
}

func TestGet_SendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	c := &Client{UserAgent: "goscrape/1.0"}
	if _, _, err := c.Get(context.Background(), srv.URL); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUA != "goscrape/1.0" {
		t.Fatalf("expected custom user agent, got %q", gotUA)
	}
}

func TestGet_RejectsNonTextContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4"))
	}))
	defer srv.Close()

	c := &Client{}
	_, _, err := c.Get(context.Background(), srv.URL)
	if err == nil || !strings.Contains(err.Error(), "unsupported content type") {
		t.Fatalf("expected content type error, got %v", err)
	}
}

func TestGet_AcceptsPlainText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("billing@example.com"))
	}))
	defer srv.Close()

	c := &Client{}
	body, _, err := c.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != "billing@example.com" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestGet_ErrorOnNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
	}))
	defer srv.Close()

	c := &Client{}
	_, _, err := c.Get(context.Background(), srv.URL)
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestGet_RedirectCap(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Redirect forever; the client must give up at the hop cap.
		http.Redirect(w, r, srv.URL+r.URL.Path+"x", http.StatusFound)
	}))
	defer srv.Close()

	c := &Client{RedirectMaxHops: 3}
	_, _, err := c.Get(context.Background(), srv.URL)
	if err == nil || !strings.Contains(err.Error(), "too many redirects") {
		t.Fatalf("expected redirect cap error, got %v", err)
	}
}

func TestGet_RejectsNonHTTPScheme(t *testing.T) {
	c := &Client{}
	_, _, err := c.Get(context.Background(), "file:///etc/hosts")
	if err == nil || !strings.Contains(err.Error(), "unsupported URL scheme") {
		t.Fatalf("expected scheme error, got %v", err)
	}
}

func TestGet_BodySizeCap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(strings.Repeat("a", 4096)))
	}))
	defer srv.Close()

	c := &Client{MaxBodyBytes: 1024}
	_, _, err := c.Get(context.Background(), srv.URL)
	if err == nil || !strings.Contains(err.Error(), "exceeds") {
		t.Fatalf("expected size cap error, got %v", err)
	}
}

func TestGet_DecodesLatin1(t *testing.T) {
	// "café" in ISO-8859-1: the é is a single 0xE9 byte.
	latin1 := []byte{'c', 'a', 'f', 0xE9}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		_, _ = w.Write(latin1)
	}))
	defer srv.Close()

	c := &Client{}
	body, _, err := c.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(body), "café") {
		t.Fatalf("expected decoded UTF-8 text, got %q", body)
	}
}

func TestGet_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>late</html>"))
	}))
	defer srv.Close()

	c := &Client{Timeout: 50 * time.Millisecond}
	_, _, err := c.Get(context.Background(), srv.URL)
	if err == nil {
		t.Fatalf("expected timeout error, got nil")
	}
}
