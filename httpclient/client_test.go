package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/mobilevikings/viking-go/resilience"
)

func TestClient_Do_GET(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/sim_balance.json" {
			t.Errorf("expected /sim_balance.json, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"credits": "15.00"}`))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := c.Do(context.Background(), Request{
		Method: http.MethodGet,
		Path:   "/sim_balance.json",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if !resp.IsSuccess() {
		t.Error("expected IsSuccess=true")
	}
	if !strings.Contains(string(resp.Body), "credits") {
		t.Errorf("unexpected body: %s", resp.Body)
	}
}

func TestClient_Do_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page_size"); got != "25" {
			t.Errorf("expected page_size=25, got %q", got)
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	_, err := c.Do(context.Background(), Request{
		Method: http.MethodGet,
		Path:   "/top_up_history.json",
		Query:  map[string]string{"page_size": "25"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Do_DefaultAndRequestHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Default"); got != "yes" {
			t.Errorf("expected X-Default=yes, got %q", got)
		}
		if got := r.Header.Get("X-Request"); got != "also" {
			t.Errorf("expected X-Request=also, got %q", got)
		}
		if ua := r.Header.Get("User-Agent"); !strings.HasPrefix(ua, "viking-go/") {
			t.Errorf("expected viking-go User-Agent, got %q", ua)
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c, _ := New(Config{
		BaseURL: srv.URL,
		Headers: map[string]string{"X-Default": "yes"},
	})
	_, err := c.Do(context.Background(), Request{
		Method:  http.MethodGet,
		Path:    "/",
		Headers: map[string]string{"X-Request": "also"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Do_SignerSeesQueryBeforeAttach(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Signed a=1" {
			t.Errorf("expected signed header, got %q", got)
		}
		if got := r.URL.Query().Get("a"); got != "1" {
			t.Errorf("expected query attached after signing, got %q", got)
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	signer := SignerFunc(func(req *http.Request, params url.Values) error {
		if req.URL.RawQuery != "" {
			t.Error("signer should run before the query string is attached")
		}
		req.Header.Set("Authorization", "Signed a="+params.Get("a"))
		return nil
	})

	c, _ := New(Config{BaseURL: srv.URL, Signer: signer})
	_, err := c.Do(context.Background(), Request{
		Method: http.MethodGet,
		Path:   "/",
		Query:  map[string]string{"a": "1"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Do_SignerError(t *testing.T) {
	signer := SignerFunc(func(req *http.Request, params url.Values) error {
		return errors.New("no credentials")
	})

	c, _ := New(Config{BaseURL: "http://localhost:0", Signer: signer})
	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"})
	if !IsRequest(err) {
		t.Errorf("expected request error, got %v", err)
	}
}

func TestClient_Do_ClassifierConvertsResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(400)
		_, _ = w.Write([]byte("Invalid consumer."))
	}))
	defer srv.Close()

	classified := errors.New("classified")
	c, _ := New(Config{
		BaseURL: srv.URL,
		Classifier: func(resp *Response) error {
			if resp.StatusCode == 400 {
				return classified
			}
			return nil
		},
	})

	resp, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"})
	if !errors.Is(err, classified) {
		t.Fatalf("expected classifier error, got %v", err)
	}
	if resp == nil || resp.StatusCode != 400 {
		t.Error("classifier errors must still carry the response")
	}
}

func TestClient_Do_NoClassifierPassesErrorsThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	resp, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.IsError() {
		t.Error("expected IsError=true for 500")
	}
}

func TestClient_Do_ConnectionError(t *testing.T) {
	c, _ := New(Config{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})
	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"})
	if !IsConnection(err) {
		t.Errorf("expected connection error, got %v", err)
	}
}

func TestClient_Do_ContextTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/"})
	if !IsTimeout(err) {
		t.Errorf("expected timeout error, got %v", err)
	}
}

func TestClient_Do_PathWithQueryRejected(t *testing.T) {
	c, _ := New(Config{BaseURL: "http://example.com"})
	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/x?a=1"})
	if !IsRequest(err) {
		t.Errorf("expected request error for inline query, got %v", err)
	}
}

func TestClient_Do_RetryOptIn(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(503)
			return
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	retry := resilience.RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
	}
	c, _ := New(Config{
		BaseURL: srv.URL,
		Retry:   &retry,
		Classifier: func(resp *Response) error {
			if resp.StatusCode == 503 {
				return errors.New("unavailable")
			}
			return nil
		},
	})

	resp, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("expected 200 after retries, got %d", resp.StatusCode)
	}
	if calls != 3 {
		t.Errorf("expected 3 attempts, got %d", calls)
	}
}

func TestClient_Do_NoRetryByDefault(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(503)
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected exactly 1 attempt, got %d", calls)
	}
}

func TestClient_WithSigner(t *testing.T) {
	base, _ := New(Config{BaseURL: "http://example.com"})
	signed := base.WithSigner(SignerFunc(func(req *http.Request, params url.Values) error {
		return nil
	}))

	if base.config.Signer != nil {
		t.Error("WithSigner must not mutate the original client")
	}
	if signed.config.Signer == nil {
		t.Error("expected signer on the copy")
	}
	if signed.httpClient != base.httpClient {
		t.Error("expected shared underlying http.Client")
	}
}

func TestResponse_Header(t *testing.T) {
	resp := &Response{Headers: map[string]string{"Www-Authenticate": `OAuth realm="Mobile Vikings"`}}

	tests := []struct {
		name string
		want string
	}{
		{"WWW-Authenticate", `OAuth realm="Mobile Vikings"`},
		{"www-authenticate", `OAuth realm="Mobile Vikings"`},
		{"Www-Authenticate", `OAuth realm="Mobile Vikings"`},
		{"X-Missing", ""},
	}
	for _, tt := range tests {
		if got := resp.Header(tt.name); got != tt.want {
			t.Errorf("Header(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
