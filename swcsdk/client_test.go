package swcsdk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	errors "github.com/cockroachdb/errors"

	"github.com/sportsworldcentral/swc-api/internal/platform/logging"
	"github.com/sportsworldcentral/swc-api/internal/platform/resilience"
)

func newTestClient(t *testing.T, srv *httptest.Server, maxRetries int) *Client {
	t.Helper()

	client, err := NewClient(ClientConfig{
		HTTPClient: srv.Client(),
		BaseURL:    srv.URL,
		APIKey:     "test-key",
		MaxRetries: maxRetries,
		RetryDelay: time.Millisecond,
		Logger:     logging.NewNop(),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestClient_ListPlayers(t *testing.T) {
	t.Parallel()

	var gotKey atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey.Store(r.Header.Get("X-API-Key"))
		if r.URL.Path != "/v0/players" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("last_name"); got != "cole" {
			t.Errorf("last_name = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"apiVersion":"2.0","data":[{"player_id":1003,"first_name":"Deshawn","last_name":"Coleman","position":"RB","last_changed_date":"2025-09-10"}]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv, 0)

	players, err := client.ListPlayers(context.Background(), PlayerListOptions{LastName: "cole"})
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) != 1 || players[0].PlayerID != 1003 || players[0].Position != "RB" {
		t.Fatalf("unexpected players: %+v", players)
	}
	if gotKey.Load() != "test-key" {
		t.Fatalf("X-API-Key = %v", gotKey.Load())
	}
}

func TestClient_GetPlayerNotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"apiVersion":"2.0","error":{"code":404,"message":"not found: player=99999","status":"NOT_FOUND"}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv, 0)

	_, err := client.GetPlayer(context.Background(), 99999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError in chain, got %v", err)
	}
	if apiErr.Code != 404 {
		t.Fatalf("api error code = %d", apiErr.Code)
	}
}

func TestClient_RateLimitedMapsSentinel(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"apiVersion":"2.0","error":{"code":429,"message":"daily quota of 2000 requests reached","status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv, 0)

	_, err := client.GetCounts(context.Background())
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestClient_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"apiVersion":"2.0","data":{"league_count":2,"team_count":4,"player_count":8}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv, 2)

	counts, err := client.GetCounts(context.Background())
	if err != nil {
		t.Fatalf("get counts: %v", err)
	}
	if counts.PlayerCount != 8 {
		t.Fatalf("player count = %d, want 8", counts.PlayerCount)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
}

func TestClient_DownloadBulkFile(t *testing.T) {
	t.Parallel()

	const csv = "player_id,first_name,last_name,position,last_changed_date\n1001,Bryce,Yearwood,QB,2025-09-10\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v0/bulk/player_data.csv" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(csv))
	}))
	defer srv.Close()

	client := newTestClient(t, srv, 0)

	raw, err := client.DownloadBulkFile(context.Background(), "player_data.csv")
	if err != nil {
		t.Fatalf("download bulk file: %v", err)
	}
	if string(raw) != csv {
		t.Fatalf("unexpected csv payload: %q", raw)
	}
}

func TestClient_DownloadBulkFileNotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"apiVersion":"2.0","error":{"code":404,"message":"not found: bulk file=unknown.csv","status":"NOT_FOUND"}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv, 0)

	raw, err := client.DownloadBulkFile(context.Background(), "unknown.csv")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if raw != nil {
		t.Fatalf("expected no payload for error response, got %q", raw)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError in chain, got %v", err)
	}
	if apiErr.Code != 404 {
		t.Fatalf("api error code = %d", apiErr.Code)
	}
}

func TestClient_CircuitBreakerOpensAfterFailures(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client, err := NewClient(ClientConfig{
		HTTPClient: srv.Client(),
		BaseURL:    srv.URL,
		MaxRetries: 0,
		RetryDelay: time.Millisecond,
		Logger:     logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := client.GetCounts(context.Background()); err == nil {
			t.Fatalf("expected failure on call %d", i+1)
		}
	}

	_, err = client.GetCounts(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable once circuit opens, got %v", err)
	}
}

func TestClient_RequiresBaseURL(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(ClientConfig{}); err == nil {
		t.Fatalf("expected error for missing base url")
	}
}
