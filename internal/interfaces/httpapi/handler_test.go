package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/sportsworldcentral/swc-api/internal/infrastructure/repository/memory"
	"github.com/sportsworldcentral/swc-api/internal/platform/cache"
	"github.com/sportsworldcentral/swc-api/internal/platform/id"
	"github.com/sportsworldcentral/swc-api/internal/platform/logging"
	"github.com/sportsworldcentral/swc-api/internal/usecase"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	leagueRepo := memory.NewLeagueRepository(memory.SeedLeagues())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	performanceRepo := memory.NewPerformanceRepository(memory.SeedPerformances())

	store := cache.NewStore(time.Minute)
	playerService := usecase.NewPlayerService(playerRepo)
	handler := NewHandler(
		playerService,
		usecase.NewLeagueService(leagueRepo, teamRepo),
		usecase.NewTeamService(teamRepo, playerRepo),
		usecase.NewPerformanceService(performanceRepo, playerService),
		usecase.NewAnalyticsService(leagueRepo, teamRepo, playerRepo, store),
		usecase.NewBulkExportService(playerRepo, leagueRepo, teamRepo, performanceRepo, store, 2),
		logging.NewNop(),
	)

	return NewRouter(handler, nil, logging.NewNop(), id.NewRandomGenerator(), true, []string{"*"})
}

func doRequest(t *testing.T, router http.Handler, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	body := map[string]any{}
	contentType := rec.Header().Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") && rec.Body.Len() > 0 {
		if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal %s response: %v", path, err)
		}
	}

	return rec, body
}

func dataList(t *testing.T, body map[string]any) []any {
	t.Helper()

	list, ok := body["data"].([]any)
	if !ok {
		t.Fatalf("expected data list, got %T", body["data"])
	}
	return list
}

func TestRouter_RootAndHealthz(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec, body := doRequest(t, router, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("root status = %d", rec.Code)
	}
	data, _ := body["data"].(map[string]any)
	if data["message"] != "API health check successful" {
		t.Fatalf("unexpected root payload: %v", body)
	}

	rec, _ = doRequest(t, router, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz status = %d", rec.Code)
	}
}

func TestRouter_ListPlayersWithFilters(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec, body := doRequest(t, router, "/v0/players?last_name=cole")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	players := dataList(t, body)
	if len(players) != 1 {
		t.Fatalf("expected 1 player, got %d", len(players))
	}
	first, _ := players[0].(map[string]any)
	if first["last_name"] != "Coleman" {
		t.Fatalf("unexpected player: %v", first)
	}

	rec, body = doRequest(t, router, "/v0/players?minimum_last_changed_date=2025-09-11")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := len(dataList(t, body)); got != 2 {
		t.Fatalf("expected 2 recently changed players, got %d", got)
	}
}

func TestRouter_ListPlayersRejectsBadQuery(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	for _, path := range []string{
		"/v0/players?skip=-1",
		"/v0/players?limit=oops",
		"/v0/players?limit=501",
		"/v0/players?minimum_last_changed_date=09-11-2025",
	} {
		rec, body := doRequest(t, router, path)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s status = %d, want 400", path, rec.Code)
		}
		errorObj, _ := body["error"].(map[string]any)
		if errorObj["status"] != "INVALID_ARGUMENT" {
			t.Fatalf("%s error status = %v", path, errorObj["status"])
		}
	}
}

func TestRouter_GetPlayer(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec, body := doRequest(t, router, "/v0/players/1001")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data, _ := body["data"].(map[string]any)
	if data["first_name"] != "Bryce" || data["position"] != "QB" {
		t.Fatalf("unexpected player payload: %v", data)
	}

	rec, body = doRequest(t, router, "/v0/players/99999")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing player status = %d, want 404", rec.Code)
	}
	errorObj, _ := body["error"].(map[string]any)
	if errorObj["status"] != "NOT_FOUND" {
		t.Fatalf("error status = %v", errorObj["status"])
	}

	rec, _ = doRequest(t, router, "/v0/players/abc")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad id status = %d, want 400", rec.Code)
	}
}

func TestRouter_PlayerPerformancesIncludeFantasyPoints(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec, body := doRequest(t, router, "/v0/players/1001/performances")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	performances := dataList(t, body)
	if len(performances) != 2 {
		t.Fatalf("expected 2 performances, got %d", len(performances))
	}
	first, _ := performances[0].(map[string]any)
	if points, _ := first["fantasy_points"].(float64); points != 20 {
		t.Fatalf("week 1 fantasy points = %v, want 20", first["fantasy_points"])
	}
}

func TestRouter_LeaguesEmbedTeams(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec, body := doRequest(t, router, "/v0/leagues/5001")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data, _ := body["data"].(map[string]any)
	if data["league_name"] != "Pigskin Prodigal Fantasy League" {
		t.Fatalf("unexpected league payload: %v", data)
	}
	teams, _ := data["teams"].([]any)
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}

	rec, body = doRequest(t, router, "/v0/leagues?league_name=gurus")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := len(dataList(t, body)); got != 1 {
		t.Fatalf("expected 1 league, got %d", got)
	}
}

func TestRouter_TeamsEmbedRosters(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec, body := doRequest(t, router, "/v0/teams/8001")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data, _ := body["data"].(map[string]any)
	players, _ := data["players"].([]any)
	if len(players) != 3 {
		t.Fatalf("expected 3 roster players, got %d", len(players))
	}
}

func TestRouter_Counts(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec, body := doRequest(t, router, "/v0/counts")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data, _ := body["data"].(map[string]any)
	if count, _ := data["player_count"].(float64); int(count) != len(memory.SeedPlayers()) {
		t.Fatalf("player_count = %v, want %d", data["player_count"], len(memory.SeedPlayers()))
	}
	if count, _ := data["league_count"].(float64); int(count) != len(memory.SeedLeagues()) {
		t.Fatalf("league_count = %v", data["league_count"])
	}
}

func TestRouter_BulkDownload(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v0/bulk/player_data.csv", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/csv") {
		t.Fatalf("content type = %q", got)
	}
	if !strings.HasPrefix(rec.Body.String(), "player_id,first_name,last_name") {
		t.Fatalf("unexpected csv head: %q", rec.Body.String()[:40])
	}

	rec, body := doRequest(t, router, "/v0/bulk/unknown.csv")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown file status = %d, want 404", rec.Code)
	}
	errorObj, _ := body["error"].(map[string]any)
	if errorObj["status"] != "NOT_FOUND" {
		t.Fatalf("error status = %v", errorObj["status"])
	}
}

func TestRouter_OpenAPIAndDocs(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec, _ := doRequest(t, router, "/openapi.json")
	if rec.Code != http.StatusOK {
		t.Fatalf("openapi status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "\"openapi\"") {
		t.Fatalf("expected OpenAPI document")
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("docs status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "swagger-ui") {
		t.Fatalf("expected Swagger UI page")
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v0/players", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
