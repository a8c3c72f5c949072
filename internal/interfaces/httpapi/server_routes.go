package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /{$}", handler.Root)
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.json", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v0/players", handler.ListPlayers)
	mux.HandleFunc("GET /v0/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v0/players/{playerID}/performances", handler.ListPlayerPerformances)
	mux.HandleFunc("GET /v0/performances", handler.ListPerformances)
	mux.HandleFunc("GET /v0/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v0/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("GET /v0/teams", handler.ListTeams)
	mux.HandleFunc("GET /v0/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v0/counts", handler.GetCounts)
	mux.HandleFunc("GET /v0/bulk/{fileName}", handler.DownloadBulkFile)
}
