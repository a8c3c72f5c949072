// Package swcsdk is the Go client for the SportsWorldCentral fantasy
// football API. It wraps the read endpoints with typed getters, retries
// transient failures, and trips a circuit breaker when the API is down.
package swcsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/sportsworldcentral/swc-api/internal/platform/logging"
	"github.com/sportsworldcentral/swc-api/internal/platform/resilience"
)

const (
	defaultTimeout      = 20 * time.Second
	defaultRetryDelay   = time.Second
	maxResponseBytes    = 32 << 20
	apiKeyHeader        = "X-API-Key"
	errorStatusNotFound = "NOT_FOUND"
)

var (
	ErrNotFound    = crerr.New("resource not found")
	ErrRateLimited = crerr.New("daily request quota exhausted")
	ErrUnavailable = crerr.New("api is temporarily unavailable")

	errTransient = crerr.New("transient api failure")
)

// APIError carries the error body returned by the API.
type APIError struct {
	Code    int
	Message string
	Status  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error status=%s code=%d: %s", e.Status, e.Code, e.Message)
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	maxRetries     int
	retryDelay     time.Duration
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	retryDelay := cfg.RetryDelay
	if retryDelay <= 0 {
		retryDelay = defaultRetryDelay
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		maxRetries:     maxRetries,
		retryDelay:     retryDelay,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg),
		circuitEnabled: cfg.CircuitBreaker.Enabled,
	}, nil
}

func (c *Client) HealthCheck(ctx context.Context) error {
	var out map[string]any
	return c.getJSON(ctx, "/", nil, &out)
}

func (c *Client) ListPlayers(ctx context.Context, opts PlayerListOptions) ([]Player, error) {
	query := listQueryValues(opts.ListOptions)
	setNonEmpty(query, "first_name", opts.FirstName)
	setNonEmpty(query, "last_name", opts.LastName)

	var out []Player
	if err := c.getJSON(ctx, "/v0/players", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetPlayer(ctx context.Context, playerID int32) (Player, error) {
	var out Player
	err := c.getJSON(ctx, "/v0/players/"+strconv.FormatInt(int64(playerID), 10), nil, &out)
	return out, err
}

func (c *Client) ListPlayerPerformances(ctx context.Context, playerID int32, scoringType string) ([]ScoredPerformance, error) {
	query := url.Values{}
	setNonEmpty(query, "scoring_type", scoringType)

	var out []ScoredPerformance
	path := "/v0/players/" + strconv.FormatInt(int64(playerID), 10) + "/performances"
	if err := c.getJSON(ctx, path, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListPerformances(ctx context.Context, opts PerformanceListOptions) ([]ScoredPerformance, error) {
	query := listQueryValues(opts.ListOptions)
	setNonEmpty(query, "scoring_type", opts.ScoringType)

	var out []ScoredPerformance
	if err := c.getJSON(ctx, "/v0/performances", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListLeagues(ctx context.Context, opts LeagueListOptions) ([]League, error) {
	query := listQueryValues(opts.ListOptions)
	setNonEmpty(query, "league_name", opts.LeagueName)

	var out []League
	if err := c.getJSON(ctx, "/v0/leagues", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetLeague(ctx context.Context, leagueID int32) (League, error) {
	var out League
	err := c.getJSON(ctx, "/v0/leagues/"+strconv.FormatInt(int64(leagueID), 10), nil, &out)
	return out, err
}

func (c *Client) ListTeams(ctx context.Context, opts TeamListOptions) ([]Team, error) {
	query := listQueryValues(opts.ListOptions)
	setNonEmpty(query, "team_name", opts.TeamName)

	var out []Team
	if err := c.getJSON(ctx, "/v0/teams", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetTeam(ctx context.Context, teamID int32) (Team, error) {
	var out Team
	err := c.getJSON(ctx, "/v0/teams/"+strconv.FormatInt(int64(teamID), 10), nil, &out)
	return out, err
}

func (c *Client) GetCounts(ctx context.Context) (Counts, error) {
	var out Counts
	err := c.getJSON(ctx, "/v0/counts", nil, &out)
	return out, err
}

// DownloadBulkFile fetches one of the full-table CSV exports and returns
// its raw bytes. Error responses carry the JSON envelope instead of CSV
// and are mapped to the same sentinels as the JSON endpoints.
func (c *Client) DownloadBulkFile(ctx context.Context, fileName string) ([]byte, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return nil, fmt.Errorf("file name is required")
	}

	resp, err := c.do(ctx, "/v0/bulk/"+url.PathEscape(fileName), nil)
	if err != nil {
		return nil, err
	}
	if resp.status < 200 || resp.status >= 300 {
		return nil, errorFromResponse(resp)
	}
	return resp.body, nil
}

type responseEnvelope struct {
	APIVersion string          `json:"apiVersion"`
	Data       json.RawMessage `json:"data"`
	Error      *envelopeError  `json:"error"`
}

type envelopeError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target any) error {
	resp, err := c.do(ctx, path, query)
	if err != nil {
		return err
	}

	var envelope responseEnvelope
	if err := sonic.Unmarshal(resp.body, &envelope); err != nil {
		return fmt.Errorf("decode response envelope: %w", err)
	}
	if envelope.Error != nil {
		return apiErrorToSentinel(&APIError{
			Code:    envelope.Error.Code,
			Message: envelope.Error.Message,
			Status:  envelope.Error.Status,
		})
	}
	if target == nil || len(envelope.Data) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(envelope.Data, target); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}

	return nil
}

// errorFromResponse maps a non-2xx body to a sentinel via the JSON error
// envelope, falling back to a plain status error for unrecognized bodies.
func errorFromResponse(resp rawResponse) error {
	var envelope responseEnvelope
	if err := sonic.Unmarshal(resp.body, &envelope); err == nil && envelope.Error != nil {
		return apiErrorToSentinel(&APIError{
			Code:    envelope.Error.Code,
			Message: envelope.Error.Message,
			Status:  envelope.Error.Status,
		})
	}
	return fmt.Errorf("api status=%d", resp.status)
}

// rawResponse pairs a body with the status it arrived under so callers
// can tell an error envelope apart from a payload.
type rawResponse struct {
	body   []byte
	status int
}

// do runs one logical request through the breaker and singleflight, with
// retries on transient failures.
func (c *Client) do(ctx context.Context, path string, query url.Values) (rawResponse, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "swc circuit breaker rejected request", "state", c.breaker.State())
			return rawResponse{}, crerr.Wrapf(ErrUnavailable, "circuit open")
		}
	}

	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		resp, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return resp, reqErr
	})
	if err != nil {
		return rawResponse{}, err
	}

	resp, ok := out.(rawResponse)
	if !ok {
		return rawResponse{}, fmt.Errorf("unexpected response payload type %T", out)
	}

	return resp, nil
}

// executeRequest retries transient failures with a linear backoff and
// returns the raw body with its status. Non-retryable error bodies come
// back as-is so callers can map them through the envelope.
func (c *Client) executeRequest(ctx context.Context, fullURL string) (rawResponse, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return rawResponse{}, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if c.apiKey != "" {
			req.Header.Set(apiKeyHeader, c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = crerr.Wrapf(errTransient, "send request: %v", err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = crerr.Wrapf(errTransient, "read response body: %v", readErr)
			case isRetryableStatus(resp.StatusCode):
				lastErr = crerr.Wrapf(errTransient, "api status=%d", resp.StatusCode)
			default:
				return rawResponse{body: raw, status: resp.StatusCode}, nil
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * c.retryDelay
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return rawResponse{}, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("api request failed")
	}
	c.logger.WarnContext(ctx, "swc api request failed", "url", fullURL, "error", lastErr)
	return rawResponse{}, lastErr
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func apiErrorToSentinel(apiErr *APIError) error {
	switch apiErr.Status {
	case errorStatusNotFound:
		return crerr.Mark(apiErr, ErrNotFound)
	case "RESOURCE_EXHAUSTED":
		return crerr.Mark(apiErr, ErrRateLimited)
	case "UNAVAILABLE":
		return crerr.Mark(apiErr, ErrUnavailable)
	default:
		return apiErr
	}
}

func listQueryValues(opts ListOptions) url.Values {
	query := url.Values{}
	if opts.Skip > 0 {
		query.Set("skip", strconv.Itoa(opts.Skip))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	setNonEmpty(query, "minimum_last_changed_date", opts.MinimumLastChangedDate)
	return query
}

func setNonEmpty(query url.Values, key, value string) {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		query.Set(key, trimmed)
	}
}
