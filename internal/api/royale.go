package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"royale-tracker/internal/config"
	"royale-tracker/internal/metrics"

	"github.com/valyala/fasthttp"
	"golang.org/x/time/rate"
)

type RoyaleClient struct {
	apiKey  string
	baseURL string
	client  *fasthttp.Client
	limiter *rate.Limiter
	metrics *metrics.Metrics
}

// Error is a non-200 answer from the game API. Reason and Message come from the
// JSON error body when the API sent one.
type Error struct {
	StatusCode int
	Reason     string `json:"reason"`
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	if e.Reason != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("API error: %d", e.StatusCode)
}

func NewRoyaleClient(cfg *config.Config, m *metrics.Metrics) *RoyaleClient {
	burst := cfg.APIBurst
	if burst <= 0 {
		burst = 1
	}
	limit := rate.Inf
	if cfg.APIRatePerSecond > 0 {
		limit = rate.Limit(cfg.APIRatePerSecond)
	}

	return &RoyaleClient{
		apiKey:  cfg.RoyaleAPIKey,
		baseURL: strings.TrimRight(cfg.RoyaleAPIBaseURL, "/"),
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,

			// tags are sent as %23XXXX and must not be decoded back into a fragment
			DisablePathNormalizing: true,
		},
		limiter: rate.NewLimiter(limit, burst),
		metrics: m,
	}
}

func (c *RoyaleClient) GetClan(ctx context.Context, tag string) (*ClanResponse, error) {
	return doRequest[ClanResponse](ctx, c, "clan", "/clans/"+url.PathEscape(tag))
}

func (c *RoyaleClient) GetClanMembers(ctx context.Context, tag string) (*MembersResponse, error) {
	return doRequest[MembersResponse](ctx, c, "members", "/clans/"+url.PathEscape(tag)+"/members")
}

func (c *RoyaleClient) GetCurrentRiverRace(ctx context.Context, tag string) (*CurrentRiverRaceResponse, error) {
	return doRequest[CurrentRiverRaceResponse](ctx, c, "currentriverrace", "/clans/"+url.PathEscape(tag)+"/currentriverrace")
}

func (c *RoyaleClient) GetRiverRaceLog(ctx context.Context, tag string) (*RiverRaceLogResponse, error) {
	return doRequest[RiverRaceLogResponse](ctx, c, "riverracelog", "/clans/"+url.PathEscape(tag)+"/riverracelog")
}

func (c *RoyaleClient) GetPlayer(ctx context.Context, tag string) (*PlayerResponse, error) {
	return doRequest[PlayerResponse](ctx, c, "player", "/players/"+url.PathEscape(tag))
}

func (c *RoyaleClient) GetPlayerBattles(ctx context.Context, tag string) ([]BattleResponse, error) {
	battles, err := doRequest[[]BattleResponse](ctx, c, "battlelog", "/players/"+url.PathEscape(tag)+"/battlelog")
	if err != nil {
		return nil, err
	}
	return *battles, nil
}

func (c *RoyaleClient) GetUpcomingChests(ctx context.Context, tag string) (*ChestsResponse, error) {
	return doRequest[ChestsResponse](ctx, c, "upcomingchests", "/players/"+url.PathEscape(tag)+"/upcomingchests")
}

func doRequest[T any](ctx context.Context, client *RoyaleClient, endpoint, path string) (*T, error) {
	if err := client.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(client.baseURL + path)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Authorization", "Bearer "+client.apiKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = client.client.DoDeadline(req, resp, deadline)
	} else {
		err = client.client.Do(req, resp)
	}
	if err != nil {
		client.metrics.ObserveAPIRequest(endpoint, 0, time.Since(start))
		return nil, fmt.Errorf("request %s: %w", endpoint, err)
	}
	client.metrics.ObserveAPIRequest(endpoint, resp.StatusCode(), time.Since(start))

	if resp.StatusCode() != fasthttp.StatusOK {
		apiErr := &Error{StatusCode: resp.StatusCode()}
		_ = json.Unmarshal(resp.Body(), apiErr)
		return nil, apiErr
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return &result, nil
}
