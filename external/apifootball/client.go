package apifootball

import (
	"context"
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"

	"github.com/matchpulse/betting-analysis/external/providererr"
	"github.com/matchpulse/betting-analysis/internal/domain/match"
	"github.com/matchpulse/betting-analysis/internal/platform/logging"
	"github.com/matchpulse/betting-analysis/internal/platform/random"
)

const (
	defaultBaseURL = "https://api-football-v1.p.rapidapi.com"
	defaultHost    = "api-football-v1.p.rapidapi.com"
	defaultTimeout = 9 * time.Second
	sourceTag      = "api-football"
	maxFixtures    = 12
)

type ClientConfig struct {
	HTTPClient *fasthttp.Client
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	Logger     *logging.Logger
	Random     random.Source
	Location   *time.Location
}

// Client fetches fixtures from the API-Football v3 endpoint behind RapidAPI.
// Odds are not part of the fixtures payload, so they are always synthesized.
type Client struct {
	httpClient *fasthttp.Client
	baseURL    string
	apiKey     string
	timeout    time.Duration
	logger     *logging.Logger
	rng        random.Source
	location   *time.Location
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	rng := cfg.Random
	if rng == nil {
		rng = random.NewLocked()
	}
	location := cfg.Location
	if location == nil {
		location = time.Local
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		timeout:    timeout,
		logger:     logger,
		rng:        rng,
		location:   location,
	}
}

func (c *Client) Name() string {
	return sourceTag
}

func (c *Client) FetchMatches(ctx context.Context, date, leagueFilter string) ([]match.Fixture, error) {
	if c.apiKey == "" {
		c.logger.DebugContext(ctx, "api-football key not configured, skipping provider")
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := c.fetchRaw(date)
	if err != nil {
		return nil, err
	}

	var envelope fixturesEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode api-football payload: %w", err)
	}

	fixtures := make([]match.Fixture, 0, len(envelope.Response))
	for _, item := range envelope.Response {
		fixture, ok := c.mapFixture(item)
		if !ok {
			continue
		}
		if !match.MatchesLeagueFilter(fixture.League, leagueFilter) {
			continue
		}
		fixtures = append(fixtures, fixture)
		if len(fixtures) == maxFixtures {
			break
		}
	}

	return fixtures, nil
}

func (c *Client) fetchRaw(date string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + "/v3/fixtures?date=" + date)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", defaultHost)
	req.Header.Set("accept", "application/json")

	if err := c.httpClient.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, providererr.MarkTransient(fmt.Errorf("send api-football request: %w", err))
	}

	status := resp.StatusCode()
	if status < 200 || status >= 300 {
		return nil, providererr.Statusf(sourceTag, status, abbreviateBody(resp.Body()))
	}

	// The response body is owned by the pooled fasthttp response.
	raw := make([]byte, len(resp.Body()))
	copy(raw, resp.Body())
	return raw, nil
}

func (c *Client) mapFixture(item fixtureItem) (match.Fixture, bool) {
	home := strings.TrimSpace(item.Teams.Home.Name)
	away := strings.TrimSpace(item.Teams.Away.Name)
	if item.Fixture.ID <= 0 || home == "" || away == "" {
		return match.Fixture{}, false
	}

	kickoff, date := localKickoff(item.Fixture.Date, c.location)
	homeOdds, drawOdds, awayOdds := match.SynthesizeOdds(c.rng)

	return match.Fixture{
		ID:       fmt.Sprintf("af_%d", item.Fixture.ID),
		HomeTeam: home,
		AwayTeam: away,
		League:   strings.TrimSpace(item.League.Name),
		Kickoff:  kickoff,
		Date:     date,
		Status:   mapStatus(item.Fixture.Status.Short),
		HomeOdds: homeOdds,
		DrawOdds: drawOdds,
		AwayOdds: awayOdds,
		Source:   sourceTag,
	}, true
}

// mapStatus folds the provider's short status codes into the canonical enum.
func mapStatus(short string) string {
	switch strings.ToUpper(strings.TrimSpace(short)) {
	case "NS", "TBD":
		return match.StatusScheduled
	case "1H", "2H", "HT", "ET", "BT", "P", "INT":
		return match.StatusInPlay
	case "LIVE":
		return match.StatusLive
	default:
		return match.StatusScheduled
	}
}

func localKickoff(raw string, location *time.Location) (kickoff, date string) {
	parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(raw))
	if err != nil {
		return "00:00", ""
	}
	local := parsed.In(location)
	return local.Format("15:04"), local.Format("2006-01-02")
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}
