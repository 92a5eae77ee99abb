package footballdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/matchpulse/betting-analysis/external/providererr"
	"github.com/matchpulse/betting-analysis/internal/domain/match"
	"github.com/matchpulse/betting-analysis/internal/platform/logging"
	"github.com/matchpulse/betting-analysis/internal/platform/random"
	"github.com/matchpulse/betting-analysis/internal/platform/resilience"
)

const (
	defaultBaseURL = "https://api.football-data.org"
	defaultTimeout = 9 * time.Second
	sourceTag      = "football-data.org"
	maxFixtures    = 12
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	Logger         *logging.Logger
	Random         random.Source
	Location       *time.Location
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client fetches fixtures from the football-data.org v4 API and normalizes
// them into the canonical shape. Free-tier responses carry no prices, so odds
// are always synthesized.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	logger         *logging.Logger
	rng            random.Source
	location       *time.Location
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
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
		httpClient = &http.Client{Timeout: timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = timeout
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

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		logger:         logger,
		rng:            rng,
		location:       location,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) Name() string {
	return sourceTag
}

func (c *Client) FetchMatches(ctx context.Context, date, leagueFilter string) ([]match.Fixture, error) {
	if c.token == "" {
		c.logger.DebugContext(ctx, "football-data token not configured, skipping provider")
		return nil, nil
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			return nil, providererr.MarkTransient(fmt.Errorf("football-data circuit %s: %w", c.breaker.State(), err))
		}
	}

	raw, err := c.fetchRaw(ctx, date)
	if c.circuitEnabled {
		if err != nil && providererr.IsTransient(err) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	if err != nil {
		return nil, err
	}

	var envelope matchesEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode football-data payload: %w", err)
	}

	fixtures := make([]match.Fixture, 0, len(envelope.Matches))
	for _, item := range envelope.Matches {
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

func (c *Client) fetchRaw(ctx context.Context, date string) ([]byte, error) {
	values := url.Values{}
	values.Set("dateFrom", date)
	values.Set("dateTo", date)
	fullURL := c.baseURL + "/v4/matches?" + values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Auth-Token", c.token)
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, providererr.MarkTransient(fmt.Errorf("send football-data request: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, providererr.MarkTransient(fmt.Errorf("read football-data response: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, providererr.Statusf(sourceTag, resp.StatusCode, abbreviateBody(raw))
	}

	return raw, nil
}

func (c *Client) mapFixture(item matchItem) (match.Fixture, bool) {
	home := strings.TrimSpace(item.HomeTeam.displayName())
	away := strings.TrimSpace(item.AwayTeam.displayName())
	if item.ID <= 0 || home == "" || away == "" {
		return match.Fixture{}, false
	}

	kickoff, date := localKickoff(item.UTCDate, c.location)
	homeOdds, drawOdds, awayOdds := match.SynthesizeOdds(c.rng)

	return match.Fixture{
		ID:       fmt.Sprintf("fd_%d", item.ID),
		HomeTeam: home,
		AwayTeam: away,
		League:   strings.TrimSpace(item.Competition.Name),
		Kickoff:  kickoff,
		Date:     date,
		Status:   mapStatus(item.Status),
		HomeOdds: homeOdds,
		DrawOdds: drawOdds,
		AwayOdds: awayOdds,
		Source:   sourceTag,
	}, true
}

// mapStatus folds the provider's full status set into the canonical enum.
// Finished and abandoned fixtures stay visible as SCHEDULED rather than
// introducing states the downstream engine does not reason about.
func mapStatus(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "TIMED":
		return match.StatusTimed
	case "IN_PLAY":
		return match.StatusInPlay
	case "PAUSED":
		return match.StatusInPlay
	case "LIVE":
		return match.StatusLive
	default:
		return match.StatusScheduled
	}
}

func localKickoff(utcDate string, location *time.Location) (kickoff, date string) {
	parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(utcDate))
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
