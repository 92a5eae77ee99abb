package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/matchpulse/betting-analysis/internal/domain/league"
	"github.com/matchpulse/betting-analysis/internal/domain/match"
	"github.com/matchpulse/betting-analysis/internal/domain/team"
	"github.com/matchpulse/betting-analysis/internal/platform/clock"
	"github.com/matchpulse/betting-analysis/internal/platform/logging"
	"github.com/matchpulse/betting-analysis/internal/usecase"
)

const dateLayout = "2006-01-02"

type Handler struct {
	catalogService  *usecase.CatalogService
	matchService    *usecase.MatchService
	analysisService *usecase.AnalysisService
	clk             clock.Clock
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	catalogService *usecase.CatalogService,
	matchService *usecase.MatchService,
	analysisService *usecase.AnalysisService,
	clk clock.Clock,
	logger *logging.Logger,
) *Handler {
	if clk == nil {
		clk = clock.System()
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		catalogService:  catalogService,
		matchService:    matchService,
		analysisService: analysisService,
		clk:             clk,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.catalogService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTeamsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	teams, err := h.catalogService.ListTeamsByLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	date, err := h.resolveDate(r.URL.Query().Get("date"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueFilter := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("league")))

	fixtures := h.matchService.GetMatches(ctx, date, leagueFilter)

	writeSuccess(ctx, w, http.StatusOK, matchListDTO{
		Date:    date,
		League:  leagueFilter,
		Source:  fixturesSource(fixtures),
		Count:   len(fixtures),
		Matches: fixtures,
	})
}

func (h *Handler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAnalysis")
	defer span.End()

	homeTeam := strings.TrimSpace(r.URL.Query().Get("home"))
	awayTeam := strings.TrimSpace(r.URL.Query().Get("away"))
	if homeTeam == "" || awayTeam == "" {
		writeError(ctx, w, fmt.Errorf("%w: home and away query parameters are required", usecase.ErrInvalidInput))
		return
	}

	report := h.analysisService.Analyze(ctx, homeTeam, awayTeam)
	writeSuccess(ctx, w, http.StatusOK, report)
}

type analyzeDayRequest struct {
	Date   string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	League string `json:"league" validate:"omitempty"`
}

func (h *Handler) AnalyzeDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AnalyzeDay")
	defer span.End()

	var payload analyzeDayRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	date, err := h.resolveDate(payload.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueFilter := strings.ToLower(strings.TrimSpace(payload.League))
	results, err := h.analysisService.AnalyzeDay(ctx, date, leagueFilter)
	if err != nil {
		h.logger.ErrorContext(ctx, "day analysis failed", "date", date, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dayAnalysisDTO{
		Date:    date,
		League:  leagueFilter,
		Count:   len(results),
		Results: results,
	})
}

// resolveDate validates a YYYY-MM-DD query value, defaulting to today.
func (h *Handler) resolveDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return h.clk.Now().Format(dateLayout), nil
	}
	if _, err := time.Parse(dateLayout, raw); err != nil {
		return "", fmt.Errorf("%w: date must be formatted as YYYY-MM-DD", usecase.ErrInvalidInput)
	}
	return raw, nil
}

func fixturesSource(fixtures []match.Fixture) string {
	if len(fixtures) == 0 {
		return ""
	}
	return fixtures[0].Source
}

type leagueDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Slug    string `json:"slug"`
}

func leagueToDTO(l league.League) leagueDTO {
	return leagueDTO{
		ID:      l.ID,
		Name:    l.Name,
		Country: l.Country,
		Slug:    l.Slug,
	}
}

type teamDTO struct {
	ID       string `json:"id"`
	LeagueID string `json:"leagueId"`
	Name     string `json:"name"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:       t.ID,
		LeagueID: t.LeagueID,
		Name:     t.Name,
	}
}

type matchListDTO struct {
	Date    string          `json:"date"`
	League  string          `json:"league,omitempty"`
	Source  string          `json:"source"`
	Count   int             `json:"count"`
	Matches []match.Fixture `json:"matches"`
}

type dayAnalysisDTO struct {
	Date    string                `json:"date"`
	League  string                `json:"league,omitempty"`
	Count   int                   `json:"count"`
	Results []usecase.DayAnalysis `json:"results"`
}
