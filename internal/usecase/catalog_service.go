package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/matchpulse/betting-analysis/internal/domain/league"
	"github.com/matchpulse/betting-analysis/internal/domain/team"
)

// CatalogService exposes the league/team reference catalog.
type CatalogService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
}

func NewCatalogService(leagueRepo league.Repository, teamRepo team.Repository) *CatalogService {
	return &CatalogService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
	}
}

func (s *CatalogService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "CatalogService.ListLeagues")
	defer span.End()

	items, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return items, nil
}

func (s *CatalogService) ListTeamsByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "CatalogService.ListTeamsByLeague")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	_, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	items, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list teams by league: %w", err)
	}
	return items, nil
}

// TeamNames returns every catalog team name, for stats warm-up.
func (s *CatalogService) TeamNames(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "CatalogService.TeamNames")
	defer span.End()

	items, err := s.teamRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all teams: %w", err)
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names, nil
}
