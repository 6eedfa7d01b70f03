package services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/zar-bot/internal/facades"
	"github.com/sbilibin2017/zar-bot/internal/logger"
	"github.com/sbilibin2017/zar-bot/internal/models"
)

//go:generate mockgen -source=odds.go -destination=mock_odds_test.go -package=services

// OddsFetcher reads odds for a provider sport key.
type OddsFetcher interface {
	FetchOdds(ctx context.Context, sportKey string) (facades.OddsPayload, error)
}

// LeagueResolver maps a league token onto a provider route.
type LeagueResolver interface {
	Resolve(league models.League) (models.LeagueRoute, bool)
}

// OddsService turns provider payloads into match lists.
type OddsService struct {
	reader  OddsFetcher
	leagues LeagueResolver
}

// NewOddsService creates a new service instance
func NewOddsService(reader OddsFetcher, leagues LeagueResolver) *OddsService {
	return &OddsService{reader: reader, leagues: leagues}
}

// GetOddsForLeague returns at most models.MaxMatches matches for league.
// Each match carries every market of the first bookmaker as-is; prices are
// not compared across bookmakers.
func (svc *OddsService) GetOddsForLeague(ctx context.Context, league models.League) *models.OddsResult {
	route, ok := svc.leagues.Resolve(league)
	if !ok {
		return models.NewOddsFailure(league, models.KindUnrecognized, fmt.Sprintf("unsupported league %s", league))
	}

	payload, err := svc.reader.FetchOdds(ctx, route.SportKey)
	if err != nil {
		return models.NewOddsFailure(league, errorKind(err), err.Error())
	}

	if len(payload) == 0 {
		return models.NewOddsFailure(league, models.KindNoData, fmt.Sprintf("No upcoming %s matches found", league))
	}

	if route.Alias != "" {
		logger.Log.Warnw("serving league from aliased feed",
			"league", league, "alias_of", route.Alias, "sport_key", route.SportKey)
	}

	n := len(payload)
	if n > models.MaxMatches {
		n = models.MaxMatches
	}
	matches := make([]models.Match, 0, n)
	for _, ev := range payload[:n] {
		matches = append(matches, toMatch(ev))
	}

	return &models.OddsResult{
		Success:     true,
		League:      league,
		SportKey:    route.SportKey,
		Substituted: route.Alias != "",
		AliasOf:     route.Alias,
		Matches:     matches,
	}
}

func toMatch(ev facades.OddsEvent) models.Match {
	m := models.Match{
		HomeTeam:     ev.HomeTeam,
		AwayTeam:     ev.AwayTeam,
		CommenceTime: ev.CommenceTime,
	}
	if len(ev.Bookmakers) == 0 {
		return m
	}

	bm := ev.Bookmakers[0]
	m.Bookmaker = bm.Title
	for _, mk := range bm.Markets {
		for _, o := range mk.Outcomes {
			m.Outcomes = append(m.Outcomes, models.Outcome{
				Market: mk.Key,
				Name:   o.Name,
				Price:  o.Price,
				Point:  o.Point,
			})
		}
	}
	return m
}
