package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sbilibin2017/zar-bot/internal/models"
)

// Leagues maps a league token to the provider sport key it is served from.
type Leagues map[models.League]models.LeagueRoute

// Provider sport keys.
const (
	SportKeyEPL = "soccer_epl"
	SportKeyUCL = "soccer_uefa_champs_league"
	SportKeyPSL = "soccer_south_africa_premiership"
)

// DefaultLeagues returns the built-in league table.
func DefaultLeagues() Leagues {
	return Leagues{
		models.PSL: {SportKey: SportKeyPSL},
		models.EPL: {SportKey: SportKeyEPL},
		models.UCL: {SportKey: SportKeyUCL},
	}
}

type leaguesFile struct {
	Leagues map[string]models.LeagueRoute `yaml:"leagues"`
}

// LoadLeagues builds the league table from defaults, the optional YAML file
// at path, and the PSL fallback switch. With pslFallback set, PSL is served
// from the EPL feed and the route is tagged with Alias=EPL.
func LoadLeagues(path string, pslFallback bool) (Leagues, error) {
	table := DefaultLeagues()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read leagues file: %w", err)
		}
		var f leaguesFile
		if err := yaml.Unmarshal(b, &f); err != nil {
			return nil, fmt.Errorf("parse leagues file: %w", err)
		}
		for name, route := range f.Leagues {
			league, ok := models.ParseLeague(name)
			if !ok {
				return nil, fmt.Errorf("leagues file: unknown league %q", name)
			}
			if route.SportKey == "" {
				return nil, fmt.Errorf("leagues file: %s has no sport_key", name)
			}
			if route.Alias != "" {
				if _, ok := models.ParseLeague(string(route.Alias)); !ok {
					return nil, fmt.Errorf("leagues file: %s aliases unknown league %q", name, route.Alias)
				}
			}
			table[league] = route
		}
	}

	if pslFallback {
		table[models.PSL] = models.LeagueRoute{
			SportKey: table[models.EPL].SportKey,
			Alias:    models.EPL,
		}
	}

	return table, nil
}

// Resolve returns the route for league.
func (l Leagues) Resolve(league models.League) (models.LeagueRoute, bool) {
	r, ok := l[league]
	return r, ok
}
