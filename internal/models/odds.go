package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// League is a user-facing league token.
type League string

// Supported leagues.
const (
	PSL League = "PSL"
	EPL League = "EPL"
	UCL League = "UCL"
)

// Leagues lists the supported league tokens.
var Leagues = []League{PSL, EPL, UCL}

// ParseLeague returns the league matching token (already upper-cased).
func ParseLeague(token string) (League, bool) {
	for _, l := range Leagues {
		if string(l) == token {
			return l, true
		}
	}
	return "", false
}

// LeagueRoute is the provider sport key a league resolves to.
// Alias is set when the route borrows another league's feed.
type LeagueRoute struct {
	SportKey string `yaml:"sport_key"`
	Alias    League `yaml:"alias,omitempty"`
}

// MaxMatches caps the number of matches kept per odds query.
const MaxMatches = 5

// MarketH2H is the head-to-head (match winner) market key.
const MarketH2H = "h2h"

// Outcome is a single priced selection. Market is the provider market key
// and Point the handicap or total line, when the market has one.
type Outcome struct {
	Market string
	Name   string
	Price  decimal.Decimal
	Point  *decimal.Decimal
}

// Match is one fixture with the outcomes of every market the first
// bookmaker quotes, in provider order.
type Match struct {
	HomeTeam     string
	AwayTeam     string
	CommenceTime time.Time
	Bookmaker    string
	Outcomes     []Outcome
}

// OddsResult is the normalized answer to an odds query. League is always the
// token the user asked for, even when SportKey belongs to an aliased feed.
type OddsResult struct {
	Success     bool
	League      League
	SportKey    string
	Substituted bool
	AliasOf     League
	Matches     []Match

	Error string
	Kind  ErrorKind
}

// NewOddsFailure builds a failed odds result.
func NewOddsFailure(league League, kind ErrorKind, msg string) *OddsResult {
	return &OddsResult{
		League: league,
		Error:  msg,
		Kind:   kind,
	}
}
