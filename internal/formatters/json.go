package formatters

import (
	"time"

	"github.com/sbilibin2017/zar-bot/internal/models"
)

// ErrMissingParameters is reported to API clients whose request maps to no intent.
const ErrMissingParameters = "Missing parameters"

// Usage describes example request bodies for the API channel
// swagger:model Usage
type Usage struct {
	// example: { "from": "USD", "to": "ZAR", "amount": 100 }
	Convert string `json:"convert"`
	// example: { "command": "rates", "from": "ZAR" }
	Rates string `json:"rates"`
	// example: { "command": "odds", "sport": "EPL" }
	Odds string `json:"odds"`
}

// DefaultUsage is attached to help and unrecognised API responses.
var DefaultUsage = Usage{
	Convert: `{ "from": "USD", "to": "ZAR", "amount": 100 }`,
	Rates:   `{ "command": "rates", "from": "ZAR" }`,
	Odds:    `{ "command": "odds", "sport": "EPL" }`,
}

// UsageResponse is returned for help requests and requests that match no command
// swagger:model UsageResponse
type UsageResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Usage   Usage  `json:"usage"`
}

// ConversionResponse is the API form of a conversion
// swagger:model ConversionResponse
type ConversionResponse struct {
	Success bool `json:"success"`
	// example: USD
	From string `json:"from,omitempty"`
	// example: ZAR
	To string `json:"to,omitempty"`
	// example: 100
	Amount float64 `json:"amount,omitempty"`
	// example: 18.4512
	Rate float64 `json:"rate,omitempty"`
	// Result rounded to two decimal places
	// example: 1845.12
	Result string `json:"result,omitempty"`
	// example: 100 USD = 1845.12 ZAR
	Formatted string `json:"formatted,omitempty"`
	// example: 2025-01-31
	Date  string           `json:"date,omitempty"`
	Error string           `json:"error,omitempty"`
	Kind  models.ErrorKind `json:"kind,omitempty"`
	Hint  string           `json:"hint,omitempty"`
}

// RatesResponse is the API form of a rates snapshot
// swagger:model RatesResponse
type RatesResponse struct {
	Success bool `json:"success"`
	// example: ZAR
	Base string `json:"base,omitempty"`
	// example: 2025-01-31
	Date  string             `json:"date,omitempty"`
	Rates map[string]float64 `json:"rates,omitempty"`
	Error string             `json:"error,omitempty"`
	Kind  models.ErrorKind   `json:"kind,omitempty"`
}

// OutcomeResponse is one priced selection
// swagger:model OutcomeResponse
type OutcomeResponse struct {
	// example: h2h
	Market string  `json:"market,omitempty"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	// Handicap or total line, spreads and totals markets only
	Point *float64 `json:"point,omitempty"`
}

// MatchResponse is one fixture
// swagger:model MatchResponse
type MatchResponse struct {
	HomeTeam     string            `json:"homeTeam"`
	AwayTeam     string            `json:"awayTeam"`
	CommenceTime time.Time         `json:"commenceTime"`
	Bookmaker    string            `json:"bookmaker,omitempty"`
	Outcomes     []OutcomeResponse `json:"outcomes"`
}

// OddsResponse is the API form of an odds query. League always echoes the
// requested token; SportKey and AliasOf show which feed answered it.
// swagger:model OddsResponse
type OddsResponse struct {
	Success bool `json:"success"`
	// example: PSL
	League      models.League    `json:"league,omitempty"`
	SportKey    string           `json:"sportKey,omitempty"`
	Substituted bool             `json:"substituted,omitempty"`
	AliasOf     models.League    `json:"aliasOf,omitempty"`
	Matches     []MatchResponse  `json:"matches,omitempty"`
	Error       string           `json:"error,omitempty"`
	Kind        models.ErrorKind `json:"kind,omitempty"`
}

// JSON renders reply as the response body for the API channel.
func JSON(reply models.Reply) any {
	switch reply.Intent.Kind {
	case models.IntentConvert:
		if reply.Conversion != nil {
			return conversionResponse(reply.Conversion)
		}
	case models.IntentRates:
		if reply.Rates != nil {
			return ratesResponse(reply.Rates)
		}
	case models.IntentOdds:
		if reply.Odds != nil {
			return oddsResponse(reply.Odds)
		}
	case models.IntentHelp:
		return UsageResponse{Success: true, Usage: DefaultUsage}
	}
	return MissingParameters()
}

// MissingParameters is the body returned for unrecognised or malformed requests.
func MissingParameters() UsageResponse {
	return UsageResponse{Error: ErrMissingParameters, Usage: DefaultUsage}
}

func conversionResponse(r *models.ConversionResult) ConversionResponse {
	resp := ConversionResponse{
		Success: r.Success,
		From:    r.From,
		To:      r.To,
		Error:   r.Error,
		Kind:    r.Kind,
		Hint:    r.Hint,
	}
	if r.Success {
		resp.Amount = r.Amount.InexactFloat64()
		resp.Rate = r.Rate.InexactFloat64()
		resp.Result = r.Result.StringFixed(2)
		resp.Formatted = r.Formatted
		resp.Date = r.Date
	}
	return resp
}

func ratesResponse(r *models.RatesSnapshot) RatesResponse {
	resp := RatesResponse{
		Success: r.Success,
		Base:    r.Base,
		Date:    r.Date,
		Error:   r.Error,
		Kind:    r.Kind,
	}
	if r.Success {
		resp.Rates = make(map[string]float64, len(r.Rates))
		for code, rate := range r.Rates {
			resp.Rates[code] = rate.InexactFloat64()
		}
	}
	return resp
}

func oddsResponse(r *models.OddsResult) OddsResponse {
	resp := OddsResponse{
		Success:     r.Success,
		League:      r.League,
		SportKey:    r.SportKey,
		Substituted: r.Substituted,
		AliasOf:     r.AliasOf,
		Error:       r.Error,
		Kind:        r.Kind,
	}
	for _, m := range r.Matches {
		match := MatchResponse{
			HomeTeam:     m.HomeTeam,
			AwayTeam:     m.AwayTeam,
			CommenceTime: m.CommenceTime,
			Bookmaker:    m.Bookmaker,
			Outcomes:     make([]OutcomeResponse, 0, len(m.Outcomes)),
		}
		for _, o := range m.Outcomes {
			outcome := OutcomeResponse{Market: o.Market, Name: o.Name, Price: o.Price.InexactFloat64()}
			if o.Point != nil {
				point := o.Point.InexactFloat64()
				outcome.Point = &point
			}
			match.Outcomes = append(match.Outcomes, outcome)
		}
		resp.Matches = append(resp.Matches, match)
	}
	return resp
}
