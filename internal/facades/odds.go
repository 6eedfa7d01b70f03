package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/zar-bot/internal/logger"
	"github.com/sbilibin2017/zar-bot/internal/metrics"
)

const oddsProvider = "odds"

// OddsOutcome is a priced selection inside a market.
type OddsOutcome struct {
	Name  string           `json:"name"`
	Price decimal.Decimal  `json:"price"`
	Point *decimal.Decimal `json:"point,omitempty"`
}

// OddsMarket is one market of a bookmaker, e.g. h2h.
type OddsMarket struct {
	Key      string        `json:"key"`
	Outcomes []OddsOutcome `json:"outcomes"`
}

// OddsBookmaker is one bookmaker's offer for an event.
type OddsBookmaker struct {
	Key     string       `json:"key"`
	Title   string       `json:"title"`
	Markets []OddsMarket `json:"markets"`
}

// OddsEvent is one fixture in the provider payload.
type OddsEvent struct {
	ID           string          `json:"id"`
	SportKey     string          `json:"sport_key"`
	CommenceTime time.Time       `json:"commence_time"`
	HomeTeam     string          `json:"home_team"`
	AwayTeam     string          `json:"away_team"`
	Bookmakers   []OddsBookmaker `json:"bookmakers"`
}

// OddsPayload is the provider's odds document for one sport key.
type OddsPayload []OddsEvent

// OddsHTTPFacade reads odds from a The-Odds-API compatible service.
type OddsHTTPFacade struct {
	baseURL string
	apiKey  string
	regions string
	markets string
	client  *http.Client
}

// NewOddsHTTPFacade creates an odds client.
func NewOddsHTTPFacade(baseURL, apiKey, regions, markets string, timeout time.Duration) *OddsHTTPFacade {
	return &OddsHTTPFacade{
		baseURL: baseURL,
		apiKey:  apiKey,
		regions: regions,
		markets: markets,
		client:  &http.Client{Timeout: timeout},
	}
}

// FetchOdds returns upcoming events with decimal odds for sportKey.
// It fails with ErrUnconfigured, without touching the network, when no API key is set.
func (f *OddsHTTPFacade) FetchOdds(ctx context.Context, sportKey string) (OddsPayload, error) {
	if f.apiKey == "" {
		metrics.IncUpstreamSkipped(oddsProvider, metrics.OutcomeUnconfigured)
		return nil, ErrUnconfigured
	}

	q := url.Values{}
	q.Set("apiKey", f.apiKey)
	q.Set("regions", f.regions)
	q.Set("markets", f.markets)
	q.Set("oddsFormat", "decimal")
	u := f.baseURL + "/v4/sports/" + url.PathEscape(sportKey) + "/odds?" + q.Encode()

	start := time.Now()
	payload, err := f.get(ctx, u)
	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = metrics.OutcomeError
		logger.Log.Errorw("failed to fetch odds", "sport_key", sportKey, "error", err)
	}
	metrics.ObserveUpstream(oddsProvider, outcome, time.Since(start))
	return payload, err
}

func (f *OddsHTTPFacade) get(ctx context.Context, u string) (OddsPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, transportError(oddsProvider, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, transportError(oddsProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(oddsProvider, resp)
	}

	if remaining := resp.Header.Get("x-requests-remaining"); remaining != "" {
		logger.Log.Debugw("odds quota", "remaining", remaining, "used", resp.Header.Get("x-requests-used"))
	}

	var payload OddsPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, decodeError(oddsProvider, err)
	}
	return payload, nil
}
