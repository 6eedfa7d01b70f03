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

const ratesProvider = "rates"

// RatesPayload is the provider's latest-rates document.
type RatesPayload struct {
	Amount decimal.Decimal            `json:"amount"`
	Base   string                     `json:"base"`
	Date   string                     `json:"date"`
	Rates  map[string]decimal.Decimal `json:"rates"`
}

// RatesHTTPFacade reads exchange rates from a Frankfurter-compatible API.
type RatesHTTPFacade struct {
	baseURL string
	client  *http.Client
}

// NewRatesHTTPFacade creates a rates client. A zero timeout leaves the
// transport default in place.
func NewRatesHTTPFacade(baseURL string, timeout time.Duration) *RatesHTTPFacade {
	return &RatesHTTPFacade{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// FetchRates returns all rates relative to base.
func (f *RatesHTTPFacade) FetchRates(ctx context.Context, base string) (*RatesPayload, error) {
	q := url.Values{}
	q.Set("from", base)
	return f.latest(ctx, q)
}

// FetchPairRate returns the rate from one currency to another.
func (f *RatesHTTPFacade) FetchPairRate(ctx context.Context, fromCurrency, toCurrency string) (*RatesPayload, error) {
	q := url.Values{}
	q.Set("from", fromCurrency)
	q.Set("to", toCurrency)
	return f.latest(ctx, q)
}

func (f *RatesHTTPFacade) latest(ctx context.Context, q url.Values) (*RatesPayload, error) {
	start := time.Now()
	payload, err := f.get(ctx, f.baseURL+"/latest?"+q.Encode())
	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = metrics.OutcomeError
		logger.Log.Errorw("failed to fetch exchange rates", "query", q.Encode(), "error", err)
	}
	metrics.ObserveUpstream(ratesProvider, outcome, time.Since(start))
	return payload, err
}

func (f *RatesHTTPFacade) get(ctx context.Context, u string) (*RatesPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, transportError(ratesProvider, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, transportError(ratesProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(ratesProvider, resp)
	}

	var payload RatesPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, decodeError(ratesProvider, err)
	}
	return &payload, nil
}
