package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/zar-bot/internal/facades"
	"github.com/sbilibin2017/zar-bot/internal/logger"
	"github.com/sbilibin2017/zar-bot/internal/models"
)

//go:generate mockgen -source=exchange.go -destination=mock_exchange_test.go -package=services

// RatesFetcher reads exchange rates from the upstream provider.
type RatesFetcher interface {
	FetchRates(ctx context.Context, base string) (*facades.RatesPayload, error)
	FetchPairRate(ctx context.Context, fromCurrency, toCurrency string) (*facades.RatesPayload, error)
}

// ExchangeService converts amounts and builds watch-list snapshots.
type ExchangeService struct {
	reader RatesFetcher
}

// NewExchangeService creates a new service instance
func NewExchangeService(reader RatesFetcher) *ExchangeService {
	return &ExchangeService{reader: reader}
}

// Convert converts amount of fromCurrency into toCurrency. The raw rate is
// kept as returned; only Result is rounded to 2 decimal places.
func (svc *ExchangeService) Convert(
	ctx context.Context,
	fromCurrency, toCurrency string,
	amount decimal.Decimal,
) *models.ConversionResult {
	payload, err := svc.reader.FetchPairRate(ctx, fromCurrency, toCurrency)
	if err != nil {
		return models.NewConversionFailure(fromCurrency, toCurrency, errorKind(err), err.Error())
	}

	rate, ok := payload.Rates[toCurrency]
	if !ok {
		logger.Log.Warnw("rate missing from provider payload", "from", fromCurrency, "to", toCurrency)
		return models.NewConversionFailure(fromCurrency, toCurrency, models.KindNoData,
			fmt.Sprintf("no rate available for %s to %s", fromCurrency, toCurrency))
	}

	result := amount.Mul(rate).Round(2)

	return &models.ConversionResult{
		Success:   true,
		From:      fromCurrency,
		To:        toCurrency,
		Amount:    amount,
		Rate:      rate,
		Result:    result,
		Formatted: fmt.Sprintf("%s %s = %s %s", amount.String(), fromCurrency, result.StringFixed(2), toCurrency),
		Date:      payload.Date,
	}
}

// GetRates returns base-relative rates for the watch-list, rounded to 4
// decimal places. Currencies missing upstream are left out.
func (svc *ExchangeService) GetRates(ctx context.Context, base string) *models.RatesSnapshot {
	payload, err := svc.reader.FetchRates(ctx, base)
	if err != nil {
		return models.NewRatesFailure(base, errorKind(err), err.Error())
	}

	rates := make(map[string]decimal.Decimal, len(models.WatchList))
	for _, code := range models.WatchList {
		if rate, ok := payload.Rates[code]; ok {
			rates[code] = rate.Round(4)
		}
	}

	return &models.RatesSnapshot{
		Success: true,
		Base:    base,
		Date:    payload.Date,
		Rates:   rates,
	}
}

// errorKind maps an upstream error onto the result taxonomy.
func errorKind(err error) models.ErrorKind {
	if errors.Is(err, facades.ErrUnconfigured) {
		return models.KindUnconfigured
	}
	return models.KindFetchError
}
