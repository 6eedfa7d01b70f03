package commands

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/zar-bot/internal/logger"
	"github.com/sbilibin2017/zar-bot/internal/metrics"
	"github.com/sbilibin2017/zar-bot/internal/models"
)

//go:generate mockgen -source=dispatcher.go -destination=mock_dispatcher_test.go -package=commands

// CurrencyService answers conversion and rates intents.
type CurrencyService interface {
	Convert(ctx context.Context, from, to string, amount decimal.Decimal) *models.ConversionResult
	GetRates(ctx context.Context, base string) *models.RatesSnapshot
}

// OddsService answers odds intents.
type OddsService interface {
	GetOddsForLeague(ctx context.Context, league models.League) *models.OddsResult
}

// Dispatcher routes a parsed intent to the service that answers it.
type Dispatcher struct {
	currency CurrencyService
	odds     OddsService
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(currency CurrencyService, odds OddsService) *Dispatcher {
	return &Dispatcher{currency: currency, odds: odds}
}

// Dispatch executes intent and returns the reply for the given channel.
// Help and unknown intents are answered without calling any service.
func (d *Dispatcher) Dispatch(ctx context.Context, channel string, intent models.Intent) models.Reply {
	metrics.IncRequest(channel, intent.Kind.String())
	logger.Log.Debugw("dispatching intent",
		"channel", channel,
		"intent", intent.Kind.String(),
	)

	reply := models.Reply{Intent: intent}
	switch intent.Kind {
	case models.IntentConvert:
		reply.Conversion = d.currency.Convert(ctx, intent.From, intent.To, intent.Amount)
	case models.IntentRates:
		reply.Rates = d.currency.GetRates(ctx, intent.Base)
	case models.IntentOdds:
		reply.Odds = d.odds.GetOddsForLeague(ctx, intent.League)
	}
	return reply
}
