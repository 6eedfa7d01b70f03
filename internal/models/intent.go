package models

import "github.com/shopspring/decimal"

// IntentKind tags an Intent.
type IntentKind int

const (
	IntentUnknown IntentKind = iota
	IntentConvert
	IntentRates
	IntentOdds
	IntentHelp
)

func (k IntentKind) String() string {
	switch k {
	case IntentConvert:
		return "convert"
	case IntentRates:
		return "rates"
	case IntentOdds:
		return "odds"
	case IntentHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Intent is the channel-independent form of a request.
// Only the fields matching Kind are meaningful.
type Intent struct {
	Kind IntentKind

	From   string
	To     string
	Amount decimal.Decimal

	Base string

	League League

	Raw string
}

// ConvertIntent builds a convert intent.
func ConvertIntent(from, to string, amount decimal.Decimal) Intent {
	return Intent{Kind: IntentConvert, From: from, To: to, Amount: amount}
}

// RatesIntent builds a rates intent.
func RatesIntent(base string) Intent {
	return Intent{Kind: IntentRates, Base: base}
}

// OddsIntent builds an odds intent.
func OddsIntent(league League) Intent {
	return Intent{Kind: IntentOdds, League: league}
}

// HelpIntent builds a help intent.
func HelpIntent() Intent {
	return Intent{Kind: IntentHelp}
}

// UnknownIntent builds an unknown intent carrying the raw input.
func UnknownIntent(raw string) Intent {
	return Intent{Kind: IntentUnknown, Raw: raw}
}

// Equal reports whether two intents are identical.
func (i Intent) Equal(o Intent) bool {
	return i.Kind == o.Kind &&
		i.From == o.From &&
		i.To == o.To &&
		i.Amount.Equal(o.Amount) &&
		i.Base == o.Base &&
		i.League == o.League &&
		i.Raw == o.Raw
}
