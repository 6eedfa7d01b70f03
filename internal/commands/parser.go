package commands

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/zar-bot/internal/models"
)

// Command keywords recognised on the text channels.
const (
	keywordRates   = "RATES"
	keywordOdds    = "ODDS"
	keywordConvert = "CONVERT"
	keywordHelp    = "HELP"
	keywordStart   = "START"
)

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ParseText maps a free-text message onto an intent. Rules are applied in
// order: rates keyword, league token, two or three tokens as a conversion,
// help, then unknown. Currency tokens are not validated here.
func ParseText(text string) models.Intent {
	raw := strings.TrimSpace(text)
	tokens := tokenize(raw)
	if len(tokens) == 0 {
		return models.UnknownIntent(raw)
	}

	switch tokens[0] {
	case keywordRates:
		base := models.DefaultBase
		if len(tokens) > 1 {
			base = tokens[1]
		}
		return models.RatesIntent(base)
	case keywordOdds:
		if len(tokens) > 1 {
			if league, ok := models.ParseLeague(tokens[1]); ok {
				return models.OddsIntent(league)
			}
		}
		return models.UnknownIntent(raw)
	case keywordConvert:
		tokens = tokens[1:]
		if len(tokens) == 0 {
			return models.UnknownIntent(raw)
		}
	}

	if league, ok := models.ParseLeague(tokens[0]); ok {
		return models.OddsIntent(league)
	}

	if len(tokens) == 2 || len(tokens) == 3 {
		amount := decimal.NewFromInt(1)
		if len(tokens) == 3 {
			amount = ParseAmount(tokens[2])
		}
		return models.ConvertIntent(tokens[0], tokens[1], amount)
	}

	if len(tokens) == 1 && (tokens[0] == keywordHelp || tokens[0] == keywordStart) {
		return models.HelpIntent()
	}

	return models.UnknownIntent(raw)
}

// ParseChat is ParseText for the chat bot, which additionally recognises a
// league token anywhere in the message ("any psl games tonight?"). A league
// token wins over a conversion, so "USD PSL" asks for PSL odds.
func ParseChat(text string) models.Intent {
	intent := ParseText(text)
	switch intent.Kind {
	case models.IntentRates, models.IntentOdds, models.IntentHelp:
		return intent
	}
	for _, tok := range tokenize(text) {
		if league, ok := models.ParseLeague(strings.Trim(tok, ".,!?;:'\"()")); ok {
			return models.OddsIntent(league)
		}
	}
	return intent
}

// ParseRequest maps a structured API request onto an intent.
func ParseRequest(req models.APIRequest) models.Intent {
	command := normalize(req.Command)
	sport := normalize(req.Sport)
	from := normalize(req.From)
	to := normalize(req.To)

	switch {
	case command == keywordRates:
		base := from
		if base == "" {
			base = models.DefaultBase
		}
		return models.RatesIntent(base)
	case command == keywordHelp:
		return models.HelpIntent()
	}

	if league, ok := models.ParseLeague(command); ok {
		return models.OddsIntent(league)
	}
	if sport != "" && (command == "" || command == keywordOdds) {
		if league, ok := models.ParseLeague(sport); ok {
			return models.OddsIntent(league)
		}
		return models.UnknownIntent(req.Sport)
	}

	if from != "" && to != "" {
		return models.ConvertIntent(from, to, parseRawAmount(req.Amount))
	}

	return models.UnknownIntent(req.Command)
}

// ParseAmount reads a numeric token leniently: a whole number (exponent form
// included) is used as is, a leading number is used even when followed by
// junk, and anything unparsable or zero becomes 1.
func ParseAmount(token string) decimal.Decimal {
	one := decimal.NewFromInt(1)
	token = strings.TrimSpace(token)

	if amount, err := decimal.NewFromString(token); err == nil {
		if amount.IsZero() {
			return one
		}
		return amount
	}

	m := leadingNumber.FindString(token)
	if m == "" {
		return one
	}
	if i := strings.IndexAny(m, "eE"); i > 0 && m[i-1] == '.' {
		m = m[:i-1] + m[i:]
	}
	m = strings.TrimPrefix(strings.TrimSuffix(m, "."), "+")
	if i := strings.IndexByte(m, '.'); i == 0 || (i == 1 && (m[0] == '+' || m[0] == '-')) {
		m = m[:i] + "0" + m[i:]
	}
	amount, err := decimal.NewFromString(m)
	if err != nil || amount.IsZero() {
		return one
	}
	return amount
}

func parseRawAmount(raw json.RawMessage) decimal.Decimal {
	if len(raw) == 0 {
		return decimal.NewFromInt(1)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return ParseAmount(s)
	}
	return ParseAmount(string(raw))
}

// tokenize upper-cases and splits text on whitespace, stripping a leading
// slash and any @botname suffix from the first token.
func tokenize(text string) []string {
	tokens := strings.Fields(strings.ToUpper(text))
	if len(tokens) == 0 {
		return nil
	}
	first := strings.TrimPrefix(tokens[0], "/")
	if i := strings.IndexByte(first, '@'); i > 0 {
		first = first[:i]
	}
	if first == "" {
		return tokens[1:]
	}
	tokens[0] = first
	return tokens
}

func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
