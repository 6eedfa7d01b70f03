package formatters

import (
	"fmt"
	"strings"

	"github.com/sbilibin2017/zar-bot/internal/models"
)

// HelpText lists the commands understood on the text channels.
const HelpText = `zar-bot Commands:

RATES - Get ZAR rates
RATES USD - Get USD rates
USD ZAR - Convert USD to ZAR
USD ZAR 100 - Convert 100 USD to ZAR
EUR GBP - Convert EUR to GBP
PSL / EPL / UCL - Upcoming match odds
HELP - Show this`

// UnknownText is the fallback reply for input that matched no command.
func UnknownText(raw string) string {
	var sb strings.Builder
	sb.WriteString("Unknown command")
	if raw != "" {
		fmt.Fprintf(&sb, ": %q", raw)
	}
	sb.WriteString(". Try:\n- USD ZAR\n- RATES\n- PSL\n- HELP")
	return sb.String()
}

// Text renders reply as plain text for the webhook and chat channels.
// footer is appended to successful odds replies.
func Text(reply models.Reply, footer string) string {
	switch reply.Intent.Kind {
	case models.IntentConvert:
		if reply.Conversion != nil {
			return conversionText(reply.Conversion)
		}
	case models.IntentRates:
		if reply.Rates != nil {
			return ratesText(reply.Rates)
		}
	case models.IntentOdds:
		if reply.Odds != nil {
			return oddsText(reply.Odds, footer)
		}
	case models.IntentHelp:
		return HelpText
	}
	return UnknownText(reply.Intent.Raw)
}

// FetchingText is the acknowledgement sent before a slow odds lookup.
func FetchingText(league models.League) string {
	return fmt.Sprintf("⏳ Fetching %s odds...", league)
}

func failureText(kind models.ErrorKind, msg string) string {
	if kind == models.KindNoData {
		return msg
	}
	return "Error: " + msg
}

func conversionText(r *models.ConversionResult) string {
	if !r.Success {
		return failureText(r.Kind, r.Error)
	}
	return r.Formatted
}

func ratesText(r *models.RatesSnapshot) string {
	if !r.Success {
		return failureText(r.Kind, r.Error)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 %s Exchange Rates (%s)\n\n", r.Base, r.Date)
	for _, code := range models.WatchList {
		rate, ok := r.Rates[code]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "%s: %s\n", code, rate.String())
	}
	return sb.String()
}

func oddsText(r *models.OddsResult, footer string) string {
	if !r.Success {
		return failureText(r.Kind, r.Error)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "⚽ %s Odds\n", r.League)
	if r.Substituted {
		fmt.Fprintf(&sb, "ℹ️ %s odds are currently served from the %s feed.\n", r.League, r.AliasOf)
	}
	for _, m := range r.Matches {
		fmt.Fprintf(&sb, "\n%s vs %s\n", m.HomeTeam, m.AwayTeam)
		for _, o := range m.Outcomes {
			fmt.Fprintf(&sb, "  %s: %s\n", outcomeLabel(o), o.Price.String())
		}
	}
	if footer != "" {
		fmt.Fprintf(&sb, "\n%s", footer)
	}
	return sb.String()
}

// outcomeLabel names an outcome, adding the market and line for anything
// other than the head-to-head market: "Arsenal (spreads -1.5)".
func outcomeLabel(o models.Outcome) string {
	if o.Market == "" || o.Market == models.MarketH2H {
		return o.Name
	}
	if o.Point == nil {
		return fmt.Sprintf("%s (%s)", o.Name, o.Market)
	}
	point := o.Point.String()
	if o.Point.IsPositive() {
		point = "+" + point
	}
	return fmt.Sprintf("%s (%s %s)", o.Name, o.Market, point)
}
