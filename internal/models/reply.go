package models

// Reply is the dispatch result for one intent. Exactly one of Conversion,
// Rates or Odds is set for convert, rates and odds intents; help and unknown
// intents carry neither.
type Reply struct {
	Intent     Intent
	Conversion *ConversionResult
	Rates      *RatesSnapshot
	Odds       *OddsResult
}
