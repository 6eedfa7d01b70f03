package models

import "github.com/shopspring/decimal"

// ConversionHint is attached to failed conversions.
const ConversionHint = "Try: USD ZAR or EUR GBP"

// ConversionResult is the outcome of a single currency conversion.
type ConversionResult struct {
	Success bool
	From    string
	To      string
	Amount  decimal.Decimal
	// Rate is the raw provider rate, never rounded.
	Rate decimal.Decimal
	// Result is Amount*Rate rounded to 2 decimal places.
	Result    decimal.Decimal
	Formatted string
	Date      string

	Error string
	Kind  ErrorKind
	Hint  string
}

// RatesSnapshot holds watch-list rates relative to Base.
type RatesSnapshot struct {
	Success bool
	Base    string
	Date    string
	// Rates only holds watch-list currencies present upstream, rounded to 4dp.
	Rates map[string]decimal.Decimal

	Error string
	Kind  ErrorKind
}

// NewConversionFailure builds a failed conversion result.
func NewConversionFailure(from, to string, kind ErrorKind, msg string) *ConversionResult {
	return &ConversionResult{
		From:  from,
		To:    to,
		Error: msg,
		Kind:  kind,
		Hint:  ConversionHint,
	}
}

// NewRatesFailure builds a failed rates snapshot.
func NewRatesFailure(base string, kind ErrorKind, msg string) *RatesSnapshot {
	return &RatesSnapshot{
		Base:  base,
		Error: msg,
		Kind:  kind,
	}
}
