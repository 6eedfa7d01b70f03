package models

// Currency codes surfaced in rate snapshots.
const (
	USD = "USD"
	EUR = "EUR"
	GBP = "GBP"
	AUD = "AUD"
	BWP = "BWP"
	NAD = "NAD"
	ZMW = "ZMW"
	ZAR = "ZAR"
)

// DefaultBase is used when a rates request names no base currency.
const DefaultBase = ZAR

// WatchList is the fixed set of currencies reported by a rates snapshot,
// in display order.
var WatchList = []string{USD, EUR, GBP, AUD, BWP, NAD, ZMW}

// InWatchList reports whether code is one of the watched currencies.
func InWatchList(code string) bool {
	for _, c := range WatchList {
		if c == code {
			return true
		}
	}
	return false
}
