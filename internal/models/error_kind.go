package models

// ErrorKind classifies a failed result.
type ErrorKind string

const (
	// KindUnconfigured means a required credential is missing.
	KindUnconfigured ErrorKind = "unconfigured"
	// KindFetchError means the upstream call failed.
	KindFetchError ErrorKind = "fetch_error"
	// KindNoData means the upstream answered with an empty result set.
	KindNoData ErrorKind = "no_data"
	// KindUnrecognized means the input matched no intent.
	KindUnrecognized ErrorKind = "unrecognized"
)
