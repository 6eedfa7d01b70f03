package facades

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ErrUnconfigured is returned when a provider needs a credential that was not supplied.
// No network call is made in that case.
var ErrUnconfigured = errors.New("Unconfigured")

// FetchError is any upstream failure: transport, status or decoding.
// Message is passed through to callers verbatim.
type FetchError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *FetchError) Error() string {
	return e.Message
}

// providerMessage is the error body shape shared by both providers.
type providerMessage struct {
	Message string `json:"message"`
}

// statusError builds a FetchError from a non-2xx response, preferring the
// provider's own message when the body carries one.
func statusError(provider string, resp *http.Response) *FetchError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var pm providerMessage
	if err := json.Unmarshal(body, &pm); err == nil && pm.Message != "" {
		return &FetchError{Provider: provider, StatusCode: resp.StatusCode, Message: pm.Message}
	}
	return &FetchError{
		Provider:   provider,
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("request failed with status code %d", resp.StatusCode),
	}
}

// transportError wraps a failed round trip. The request URL is stripped
// from the message since it may carry an API key.
func transportError(provider string, err error) *FetchError {
	var ue *url.Error
	if errors.As(err, &ue) {
		err = ue.Err
	}
	return &FetchError{Provider: provider, Message: err.Error()}
}

// decodeError wraps a malformed response body.
func decodeError(provider string, err error) *FetchError {
	return &FetchError{Provider: provider, Message: fmt.Sprintf("invalid response: %v", err)}
}
