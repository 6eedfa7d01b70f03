package models

import "encoding/json"

// APIRequest represents the JSON body accepted by the API channel
// swagger:model APIRequest
type APIRequest struct {
	// Source currency, or the base currency for the rates command
	// example: USD
	From string `json:"from,omitempty"`

	// Target currency
	// example: ZAR
	To string `json:"to,omitempty"`

	// Amount to convert; number or numeric string, defaults to 1
	// example: 100
	Amount json.RawMessage `json:"amount,omitempty" swaggertype:"number"`

	// Command: rates, help, odds or a league token (PSL, EPL, UCL)
	// example: rates
	Command string `json:"command,omitempty"`

	// League token for odds requests
	// example: EPL
	Sport string `json:"sport,omitempty"`
}
