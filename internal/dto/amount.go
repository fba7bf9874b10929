package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AmountInput is a user-entered amount. It accepts a JSON string ("4.03") or a
// bare JSON number (4.03) and keeps the text as typed; null is empty.
// Parsing and coercion happen in the service.
type AmountInput string

// UnmarshalJSON implements json.Unmarshaler.
func (a *AmountInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = AmountInput(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a string or a number: %w", err)
	}
	*a = AmountInput(n.String())
	return nil
}
