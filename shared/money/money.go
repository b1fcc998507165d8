// Package money holds currency amounts exchanged with the hotel backend.
//
// The backend serialises decimals as JSON strings ("100.50"), older endpoints send numbers and
// some records carry null or no amount at all. Amount accepts every one of those shapes and never
// fails to decode: anything that is not a number counts as zero.
package money

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// DisplayPlaces is the precision used when an amount is rendered for people.
const DisplayPlaces = 2

// Amount is a lenient decimal.
type Amount struct {
	decimal.Decimal
}

// Zero is the zero amount.
var Zero = Amount{Decimal: decimal.Zero}

// Parse reads s as a decimal. Blank or malformed input yields zero.
func Parse(s string) Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero
	}

	return Amount{Decimal: d}
}

// MustParse is Parse for literals in tests and defaults.
func MustParse(s string) Amount {
	return Amount{Decimal: decimal.RequireFromString(s)}
}

// UnmarshalJSON implements json.Unmarshaler and never returns an error.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*a = Zero
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = Zero

			return nil
		}

		*a = Parse(s)
	default:
		*a = Parse(string(data))
	}

	return nil
}

// MarshalJSON keeps the backend's string form.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Decimal.String())
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{Decimal: a.Decimal.Add(b.Decimal)}
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount {
	return Amount{Decimal: a.Decimal.Sub(b.Decimal)}
}

// Display rounds to two fraction digits. Only presentation code may call it.
func (a Amount) Display() string {
	return a.Decimal.StringFixed(DisplayPlaces)
}

// Sum adds amounts without intermediate rounding.
func Sum(amounts ...Amount) Amount {
	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(amount.Decimal)
	}

	return Amount{Decimal: total}
}
