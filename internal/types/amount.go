package types

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountCents is a monetary amount in integer cents.
//
// On the wire, a JSON number is interpreted as cents, which is what API
// clients send after converting user input. A JSON string is interpreted as
// a decimal dollar amount and converted with round(dollars * 100), so both
// `1250` and `"12.50"` decode to 1250 cents.
type AmountCents int64

// Decimal returns the amount in major currency units.
func (a AmountCents) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -2)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (a *AmountCents) UnmarshalJSON(data []byte) error {
	value := strings.TrimSpace(string(data))
	if value == "" || value == "null" {
		return nil
	}

	if strings.HasPrefix(value, `"`) {
		dollars, err := decimal.NewFromString(strings.Trim(value, `"`))
		if err != nil {
			return fmt.Errorf("%s is not a valid decimal amount", value)
		}

		*a = AmountCents(dollars.Mul(decimal.NewFromInt(100)).Round(0).IntPart())
		return nil
	}

	cents, err := decimal.NewFromString(value)
	if err != nil {
		return fmt.Errorf("%s is not a valid amount", value)
	}

	*a = AmountCents(cents.Round(0).IntPart())
	return nil
}
