package money

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the number of fraction digits stored for every money column (numeric(10,2)).
const Scale = 2

// Amount is a money value read from JSON. It accepts numbers and numeric
// strings, and keeps the raw input when it cannot be parsed so the
// validator can report the field as non-numeric instead of failing decoding.
type Amount struct {
	value decimal.Decimal
	raw   string
	valid bool
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{value: d, raw: d.String(), valid: true}
}

// MustAmount is meant for tests and constants.
func MustAmount(s string) Amount {
	return NewAmount(decimal.RequireFromString(s))
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}

	a.raw = raw
	d, err := decimal.NewFromString(raw)
	if err != nil {
		a.value, a.valid = decimal.Zero, false
		return nil
	}
	a.value, a.valid = d, true
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.valid {
		return json.Marshal(a.raw)
	}
	return json.Marshal(Format(a.value))
}

func (a Amount) Valid() bool { return a.valid }

func (a Amount) Raw() string { return a.raw }

// Exact returns the parsed value as sent, before rounding. Range checks
// must use it so that e.g. -0.004 is not accepted as 0.00.
func (a Amount) Exact() decimal.Decimal {
	return a.value
}

// Decimal returns the parsed value rounded to Scale.
func (a Amount) Decimal() decimal.Decimal {
	return a.value.Round(Scale)
}

// Format renders d with exactly two fraction digits, e.g. "1300.00".
func Format(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}

// FormatNull renders a nullable column, nil when the column is NULL.
func FormatNull(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := Format(d.Decimal)
	return &s
}
