package utils

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	nonNumericRe   = regexp.MustCompile(`[^0-9.-]+`)
	currencyCodeRe = regexp.MustCompile(`[A-Z]{3}`)
	leadingFloatRe = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)`)
)

var symbolToCode = map[rune]string{
	'€': "EUR",
	'£': "GBP",
	'$': "USD",
	'¥': "JPY",
}

var codeToSymbol = map[string]string{
	"EUR": "€",
	"GBP": "£",
	"USD": "$",
	"JPY": "¥",
}

// Amount is a parsed receipt string. When the numeric part cannot be parsed
// Valid is false, Value is zero for aggregation, and display falls back to
// the raw input unchanged.
type Amount struct {
	Raw      string
	Value    float64
	Currency string
	Valid    bool
}

// ParseAmount extracts a numeric value and an ISO currency code from a
// free-text money string such as "€123.45" or "123.45 USD". Every rune that
// is not a digit, decimal point or minus sign is stripped before parsing.
func ParseAmount(raw string) Amount {
	amount := Amount{Raw: raw, Currency: DetectCurrency(raw)}

	numeric := nonNumericRe.ReplaceAllString(raw, "")
	value, err := strconv.ParseFloat(numeric, 64)
	if err != nil {
		return amount
	}

	amount.Value = value
	amount.Valid = true
	return amount
}

// DetectCurrency resolves the currency indicator of a money string: a
// 3-uppercase-letter run wins, then a known leading symbol, then EUR.
func DetectCurrency(raw string) string {
	if code := currencyCodeRe.FindString(raw); code != "" {
		return code
	}
	for _, r := range raw {
		if code, ok := symbolToCode[r]; ok {
			return code
		}
		break
	}
	return "EUR"
}

// Display renders the amount with two decimal places, symbol prefix and
// code suffix ("€123.45 EUR"). JPY renders as a rounded integer ("¥50 JPY").
// Unparsable amounts come back as the raw input string unchanged.
func (a Amount) Display() string {
	if !a.Valid {
		return a.Raw
	}

	symbol, ok := codeToSymbol[a.Currency]
	if !ok {
		symbol = a.Currency
	}

	if a.Currency == "JPY" {
		return fmt.Sprintf("%s%d %s", symbol, int64(math.Round(a.Value)), a.Currency)
	}
	return fmt.Sprintf("%s%.2f %s", symbol, a.Value, a.Currency)
}

// ParseLeadingFloat parses the longest numeric prefix of a string, so
// "123.45 USD" yields 123.45 while "€123.45" yields 0. Used by the monthly
// aggregation, which deliberately does not strip currency symbols.
func ParseLeadingFloat(raw string) float64 {
	match := strings.TrimSpace(leadingFloatRe.FindString(raw))
	if match == "" {
		return 0
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return value
}
