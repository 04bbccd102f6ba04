package document

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Symbols are limited to what the core PDF fonts can encode.
var currencySymbols = map[string]string{
	"INR": "Rs.",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"AUD": "A$",
	"CAD": "C$",
	"SGD": "S$",
	"NZD": "NZ$",
}

// CurrencySymbol returns the display symbol for an ISO code, or the code
// itself when there is none.
func CurrencySymbol(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if symbol, ok := currencySymbols[code]; ok {
		return symbol
	}
	return code
}

// GroupThousands inserts a comma every three digits counted from the right.
func GroupThousands(n int64) string {
	negative := n < 0
	digits := strconv.FormatInt(n, 10)
	if negative {
		digits = digits[1:]
	}

	var out strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	out.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		out.WriteByte(',')
		out.WriteString(digits[i : i+3])
	}

	if negative {
		return "-" + out.String()
	}
	return out.String()
}

// FormatAmount rounds amount to whole units and renders it with the currency
// symbol. Grouping is always by three digits, independent of locale.
func FormatAmount(amount float64, currency string) string {
	rounded := int64(math.Round(amount))
	symbol := CurrencySymbol(currency)

	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}

	if symbol == "" {
		return sign + GroupThousands(rounded)
	}
	if utf8.RuneCountInString(symbol) == 1 {
		return sign + symbol + GroupThousands(rounded)
	}
	return sign + symbol + " " + GroupThousands(rounded)
}
