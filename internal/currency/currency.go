// Package currency handles display currency selection, exchange rates
// relative to the base currency, and amount formatting. All costs are
// stored in the base currency (PKR); conversion happens at render time.
package currency

import (
	"fmt"
	"strconv"
	"strings"
)

// Currency is a supported display currency code.
type Currency string

const (
	PKR Currency = "PKR"
	USD Currency = "USD"
	EUR Currency = "EUR"
)

// Currencies lists all supported display currencies.
var Currencies = []Currency{PKR, USD, EUR}

// Rates maps a currency to how many base units (PKR) one unit costs.
type Rates map[Currency]float64

// DefaultRates returns the built-in exchange rates.
func DefaultRates() Rates {
	return Rates{
		PKR: 1,
		USD: 278,
		EUR: 300,
	}
}

// Settings is the persisted currency configuration.
type Settings struct {
	Selected Currency `json:"selectedCurrency"`
	Rates    Rates    `json:"exchangeRates"`
}

// DefaultSettings returns the configuration used before the user picks
// a currency.
func DefaultSettings() Settings {
	return Settings{Selected: PKR, Rates: DefaultRates()}
}

// Normalize fills gaps in restored settings so every supported currency
// has a rate and the selection is valid.
func Normalize(s Settings) Settings {
	out := DefaultSettings()
	if s.Selected != "" {
		if _, err := Parse(string(s.Selected)); err == nil {
			out.Selected = s.Selected
		}
	}
	for c, rate := range s.Rates {
		if rate > 0 {
			out.Rates[c] = rate
		}
	}
	return out
}

// Parse validates a currency code.
func Parse(s string) (Currency, error) {
	code := Currency(strings.ToUpper(s))
	for _, c := range Currencies {
		if c == code {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid currency: %s (valid values: PKR, USD, EUR)", s)
}

var symbols = map[Currency]string{
	PKR: "₨",
	USD: "$",
	EUR: "€",
}

// Format converts an amount in the base currency to the target currency
// and renders it with a symbol and thousands separators.
func Format(amountBase float64, target Currency, rates Rates, fractionDigits int) string {
	rate := rates[target]
	if rate <= 0 {
		rate = 1
	}
	converted := amountBase / rate

	symbol, ok := symbols[target]
	if !ok {
		return fmt.Sprintf("%s %s", target, strconv.FormatFloat(converted, 'f', fractionDigits, 64))
	}
	return fmt.Sprintf("%s %s", symbol, groupThousands(converted, fractionDigits))
}

// groupThousands renders a number with comma-separated integer groups.
func groupThousands(v float64, fractionDigits int) string {
	s := strconv.FormatFloat(v, 'f', fractionDigits, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	b.WriteString(fracPart)
	return b.String()
}
