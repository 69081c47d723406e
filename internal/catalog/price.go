package catalog

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatPrice renders a price with its currency symbol, e.g. "$ 429.00".
// Unknown or empty currency codes fall back to fallbackCode, and finally to
// USD.
func FormatPrice(price float64, code, fallbackCode string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit, err = currency.ParseISO(fallbackCode)
		if err != nil {
			unit = currency.USD
		}
	}

	p := message.NewPrinter(language.English)
	return p.Sprint(currency.Symbol(unit.Amount(price)))
}
