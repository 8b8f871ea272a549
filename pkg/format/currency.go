// Package format renders currency and percentage strings for display.
package format

import (
	"fmt"
	"strconv"

	"github.com/iwvelando/mortgage-forecast/pkg/constants"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
// Amounts are rounded half away from zero to cents.
func Currency(amount float64) string {
	return currency(amount, constants.DisplayPlaces)
}

// WholeCurrency returns a currency string rounded to whole dollars (e.g., "$1,234").
func WholeCurrency(amount float64) string {
	return currency(amount, 0)
}

// Percent renders a ratio as a percentage with one decimal (e.g., 0.5 -> "50.0%").
func Percent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

// currency rounds before choosing the sign so values that round to zero
// never print as "-$0.00".
func currency(amount float64, places int32) string {
	p := message.NewPrinter(language.English)
	verb := "%." + strconv.Itoa(int(places)) + "f"
	rounded := decimal.NewFromFloat(amount).Round(places)
	if rounded.IsNegative() {
		return "-$" + p.Sprintf(verb, rounded.Neg().InexactFloat64())
	}
	return "$" + p.Sprintf(verb, rounded.InexactFloat64())
}
