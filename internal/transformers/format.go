package transformers

import (
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const PlaceholderPhoto = "https://via.placeholder.com/400x300?text=No+Photo"

var printer = message.NewPrinter(language.AmericanEnglish)

var usdSymbol = printer.Sprint(currency.NarrowSymbol(currency.USD))

// FormatPrice renders whole US dollars, e.g. "$450,000".
func FormatPrice(v float64) string {
	return usdSymbol + printer.Sprint(number.Decimal(v, number.MaxFractionDigits(0)))
}

// FormatCount renders an integer with thousands separators.
func FormatCount(n int) string {
	return printer.Sprint(number.Decimal(n))
}

// FormatBathrooms keeps half baths ("2.5") and drops a trailing ".0".
func FormatBathrooms(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// StatusClass maps a listing status to its badge class.
func StatusClass(status string) string {
	return "status-" + strings.ToLower(status)
}
