package helpers

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders a whole-unit price with Indonesian digit
// grouping and the Rp prefix, e.g. 42000 -> "Rp42.000". Prices are
// integers everywhere; there are no fractional amounts.
func FormatRupiah(price int) string {
	return rupiahPrinter.Sprintf("Rp%d", price)
}
