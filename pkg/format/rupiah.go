package format

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// Rupiah renders an amount with Indonesian digit grouping, e.g.
// Rupiah(150000) == "Rp 150.000". Receipts and detail strings embed amounts
// in this form, matching what was stored by earlier installations.
func Rupiah(amount int64) string {
	return printer.Sprintf("Rp %d", amount)
}

// Quantity renders a possibly-fractional quantity without trailing zeros,
// e.g. 2.5 -> "2.5", 3 -> "3".
func Quantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
