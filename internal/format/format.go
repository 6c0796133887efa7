// Package format renders money amounts the way the storefront displays
// them: Iraqi dinar, ar-IQ digit grouping, no fractional digits.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("ar-IQ"))

// Price renders a whole-dinar amount as localized currency text.
func Price(amount int) string {
	return printer.Sprintf("%v د.ع", number.Decimal(amount))
}
