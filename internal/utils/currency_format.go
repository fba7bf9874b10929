package utils

import (
	"fmt"

	"github.com/ahmedhedefa/cashier-ca-web/internal/core/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var displayPrinter = message.NewPrinter(language.MustParse("en-CA"))

// FormatCents renders a cent amount as Canadian dollars for display.
// Example: 123450 returns "$1,234.50"
// Example: -5 returns "-$0.05"
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	amount := domain.FromMinorUnits(cents)
	dollars := amount.IntPart()
	fraction := cents % 100
	return fmt.Sprintf("%s$%s.%02d", sign, displayPrinter.Sprintf("%d", dollars), fraction)
}
