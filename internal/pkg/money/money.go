package money

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Round2 rounds to 2 decimal places, half away from zero. The epsilon nudge
// keeps binary-float artifacts like 19.999999 from truncating to 19.99.
func Round2(x float64) float64 {
	return math.Round(x*100+math.Copysign(1e-6, x)) / 100
}

// Format renders an amount with its currency symbol. Unknown currency codes
// fall back to a plain "<CODE> <amount>" string instead of failing.
func Format(amount float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%s %.2f", code, Round2(amount))
	}
	p := message.NewPrinter(language.English)
	return p.Sprintf("%v", currency.NarrowSymbol(unit.Amount(amount)))
}
