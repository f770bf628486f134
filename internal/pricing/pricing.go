package pricing

import (
	"time"

	"rentacar-backend/internal/pkg/money"
	"rentacar-backend/internal/pkg/timeutil"
)

// Breakdown is a pure derived value, recomputed on every quote and never
// stored. Days and RemainingHours decompose Hours for display:
// Days*24 + RemainingHours == Hours always holds.
type Breakdown struct {
	Hours          int
	Base           float64
	DiscountRate   float64
	Discount       float64
	Total          float64
	Days           int
	RemainingHours int
}

// discountForHours picks the long-rental tier by billed hours. Boundaries
// are inclusive on the lower bound: exactly 168 hours gets 25%.
func discountForHours(hours int) float64 {
	switch {
	case hours >= 168:
		return 0.25 // 7+ days
	case hours >= 72:
		return 0.15 // 3-6 days
	case hours >= 24:
		return 0.10 // 1-2 days
	default:
		return 0
	}
}

// Quote computes the billed-hours price breakdown for a rental window.
// Invalid input (missing times, end <= start, non-positive rate) degrades to
// an all-zero breakdown rather than failing, so the result is always safe to
// render directly.
func Quote(start, end time.Time, pricePerHour float64) Breakdown {
	if start.IsZero() || end.IsZero() || !end.After(start) || pricePerHour <= 0 {
		return Breakdown{}
	}

	hours := timeutil.CeilHoursBetween(start, end)
	base := float64(hours) * pricePerHour
	rate := discountForHours(hours)
	discount := money.Round2(base * rate)
	total := money.Round2(base - discount)

	return Breakdown{
		Hours:          hours,
		Base:           base,
		DiscountRate:   rate,
		Discount:       discount,
		Total:          total,
		Days:           hours / 24,
		RemainingHours: hours % 24,
	}
}

// QuoteStrings is Quote for raw form inputs. Unparseable dates produce the
// same all-zero breakdown as any other invalid window.
func QuoteStrings(start, end string, pricePerHour float64) Breakdown {
	s, okS := timeutil.ParseLocal(start)
	e, okE := timeutil.ParseLocal(end)
	if !okS || !okE {
		return Breakdown{}
	}
	return Quote(s, e, pricePerHour)
}
