package scorer

import "time"

// DateScore близость даты рейса к желаемой дате груза, по календарным дням.
// Нулевая дата с любой стороны дает 0.
func DateScore(preferred, travel time.Time) float64 {
	if preferred.IsZero() || travel.IsZero() {
		return 0
	}

	days := calendarDays(preferred, travel)
	switch {
	case days == 0:
		return 1.0
	case days <= 1:
		return 0.9
	case days <= 3:
		return 0.7
	case days <= 7:
		return 0.5
	case days <= 14:
		return 0.3
	default:
		return 0
	}
}

func calendarDays(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)

	days := int(da.Sub(db).Hours() / 24)
	if days < 0 {
		return -days
	}
	return days
}
