package derive

import "time"

type Urgency string

const (
	Critical Urgency = "Critical"
	Urgent   Urgency = "Urgent"
	Soon     Urgency = "Soon"
	Normal   Urgency = "Normal"
)

const DateLayout = "2006-01-02"

// DaysUntil counts calendar days from now to expiry. Negative once expiry has passed.
func DaysUntil(expiry, now time.Time) int {
	e := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return int(e.Sub(n).Hours() / 24)
}

// ClassifyDays buckets a day offset. The more urgent bucket wins on a boundary.
func ClassifyDays(days int) Urgency {
	switch {
	case days <= 1:
		return Critical
	case days <= 3:
		return Urgent
	case days <= 7:
		return Soon
	default:
		return Normal
	}
}

func UrgencyOf(expiry, now time.Time) Urgency {
	return ClassifyDays(DaysUntil(expiry, now))
}

// DaysUntilDate parses a stored YYYY-MM-DD expiry. ok is false for text that is not a date.
func DaysUntilDate(expiry string, now time.Time) (days int, ok bool) {
	t, err := time.Parse(DateLayout, expiry)
	if err != nil {
		return 0, false
	}

	return DaysUntil(t, now), true
}
