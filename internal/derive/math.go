package derive

import "math"

func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))

	return math.Round(v*p) / p
}

// SafePercentage returns round(100*num/den, 2), or nil when den is not positive.
func SafePercentage(num, den float64) *float64 {
	if den <= 0 {
		return nil
	}
	v := Round(100*num/den, 2)

	return &v
}

// SafeRatio returns num/den rounded to places, or nil when den is not positive.
func SafeRatio(num, den float64, places int) *float64 {
	if den <= 0 {
		return nil
	}
	v := Round(num/den, places)

	return &v
}

func RoundPtr(v *float64, places int) *float64 {
	if v == nil {
		return nil
	}
	r := Round(*v, places)

	return &r
}

func Float(v *float64) float64 {
	if v == nil {
		return 0
	}

	return *v
}
