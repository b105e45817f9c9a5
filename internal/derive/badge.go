package derive

import "food-wastage-api/internal/common"

// Threshold matches when value >= MinValue and, if MinRate > 0, rate >= MinRate.
type Threshold struct {
	MinValue float64
	MinRate  float64
	Label    string
}

type BadgeTable struct {
	Thresholds []Threshold
	Fallback   string
}

// Badge walks the table top-down and returns the first matching label.
// A nil rate never satisfies a rate requirement.
func Badge(value float64, rate *float64, table BadgeTable) string {
	for _, t := range table.Thresholds {
		if value < t.MinValue {
			continue
		}
		if t.MinRate > 0 && (rate == nil || *rate < t.MinRate) {
			continue
		}

		return t.Label
	}

	return table.Fallback
}

// value: completed claims, rate: success %
var ProviderRecognition = BadgeTable{
	Thresholds: []Threshold{
		{MinValue: 50, MinRate: 85, Label: "Champion Provider"},
		{MinValue: 25, MinRate: 75, Label: "Excellent Provider"},
		{MinValue: 10, MinRate: 60, Label: "Good Provider"},
		{MinValue: 1, Label: "Active Provider"},
	},
	Fallback: "Inactive",
}

// value: completed claims, rate: success %
var ReceiverRating = BadgeTable{
	Thresholds: []Threshold{
		{MinValue: 20, MinRate: 80, Label: "Excellent Receiver"},
		{MinValue: 10, MinRate: 60, Label: "Good Receiver"},
		{MinValue: 1, Label: "Active Receiver"},
	},
	Fallback: "Inactive",
}

// value: kg received through completed claims
var ReceiverCategory = BadgeTable{
	Thresholds: []Threshold{
		{MinValue: 500, Label: "Major Recipient"},
		{MinValue: 200, Label: "High Volume"},
		{MinValue: 50, Label: "Regular"},
		{MinValue: 1, Label: "Occasional"},
	},
	Fallback: "No Success",
}

// value: kg distributed, rate: distributed share of donated kg
var DonorRecognition = BadgeTable{
	Thresholds: []Threshold{
		{MinValue: 1000, MinRate: 80, Label: "Champion Donor"},
		{MinValue: 500, MinRate: 70, Label: "Excellent Donor"},
		{MinValue: 200, MinRate: 60, Label: "Good Donor"},
		{MinValue: 1, Label: "Active Donor"},
	},
	Fallback: "Inactive",
}

// rate only; every threshold has MinValue 0
var systemHealth = BadgeTable{
	Thresholds: []Threshold{
		{MinRate: 80, Label: "System performing excellently"},
		{MinRate: 60, Label: "System performing well with room for improvement"},
	},
	Fallback: "System needs significant optimization",
}

// HealthLabel grades the overall claim success rate. A nil rate gets the lowest grade.
func HealthLabel(successRate *float64) string {
	return Badge(0, successRate, systemHealth)
}

func ProviderContactStatus(freshItems, listings int) string {
	switch {
	case freshItems > 0:
		return "Active"
	case listings > 0:
		return "Has Listings"
	default:
		return "Inactive"
	}
}

// ItemStatus labels a listing. days is nil when the expiry date could not be read.
func ItemStatus(days *int, completed, claims int) string {
	switch {
	case days != nil && *days < 0:
		return "Expired"
	case completed > 0:
		return "Distributed"
	case claims > 0:
		return "Has Claims"
	case days != nil && *days <= 1:
		return "Urgent"
	default:
		return "Available"
	}
}

func MealTypeInsight(mealType string) string {
	switch mealType {
	case common.Breakfast:
		return "Morning meals - typically fresh items needed"
	case common.Lunch:
		return "Midday meals - highest volume period"
	case common.Dinner:
		return "Evening meals - often hearty dishes"
	case common.Snacks:
		return "Light items - good for quick distribution"
	case common.Beverages:
		return "Drinks - long shelf life items"
	default:
		return "Mixed meal items"
	}
}

func StatusInsight(status string) string {
	switch status {
	case common.Completed:
		return "Successfully distributed food to those in need"
	case common.Pending:
		return "Awaiting pickup or processing"
	case common.Cancelled:
		return "Claims that did not proceed - investigate reasons"
	default:
		return "Unknown status"
	}
}
