package common

import "strings"

// NotAvailable fills columns that are missing from a loaded file.
const NotAvailable = "N/A"

// claim statuses
const (
	Pending   = "Pending"
	Completed = "Completed"
	Cancelled = "Cancelled"
)

// provider types
const (
	Restaurant   = "Restaurant"
	GroceryStore = "Grocery Store"
	Hotel        = "Hotel"
	Supermarket  = "Supermarket"
	Bakery       = "Bakery"
)

// receiver types
const (
	NGO      = "NGO"
	FoodBank = "Food Bank"
	Shelter  = "Shelter"
	Charity  = "Charity"
)

// meal types
const (
	Breakfast = "Breakfast"
	Lunch     = "Lunch"
	Dinner    = "Dinner"
	Snacks    = "Snacks"
	Beverages = "Beverages"
)

var statuses = []string{Pending, Completed, Cancelled}

// NormalizeStatus maps a claim status to its canonical label ignoring case and
// surrounding spaces. Unknown values come back trimmed but otherwise untouched.
func NormalizeStatus(status string) string {
	trimmed := strings.TrimSpace(status)
	for _, s := range statuses {
		if strings.EqualFold(trimmed, s) {
			return s
		}
	}

	return trimmed
}
