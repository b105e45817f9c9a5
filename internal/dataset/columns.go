package dataset

import "strings"

// table describes one source file: its canonical columns and the header
// synonyms that map onto them. The first column is the identity.
type table struct {
	name     string
	file     string
	columns  []string
	synonyms map[string]string
}

var providersTable = table{
	name:     "providers",
	file:     "providers_data.csv",
	columns:  []string{"provider_id", "name", "type", "address", "city", "contact"},
	synonyms: map[string]string{
		"Provider_ID":   "provider_id",
		"ID":            "provider_id",
		"Name":          "name",
		"Provider_Name": "name",
		"Type":          "type",
		"Provider_Type": "type",
		"Address":       "address",
		"City":          "city",
		"Location":      "city",
		"Contact":       "contact",
		"Phone":         "contact",
		"Email":         "contact",
	},
}

var receiversTable = table{
	name:     "receivers",
	file:     "receivers_data.csv",
	columns:  []string{"receiver_id", "name", "type", "city", "contact"},
	synonyms: map[string]string{
		"Receiver_ID":   "receiver_id",
		"ID":            "receiver_id",
		"Name":          "name",
		"Receiver_Name": "name",
		"Type":          "type",
		"Receiver_Type": "type",
		"City":          "city",
		"Location":      "city",
		"Contact":       "contact",
		"Phone":         "contact",
		"Email":         "contact",
	},
}

var foodListingsTable = table{
	name:     "food_listings",
	file:     "food_listings_data.csv",
	columns:  []string{"food_id", "food_name", "quantity", "expiry_date", "provider_id", "food_type", "meal_type", "location"},
	synonyms: map[string]string{
		"Food_ID":     "food_id",
		"ID":          "food_id",
		"Food_Name":   "food_name",
		"Name":        "food_name",
		"Quantity":    "quantity",
		"Amount":      "quantity",
		"Expiry_Date": "expiry_date",
		"Expiration":  "expiry_date",
		"Provider_ID": "provider_id",
		"Food_Type":   "food_type",
		"Type":        "food_type",
		"Meal_Type":   "meal_type",
		"Meal":        "meal_type",
		"Location":    "location",
		"City":        "location",
	},
}

var claimsTable = table{
	name:     "claims",
	file:     "claims_data.csv",
	columns:  []string{"claim_id", "food_id", "receiver_id", "status", "timestamp"},
	synonyms: map[string]string{
		"Claim_ID":    "claim_id",
		"ID":          "claim_id",
		"Food_ID":     "food_id",
		"Receiver_ID": "receiver_id",
		"Status":      "status",
		"Timestamp":   "timestamp",
		"Date":        "timestamp",
		"Created_At":  "timestamp",
	},
}

// canonical maps a raw header to a canonical column. Exact synonyms win, then a
// case-insensitive synonym match, then a header that already is canonical.
// ok is false for headers the table does not use.
func (t table) canonical(header string) (string, bool) {
	h := strings.TrimSpace(header)
	if c, ok := t.synonyms[h]; ok {
		return c, true
	}
	for raw, c := range t.synonyms {
		if strings.EqualFold(raw, h) {
			return c, true
		}
	}

	lower := strings.ToLower(h)
	for _, c := range t.columns {
		if c == lower {
			return c, true
		}
	}

	return "", false
}
