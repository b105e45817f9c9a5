package entity

// db model
type FoodListing struct {
	Id         int     `json:"foodId" db:"food_id"`
	FoodName   string  `json:"foodName" db:"food_name"`
	Quantity   float64 `json:"quantity" db:"quantity"`
	ExpiryDate string  `json:"expiryDate" db:"expiry_date"` // YYYY-MM-DD, raw text when unparsable
	ProviderId int     `json:"providerId" db:"provider_id"`
	FoodType   string  `json:"foodType" db:"food_type"`
	MealType   string  `json:"mealType" db:"meal_type"`
	Location   string  `json:"location" db:"location"`
}

// service + repo input model
type CreateFoodListingInput struct {
	FoodName   string
	Quantity   float64
	ExpiryDate string // YYYY-MM-DD
	ProviderId int
	FoodType   string
	MealType   string
	Location   string // defaults to the provider's city when empty
}

// ListingExpiry is the slice of a listing needed to bucket it by urgency.
type ListingExpiry struct {
	FoodId     int
	FoodType   string
	Quantity   float64
	ExpiryDate string
}
