package entity

type CityEcosystemRow struct {
	City              string `json:"city"`
	Providers         int    `json:"providers"`
	Receivers         int    `json:"receivers"`
	Restaurants       int    `json:"restaurants"`
	GroceryStores     int    `json:"groceryStores"`
	Hotels            int    `json:"hotels"`
	Supermarkets      int    `json:"supermarkets"`
	NGOs              int    `json:"ngos"`
	FoodBanks         int    `json:"foodBanks"`
	Shelters          int    `json:"shelters"`
	Charities         int    `json:"charities"`
	EcosystemStrength int    `json:"ecosystemStrength"`
}

type CityListingsRow struct {
	City             string   `json:"city"`
	Listings         int      `json:"listings"`
	TotalQuantity    float64  `json:"totalQuantity"`
	AvgQuantity      *float64 `json:"avgQuantity"`
	Providers        int      `json:"providers"`
	FoodTypes        int      `json:"foodTypes"`
	MealTypes        int      `json:"mealTypes"`
	FreshItems       int      `json:"freshItems"`
	ExpiredItems     int      `json:"expiredItems"`
	FreshnessRate    *float64 `json:"freshnessRate"`
	Claims           int      `json:"claims"`
	CompletedClaims  int      `json:"completedClaims"`
	ClaimSuccessRate *float64 `json:"claimSuccessRate"`
	ListingsRank     int      `json:"listingsRank"`
	QuantityRank     int      `json:"quantityRank"`
	PerformanceScore float64  `json:"performanceScore"`
}

type ProviderContactRow struct {
	ProviderId      int     `json:"providerId"`
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	Address         string  `json:"address"`
	City            string  `json:"city"`
	Contact         string  `json:"contact"`
	Listings        int     `json:"listings"`
	TotalQuantity   float64 `json:"totalQuantity"`
	FoodTypes       int     `json:"foodTypes"`
	FreshItems      int     `json:"freshItems"`
	ExpiredItems    int     `json:"expiredItems"`
	Claims          int     `json:"claims"`
	CompletedClaims int     `json:"completedClaims"`
	Status          string  `json:"status"`
}

// CityDemandRow counts claims by the city of the provider whose food was claimed.
type CityDemandRow struct {
	City                string   `json:"city"`
	Claims              int      `json:"claims"`
	CompletedClaims     int      `json:"completedClaims"`
	SuccessRate         *float64 `json:"successRate"`
	DistributedQuantity float64  `json:"distributedQuantity"`
	Receivers           int      `json:"receivers"`
}
