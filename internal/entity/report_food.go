package entity

type UrgencyBuckets struct {
	CriticalItems    int     `json:"criticalItems"`
	CriticalQuantity float64 `json:"criticalQuantity"`
	UrgentItems      int     `json:"urgentItems"`
	UrgentQuantity   float64 `json:"urgentQuantity"`
	SoonItems        int     `json:"soonItems"`
	SoonQuantity     float64 `json:"soonQuantity"`
	NormalItems      int     `json:"normalItems"`
	NormalQuantity   float64 `json:"normalQuantity"`
}

type FoodAvailabilityRow struct {
	TotalItems      int      `json:"totalItems"`
	TotalQuantity   float64  `json:"totalQuantity"`
	AvgQuantity     *float64 `json:"avgQuantity"`
	FreshItems      int      `json:"freshItems"`
	FreshQuantity   float64  `json:"freshQuantity"`
	ExpiredItems    int      `json:"expiredItems"`
	ExpiredQuantity float64  `json:"expiredQuantity"`
	UrgencyBuckets
	Providers           int      `json:"providers"`
	Cities              int      `json:"cities"`
	FoodTypes           int      `json:"foodTypes"`
	MealTypes           int      `json:"mealTypes"`
	Claims              int      `json:"claims"`
	DistributedQuantity float64  `json:"distributedQuantity"`
	DistributionRate    *float64 `json:"distributionRate"`
	AvgPerProvider      *float64 `json:"avgPerProvider"`
	AvgPerCity          *float64 `json:"avgPerCity"`
}

type FoodTypeRow struct {
	FoodType          string   `json:"foodType"`
	Items             int      `json:"items"`
	TotalQuantity     float64  `json:"totalQuantity"`
	AvailableItems    int      `json:"availableItems"`
	AvailableQuantity float64  `json:"availableQuantity"`
	Providers         int      `json:"providers"`
	ProviderTypes     int      `json:"providerTypes"`
	Cities            int      `json:"cities"`
	MealTypes         int      `json:"mealTypes"`
	Claims            int      `json:"claims"`
	CompletedClaims   int      `json:"completedClaims"`
	SuccessRate       *float64 `json:"successRate"`
	SupplyDemandRatio *float64 `json:"supplyDemandRatio"`
	MarketShare       *float64 `json:"marketShare"`
	PopularityRank    int      `json:"popularityRank"`
	DemandRank        int      `json:"demandRank"`
}

type FoodTypeWastageRow struct {
	FoodType       string   `json:"foodType"`
	TotalQuantity  float64  `json:"totalQuantity"`
	WastedQuantity float64  `json:"wastedQuantity"`
	WastageRate    *float64 `json:"wastageRate"`
}

type FoodWastageTrendRow struct {
	FoodType            string   `json:"foodType"`
	Listings            int      `json:"listings"`
	TotalQuantity       float64  `json:"totalQuantity"`
	WastedItems         int      `json:"wastedItems"`
	WastedQuantity      float64  `json:"wastedQuantity"`
	ItemWastageRate     *float64 `json:"itemWastageRate"`
	QuantityWastageRate *float64 `json:"quantityWastageRate"`
	CriticalItems       int      `json:"criticalItems"`
	UrgentItems         int      `json:"urgentItems"`
	SoonItems           int      `json:"soonItems"`
	Claims              int      `json:"claims"`
	SavedQuantity       float64  `json:"savedQuantity"`
	SaveRate            *float64 `json:"saveRate"`
	Providers           int      `json:"providers"`
	Cities              int      `json:"cities"`
}

type FoodItemClaimsRow struct {
	FoodId              int      `json:"foodId"`
	FoodName            string   `json:"foodName"`
	FoodType            string   `json:"foodType"`
	MealType            string   `json:"mealType"`
	Quantity            float64  `json:"quantity"`
	ExpiryDate          string   `json:"expiryDate"`
	ProviderId          int      `json:"providerId"`
	ProviderName        *string  `json:"providerName"`
	ProviderCity        *string  `json:"providerCity"`
	Claims              int      `json:"claims"`
	CompletedClaims     int      `json:"completedClaims"`
	PendingClaims       int      `json:"pendingClaims"`
	CancelledClaims     int      `json:"cancelledClaims"`
	SuccessRate         *float64 `json:"successRate"`
	AvgDaysBeforeExpiry *float64 `json:"avgDaysBeforeExpiry"`
	ClaimsPerUnit       *float64 `json:"claimsPerUnit"`
	DaysUntilExpiry     *int     `json:"daysUntilExpiry"`
	Urgency             *string  `json:"urgency"`
	ItemStatus          string   `json:"itemStatus"`
}

type ExpiringFoodRow struct {
	FoodId          int     `json:"foodId"`
	FoodName        string  `json:"foodName"`
	FoodType        string  `json:"foodType"`
	MealType        string  `json:"mealType"`
	Quantity        float64 `json:"quantity"`
	ExpiryDate      string  `json:"expiryDate"`
	ProviderId      int     `json:"providerId"`
	ProviderName    *string `json:"providerName"`
	ProviderCity    *string `json:"providerCity"`
	ProviderContact *string `json:"providerContact"`
	DaysUntilExpiry int     `json:"daysUntilExpiry"`
	Urgency         string  `json:"urgency"`
}
