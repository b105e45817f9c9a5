package entity

type ClaimStatusRow struct {
	Status            string   `json:"status"`
	Claims            int      `json:"claims"`
	Percentage        *float64 `json:"percentage"`
	TotalQuantity     float64  `json:"totalQuantity"`
	AvgQuantity       *float64 `json:"avgQuantity"`
	Cities            int      `json:"cities"`
	Providers         int      `json:"providers"`
	Receivers         int      `json:"receivers"`
	FoodTypes         int      `json:"foodTypes"`
	MealTypes         int      `json:"mealTypes"`
	AvgDaysSinceClaim *float64 `json:"avgDaysSinceClaim"`
	RecentClaims      int      `json:"recentClaims"`
	RecentPercentage  *float64 `json:"recentPercentage"`
	ImpactKg          float64  `json:"impactKg"`
	Insight           string   `json:"insight"`
}

type MealTypeRow struct {
	MealType            string   `json:"mealType"`
	Claims              int      `json:"claims"`
	CompletedClaims     int      `json:"completedClaims"`
	PendingClaims       int      `json:"pendingClaims"`
	CancelledClaims     int      `json:"cancelledClaims"`
	SuccessRate         *float64 `json:"successRate"`
	DistributedQuantity float64  `json:"distributedQuantity"`
	AvgPerSuccess       *float64 `json:"avgPerSuccess"`
	Items               int      `json:"items"`
	DemandSupplyRatio   *float64 `json:"demandSupplyRatio"`
	Providers           int      `json:"providers"`
	Receivers           int      `json:"receivers"`
	Cities              int      `json:"cities"`
	FoodTypes           int      `json:"foodTypes"`
	AvgDaysBeforeExpiry *float64 `json:"avgDaysBeforeExpiry"`
	ClaimShare          *float64 `json:"claimShare"`
	DemandRank          int      `json:"demandRank"`
	SuccessRank         int      `json:"successRank"`
	RecentClaims        int      `json:"recentClaims"`
	Insight             string   `json:"insight"`
}

type FrequentProviderRow struct {
	ProviderId    int     `json:"providerId"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	City          string  `json:"city"`
	Contact       string  `json:"contact"`
	Listings      int     `json:"listings"`
	TotalQuantity float64 `json:"totalQuantity"`
}

type SystemAnalysisRow struct {
	TotalProviders              int      `json:"totalProviders"`
	TotalReceivers              int      `json:"totalReceivers"`
	TotalFoodItems              int      `json:"totalFoodItems"`
	TotalFoodQuantity           float64  `json:"totalFoodQuantity"`
	TotalClaims                 int      `json:"totalClaims"`
	SuccessfulDistributions     int      `json:"successfulDistributions"`
	SuccessRate                 *float64 `json:"successRate"`
	TopProviderType             *string  `json:"topProviderType"`
	TopProviderContribution     float64  `json:"topProviderContribution"`
	TopCity                     *string  `json:"topCity"`
	TopCityDistribution         float64  `json:"topCityDistribution"`
	MostWastedFoodType          *string  `json:"mostWastedFoodType"`
	HighestWasteQuantity        float64  `json:"highestWasteQuantity"`
	OverallWastageRate          *float64 `json:"overallWastageRate"`
	CitiesWithCompleteEcosystem int      `json:"citiesWithCompleteEcosystem"`
	SystemHealth                string   `json:"systemHealth"`
	PrimaryAction               *string  `json:"primaryAction"`
	ExpansionRecommendation     *string  `json:"expansionRecommendation"`
}

type DailyClaimTrendRow struct {
	ClaimDate           string   `json:"claimDate"`
	Claims              int      `json:"claims"`
	CompletedClaims     int      `json:"completedClaims"`
	PendingClaims       int      `json:"pendingClaims"`
	CancelledClaims     int      `json:"cancelledClaims"`
	QuantityClaimed     float64  `json:"quantityClaimed"`
	QuantityDistributed float64  `json:"quantityDistributed"`
	SuccessRate         *float64 `json:"successRate"`
	DayOfWeek           string   `json:"dayOfWeek"`
	YearMonth           string   `json:"yearMonth"`
}

type DailyExpiryTrendRow struct {
	ExpiryDate     string   `json:"expiryDate"`
	Items          int      `json:"items"`
	Quantity       float64  `json:"quantity"`
	FoodTypes      int      `json:"foodTypes"`
	Providers      int      `json:"providers"`
	Claims         int      `json:"claims"`
	ItemsSaved     int      `json:"itemsSaved"`
	ItemsWasted    int      `json:"itemsWasted"`
	QuantitySaved  float64  `json:"quantitySaved"`
	QuantityWasted float64  `json:"quantityWasted"`
	SaveRate       *float64 `json:"saveRate"`
	YearWeek       string   `json:"yearWeek"`
	YearMonth      string   `json:"yearMonth"`
	Urgency        string   `json:"urgency"`
}

type MonthlyClaimTrendRow struct {
	Month               string   `json:"month"`
	Claims              int      `json:"claims"`
	CompletedClaims     int      `json:"completedClaims"`
	QuantityClaimed     float64  `json:"quantityClaimed"`
	QuantityDistributed float64  `json:"quantityDistributed"`
	ActiveProviders     int      `json:"activeProviders"`
	ActiveReceivers     int      `json:"activeReceivers"`
	Cities              int      `json:"cities"`
	SuccessRate         *float64 `json:"successRate"`
	AvgDaysBeforeExpiry *float64 `json:"avgDaysBeforeExpiry"`
	PreviousMonthClaims *int     `json:"previousMonthClaims"`
	GrowthRate          *float64 `json:"growthRate"`
}

// ClaimListingRow is one stored claim. Listing, provider and receiver fields are
// nil when the claim points at ids that do not exist.
type ClaimListingRow struct {
	ClaimId      int      `json:"claimId"`
	FoodId       int      `json:"foodId"`
	FoodName     *string  `json:"foodName"`
	FoodType     *string  `json:"foodType"`
	Quantity     *float64 `json:"quantity"`
	ProviderName *string  `json:"providerName"`
	ReceiverId   int      `json:"receiverId"`
	ReceiverName *string  `json:"receiverName"`
	Status       string   `json:"status"`
	Timestamp    string   `json:"timestamp"`
}
