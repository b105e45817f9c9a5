package entity

type ProviderTypeRow struct {
	ProviderType        string   `json:"providerType"`
	Providers           int      `json:"providers"`
	Listings            int      `json:"listings"`
	TotalQuantity       float64  `json:"totalQuantity"`
	AvgQuantity         *float64 `json:"avgQuantity"`
	FoodTypes           int      `json:"foodTypes"`
	MealTypes           int      `json:"mealTypes"`
	Claims              int      `json:"claims"`
	CompletedClaims     int      `json:"completedClaims"`
	SuccessRate         *float64 `json:"successRate"`
	DistributedQuantity float64  `json:"distributedQuantity"`
	AvgPerProvider      *float64 `json:"avgPerProvider"`
	ContributionRank    int      `json:"contributionRank"`
}

type TopProviderRow struct {
	ProviderId            int      `json:"providerId"`
	Name                  string   `json:"name"`
	Type                  string   `json:"type"`
	City                  string   `json:"city"`
	Contact               string   `json:"contact"`
	Listings              int      `json:"listings"`
	TotalQuantity         float64  `json:"totalQuantity"`
	FoodTypes             int      `json:"foodTypes"`
	Claims                int      `json:"claims"`
	CompletedClaims       int      `json:"completedClaims"`
	PendingClaims         int      `json:"pendingClaims"`
	CancelledClaims       int      `json:"cancelledClaims"`
	SuccessRate           *float64 `json:"successRate"`
	DistributedQuantity   float64  `json:"distributedQuantity"`
	UniqueReceivers       int      `json:"uniqueReceivers"`
	ClaimsPerListing      *float64 `json:"claimsPerListing"`
	DistributedPerListing *float64 `json:"distributedPerListing"`
	AvgDaysBeforeExpiry   *float64 `json:"avgDaysBeforeExpiry"`
	RecentSuccesses       int      `json:"recentSuccesses"`
	Recognition           string   `json:"recognition"`
}

type ProviderDonationRow struct {
	ProviderId          int      `json:"providerId"`
	Name                string   `json:"name"`
	Type                string   `json:"type"`
	City                string   `json:"city"`
	Listings            int      `json:"listings"`
	DonatedQuantity     float64  `json:"donatedQuantity"`
	AvgQuantity         *float64 `json:"avgQuantity"`
	DistributedItems    int      `json:"distributedItems"`
	DistributedQuantity float64  `json:"distributedQuantity"`
	DistributionRate    *float64 `json:"distributionRate"`
	ExpiredItems        int      `json:"expiredItems"`
	WastedQuantity      float64  `json:"wastedQuantity"`
	WastageRate         *float64 `json:"wastageRate"`
	FoodTypes           int      `json:"foodTypes"`
	ReceiversServed     int      `json:"receiversServed"`
	AvgDaysToExpiry     *float64 `json:"avgDaysToExpiry"`
	ImpactScore         float64  `json:"impactScore"`
	Recognition         string   `json:"recognition"`
}

type ProviderReliabilityRow struct {
	ProviderId      int      `json:"providerId"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	City            string   `json:"city"`
	TotalClaims     int      `json:"totalClaims"`
	CompletedClaims int      `json:"completedClaims"`
	ReliabilityRate *float64 `json:"reliabilityRate"`
}

type TopReceiverRow struct {
	ReceiverId      int      `json:"receiverId"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	City            string   `json:"city"`
	Contact         string   `json:"contact"`
	Claims          int      `json:"claims"`
	CompletedClaims int      `json:"completedClaims"`
	PendingClaims   int      `json:"pendingClaims"`
	CancelledClaims int      `json:"cancelledClaims"`
	SuccessRate     *float64 `json:"successRate"`
	FoodReceived    float64  `json:"foodReceived"`
	AvgPerSuccess   *float64 `json:"avgPerSuccess"`
	FoodTypes       int      `json:"foodTypes"`
	RecentClaims    int      `json:"recentClaims"`
	Rating          string   `json:"rating"`
}

type ReceiverAverageRow struct {
	ReceiverId      int      `json:"receiverId"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	City            string   `json:"city"`
	Claims          int      `json:"claims"`
	CompletedClaims int      `json:"completedClaims"`
	QuantityClaimed float64  `json:"quantityClaimed"`
	FoodReceived    float64  `json:"foodReceived"`
	AvgPerSuccess   *float64 `json:"avgPerSuccess"`
	AvgPerClaim     *float64 `json:"avgPerClaim"`
	SuccessRate     *float64 `json:"successRate"`
	FoodTypes       int      `json:"foodTypes"`
	Providers       int      `json:"providers"`
	RecentClaims    int      `json:"recentClaims"`
	RecentReceived  float64  `json:"recentReceived"`
	Category        string   `json:"category"`
}

type ReceiverDirectoryRow struct {
	ReceiverId      int    `json:"receiverId"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	City            string `json:"city"`
	Contact         string `json:"contact"`
	Claims          int    `json:"claims"`
	CompletedClaims int    `json:"completedClaims"`
}
