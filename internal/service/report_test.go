package service

import (
	"context"
	"fmt"
	"food-wastage-api/internal/entity"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestClaimStatusBreakdownIgnoresCase(t *testing.T) {
	env := newTestEnv(t, Options{})
	seed(t, env, twoCityDataset())

	rows, report := runReport[entity.ClaimStatusRow](t, env, "claim_status_breakdown", entity.ReportFilters{})

	require.Len(t, rows, 3)
	assert.Equal(t, 3, report.RowCount)

	assert.Equal(t, "Completed", rows[0].Status)
	assert.Equal(t, 2, rows[0].Claims)
	assert.Equal(t, ptr(50.0), rows[0].Percentage)
	assert.Equal(t, 20.0, rows[0].ImpactKg)

	assert.Equal(t, "Cancelled", rows[1].Status)
	assert.Equal(t, ptr(25.0), rows[1].Percentage)
	assert.Zero(t, rows[1].ImpactKg)

	assert.Equal(t, "Pending", rows[2].Status)
	assert.Equal(t, ptr(25.0), rows[2].Percentage)
}

func TestProvidersReceiversPerCity(t *testing.T) {
	env := newTestEnv(t, Options{})
	seed(t, env, twoCityDataset())

	rows, _ := runReport[entity.CityEcosystemRow](t, env, "providers_receivers_per_city", entity.ReportFilters{})

	require.Len(t, rows, 2)
	assert.Equal(t, "CityX", rows[0].City)
	assert.Equal(t, 1, rows[0].Providers)
	assert.Equal(t, 1, rows[0].Receivers)
	assert.Equal(t, 1, rows[0].Restaurants)
	assert.Equal(t, 1, rows[0].NGOs)
	assert.Equal(t, 2, rows[0].EcosystemStrength)

	assert.Equal(t, "CityY", rows[1].City)
	assert.Equal(t, 1, rows[1].Providers)
	assert.Equal(t, 0, rows[1].Receivers)
	assert.Equal(t, 1, rows[1].Hotels)
}

func TestFoodAvailabilitySplitsFreshAndExpired(t *testing.T) {
	env := newTestEnv(t, Options{})
	seed(t, env, twoCityDataset())

	rows, _ := runReport[entity.FoodAvailabilityRow](t, env, "food_availability", entity.ReportFilters{})

	require.Len(t, rows, 1)
	a := rows[0]
	assert.Equal(t, 3, a.TotalItems)
	assert.Equal(t, 60.0, a.TotalQuantity)
	assert.Equal(t, 2, a.FreshItems)
	assert.Equal(t, 30.0, a.FreshQuantity)
	assert.Equal(t, 1, a.ExpiredItems)
	assert.Equal(t, 30.0, a.ExpiredQuantity)

	assert.Equal(t, 0, a.CriticalItems)
	assert.Equal(t, 1, a.UrgentItems)
	assert.Equal(t, 20.0, a.UrgentQuantity)
	assert.Equal(t, 1, a.NormalItems)

	assert.Equal(t, 4, a.Claims)
	assert.Equal(t, 20.0, a.DistributedQuantity)
	assert.Equal(t, ptr(33.33), a.DistributionRate)
	assert.Equal(t, 2, a.Cities)
}

func TestExpiringSoonWindow(t *testing.T) {
	env := newTestEnv(t, Options{})
	seed(t, env, twoCityDataset())

	rows, _ := runReport[entity.ExpiringFoodRow](t, env, "expiring_soon", entity.ReportFilters{})

	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].FoodId)
	assert.Equal(t, 2, rows[0].DaysUntilExpiry)
	assert.Equal(t, "Urgent", rows[0].Urgency)
	assert.Equal(t, ptr("A"), rows[0].ProviderName)
}

func TestClaimsPerFoodItemStatus(t *testing.T) {
	env := newTestEnv(t, Options{})
	seed(t, env, twoCityDataset())

	rows, _ := runReport[entity.FoodItemClaimsRow](t, env, "claims_per_food_item", entity.ReportFilters{})

	require.Len(t, rows, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{rows[0].FoodId, rows[1].FoodId, rows[2].FoodId})
	assert.Equal(t, "Distributed", rows[0].ItemStatus)
	assert.Equal(t, "Has Claims", rows[1].ItemStatus)
	assert.Equal(t, "Expired", rows[2].ItemStatus)
	assert.Equal(t, ptr(-1), rows[2].DaysUntilExpiry)
	assert.Nil(t, rows[2].SuccessRate)
}

func TestProviderReliabilityNullsLast(t *testing.T) {
	env := newTestEnv(t, Options{})
	seed(t, env, twoCityDataset())

	rows, _ := runReport[entity.ProviderReliabilityRow](t, env, "provider_reliability", entity.ReportFilters{})

	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].ProviderId)
	assert.Equal(t, ptr(50.0), rows[0].ReliabilityRate)
	assert.Equal(t, 2, rows[1].ProviderId)
	assert.Nil(t, rows[1].ReliabilityRate)
}

func TestTopSuccessfulProviders(t *testing.T) {
	env := newTestEnv(t, Options{})
	seed(t, env, twoCityDataset())

	rows, _ := runReport[entity.TopProviderRow](t, env, "top_successful_providers", entity.ReportFilters{})

	require.Len(t, rows, 1)
	p := rows[0]
	assert.Equal(t, 1, p.ProviderId)
	assert.Equal(t, 2, p.Listings)
	assert.Equal(t, 30.0, p.TotalQuantity)
	assert.Equal(t, 4, p.Claims)
	assert.Equal(t, 2, p.CompletedClaims)
	assert.Equal(t, 20.0, p.DistributedQuantity)
	assert.Equal(t, ptr(50.0), p.SuccessRate)
	assert.Equal(t, ptr(2.0), p.ClaimsPerListing)
	assert.Equal(t, ptr(25.3), p.AvgDaysBeforeExpiry)
	assert.Equal(t, 1, p.RecentSuccesses)
	assert.Equal(t, "Active Provider", p.Recognition)
}

func TestCitiesByFoodListings(t *testing.T) {
	env := newTestEnv(t, Options{})
	seed(t, env, twoCityDataset())

	rows, _ := runReport[entity.CityListingsRow](t, env, "cities_by_food_listings", entity.ReportFilters{})

	require.Len(t, rows, 2)
	assert.Equal(t, "CityX", rows[0].City)
	assert.Equal(t, 1, rows[0].ListingsRank)
	assert.Equal(t, 1, rows[0].QuantityRank)
	assert.Equal(t, ptr(50.0), rows[0].ClaimSuccessRate)
	assert.Equal(t, 1.49, rows[0].PerformanceScore)

	assert.Equal(t, "CityY", rows[1].City)
	assert.Equal(t, 2, rows[1].QuantityRank)
	assert.Equal(t, ptr(0.0), rows[1].FreshnessRate)
	assert.Nil(t, rows[1].ClaimSuccessRate)
}

func TestCommonFoodTypesKeepsOrphanListings(t *testing.T) {
	env := newTestEnv(t, Options{})
	ds := twoCityDataset()
	ds.FoodListings = append(ds.FoodListings, entity.FoodListing{
		Id: 4, FoodName: "Juice", Quantity: 5, ExpiryDate: day(30), ProviderId: 99, FoodType: "Beverage", MealType: "Beverages",
	})
	seed(t, env, ds)

	rows, _ := runReport[entity.FoodTypeRow](t, env, "common_food_types", entity.ReportFilters{})

	require.Len(t, rows, 3)
	assert.Equal(t, "Vegetarian", rows[0].FoodType)
	assert.Equal(t, 2, rows[0].Items)
	assert.Equal(t, ptr(50.0), rows[0].MarketShare)

	var orphan *entity.FoodTypeRow
	for i := range rows {
		if rows[i].FoodType == "Beverage" {
			orphan = &rows[i]
		}
	}
	require.NotNil(t, orphan)
	assert.Equal(t, 1, orphan.Items)
	assert.Equal(t, 0, orphan.Cities)
	assert.Nil(t, orphan.SupplyDemandRatio)
}

func TestMonthlyGrowthIsNullForFirstMonth(t *testing.T) {
	env := newTestEnv(t, Options{})
	seed(t, env, twoCityDataset())

	rows, _ := runReport[entity.MonthlyClaimTrendRow](t, env, "monthly_claim_trends", entity.ReportFilters{})

	require.Len(t, rows, 2)
	assert.Equal(t, "2026-04", rows[0].Month)
	assert.Nil(t, rows[0].PreviousMonthClaims)
	assert.Nil(t, rows[0].GrowthRate)

	assert.Equal(t, "2026-05", rows[1].Month)
	assert.Equal(t, ptr(2), rows[1].PreviousMonthClaims)
	assert.Equal(t, ptr(0.0), rows[1].GrowthRate)
}

func TestDailyExpiryTrendLabels(t *testing.T) {
	env := newTestEnv(t, Options{})
	seed(t, env, twoCityDataset())

	rows, _ := runReport[entity.DailyExpiryTrendRow](t, env, "daily_expiry_trends", entity.ReportFilters{})

	require.Len(t, rows, 3)
	assert.Equal(t, day(-1), rows[0].ExpiryDate)
	assert.Equal(t, "2026-W21", rows[0].YearWeek)
	assert.Equal(t, "2026-05", rows[0].YearMonth)
	assert.Equal(t, 1, rows[0].ItemsWasted)
	assert.Equal(t, ptr(0.0), rows[0].SaveRate)
}

func TestProviderContactsCityFilterIsBound(t *testing.T) {
	env := newTestEnv(t, Options{})
	seed(t, env, twoCityDataset())

	rows, report := runReport[entity.ProviderContactRow](t, env, "provider_contacts", entity.ReportFilters{City: " cityx "})
	require.Len(t, rows, 1)
	assert.Equal(t, "A", rows[0].Name)
	assert.Equal(t, "Active", rows[0].Status)
	assert.Contains(t, report.Columns, "providerId")

	rows, _ = runReport[entity.ProviderContactRow](t, env, "provider_contacts", entity.ReportFilters{City: "CityX' OR '1'='1"})
	assert.Empty(t, rows)

	rows, _ = runReport[entity.ProviderContactRow](t, env, "provider_contacts", entity.ReportFilters{})
	assert.Len(t, rows, 2)
}

func TestSystemAnalysis(t *testing.T) {
	env := newTestEnv(t, Options{})
	seed(t, env, twoCityDataset())

	rows, _ := runReport[entity.SystemAnalysisRow](t, env, "system_analysis", entity.ReportFilters{})

	require.Len(t, rows, 1)
	a := rows[0]
	assert.Equal(t, 2, a.TotalProviders)
	assert.Equal(t, 4, a.TotalClaims)
	assert.Equal(t, 2, a.SuccessfulDistributions)
	assert.Equal(t, ptr(50.0), a.SuccessRate)
	assert.Equal(t, "System needs significant optimization", a.SystemHealth)
	assert.Equal(t, ptr("Hotel"), a.TopProviderType)
	assert.Equal(t, ptr("CityX"), a.TopCity)
	assert.Equal(t, ptr("Vegetarian"), a.MostWastedFoodType)
	assert.Equal(t, ptr(50.0), a.OverallWastageRate)
	assert.Equal(t, 1, a.CitiesWithCompleteEcosystem)
	assert.Equal(t, ptr("Focus on Vegetarian wastage reduction"), a.PrimaryAction)
	assert.Equal(t, ptr("Expand operations in CityY for better coverage"), a.ExpansionRecommendation)
}

func TestEmptyStoreNeverDividesByZero(t *testing.T) {
	env := newTestEnv(t, Options{})

	for _, d := range env.services.Report.Catalog() {
		report, err := env.services.Report.RunReport(context.Background(), d.Name, entity.ReportFilters{})
		require.NoError(t, err, d.Name)
		assert.Empty(t, report.Message, d.Name)
		assert.NotEmpty(t, report.Columns, d.Name)
	}

	rows, _ := runReport[entity.FoodAvailabilityRow](t, env, "food_availability", entity.ReportFilters{})
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].AvgQuantity)
	assert.Nil(t, rows[0].DistributionRate)
}

func TestRunReportUnknownName(t *testing.T) {
	env := newTestEnv(t, Options{})

	_, err := env.services.Report.RunReport(context.Background(), "no_such_report", entity.ReportFilters{})
	assert.ErrorIs(t, err, ErrUnknownReport)
}

func TestRunReportIsIdempotent(t *testing.T) {
	env := newTestEnv(t, Options{})
	seed(t, env, twoCityDataset())

	first, err := env.services.Report.RunReport(context.Background(), "meal_type_claims", entity.ReportFilters{})
	require.NoError(t, err)
	second, err := env.services.Report.RunReport(context.Background(), "meal_type_claims", entity.ReportFilters{})
	require.NoError(t, err)

	assert.Equal(t, first.Rows, second.Rows)
}

func TestRunReportQueryFailureYieldsMessage(t *testing.T) {
	env := newTestEnv(t, Options{})
	require.NoError(t, env.db.Close())

	report, err := env.services.Report.RunReport(context.Background(), "demand_by_city", entity.ReportFilters{})

	require.NoError(t, err)
	assert.NotEmpty(t, report.Message)
	assert.Equal(t, 0, report.RowCount)
	assert.Equal(t, []entity.CityDemandRow{}, report.Rows)
}

func TestCreateInvalidatesCachedReports(t *testing.T) {
	env := newTestEnv(t, Options{})
	seed(t, env, twoCityDataset())

	rows, _ := runReport[entity.ProviderReliabilityRow](t, env, "provider_reliability", entity.ReportFilters{})
	require.Len(t, rows, 2)

	_, err := env.services.Provider.CreateProvider(context.Background(), &entity.CreateProviderInput{
		Name: "C", Type: "Bakery", City: "CityZ", Contact: "c@example.org",
	})
	require.NoError(t, err)

	rows, _ = runReport[entity.ProviderReliabilityRow](t, env, "provider_reliability", entity.ReportFilters{})
	assert.Len(t, rows, 3)
}

func TestCatalogListsEveryReportOnce(t *testing.T) {
	env := newTestEnv(t, Options{})

	catalog := env.services.Report.Catalog()
	seen := make(map[string]bool)
	for _, d := range catalog {
		assert.False(t, seen[d.Name], d.Name)
		seen[d.Name] = true
	}
	assert.Len(t, catalog, 25)
	assert.Equal(t, []string{"city"}, catalog[2].Filters)
	assert.True(t, seen["receiver_directory"])
	assert.True(t, seen["recent_claims"])
}

func TestDonationsPerProvider(t *testing.T) {
	env := newTestEnv(t, Options{})
	ds := twoCityDataset()
	ds.Providers = append(ds.Providers, entity.Provider{Id: 3, Name: "C", Type: "Bakery", City: "CityZ", Contact: "c@example.org"})
	seed(t, env, ds)

	rows, _ := runReport[entity.ProviderDonationRow](t, env, "donations_per_provider", entity.ReportFilters{})

	require.Len(t, rows, 2)

	a := rows[0]
	assert.Equal(t, 1, a.ProviderId)
	assert.Equal(t, 30.0, a.DonatedQuantity)
	assert.Equal(t, ptr(15.0), a.AvgQuantity)
	assert.Equal(t, 1, a.DistributedItems)
	assert.Equal(t, 20.0, a.DistributedQuantity)
	assert.Equal(t, ptr(66.67), a.DistributionRate)
	assert.Equal(t, ptr(0.0), a.WastageRate)
	assert.Equal(t, 2, a.FoodTypes)
	assert.Equal(t, 1, a.ReceiversServed)
	assert.Equal(t, ptr(6.0), a.AvgDaysToExpiry)
	assert.Equal(t, 16.0, a.ImpactScore)
	assert.Equal(t, "Active Donor", a.Recognition)

	b := rows[1]
	assert.Equal(t, 2, b.ProviderId)
	assert.Equal(t, 1, b.ExpiredItems)
	assert.Equal(t, 30.0, b.WastedQuantity)
	assert.Equal(t, ptr(100.0), b.WastageRate)
	assert.Equal(t, ptr(0.0), b.DistributionRate)
	assert.Equal(t, ptr(-1.0), b.AvgDaysToExpiry)
	assert.Equal(t, 1.0, b.ImpactScore)
	assert.Equal(t, "Inactive", b.Recognition)
}

func TestProviderTypeContributionsSkipsTypesWithoutListings(t *testing.T) {
	env := newTestEnv(t, Options{})
	ds := twoCityDataset()
	ds.Providers = append(ds.Providers, entity.Provider{Id: 3, Name: "C", Type: "Bakery", City: "CityZ", Contact: "c@example.org"})
	seed(t, env, ds)

	rows, _ := runReport[entity.ProviderTypeRow](t, env, "provider_type_contributions", entity.ReportFilters{})

	require.Len(t, rows, 2)

	assert.Equal(t, "Hotel", rows[0].ProviderType)
	assert.Equal(t, 1, rows[0].ContributionRank)
	assert.Equal(t, 1, rows[0].Listings)
	assert.Equal(t, 30.0, rows[0].TotalQuantity)
	assert.Equal(t, ptr(30.0), rows[0].AvgQuantity)
	assert.Zero(t, rows[0].Claims)
	assert.Nil(t, rows[0].SuccessRate)
	assert.Zero(t, rows[0].DistributedQuantity)

	assert.Equal(t, "Restaurant", rows[1].ProviderType)
	assert.Equal(t, 2, rows[1].ContributionRank)
	assert.Equal(t, 1, rows[1].Providers)
	assert.Equal(t, 2, rows[1].Listings)
	assert.Equal(t, ptr(15.0), rows[1].AvgQuantity)
	assert.Equal(t, 2, rows[1].FoodTypes)
	assert.Equal(t, 2, rows[1].MealTypes)
	assert.Equal(t, 4, rows[1].Claims)
	assert.Equal(t, 2, rows[1].CompletedClaims)
	assert.Equal(t, ptr(50.0), rows[1].SuccessRate)
	assert.Equal(t, 20.0, rows[1].DistributedQuantity)
	assert.Equal(t, ptr(30.0), rows[1].AvgPerProvider)
}

func TestTopClaimingReceivers(t *testing.T) {
	env := newTestEnv(t, Options{})
	ds := twoCityDataset()
	ds.Receivers = append(ds.Receivers, entity.Receiver{Id: 2, Name: "S", Type: "Shelter", City: "CityY", Contact: "s@example.org"})
	seed(t, env, ds)

	rows, _ := runReport[entity.TopReceiverRow](t, env, "top_claiming_receivers", entity.ReportFilters{})

	require.Len(t, rows, 1)
	r := rows[0]
	assert.Equal(t, 1, r.ReceiverId)
	assert.Equal(t, 4, r.Claims)
	assert.Equal(t, 2, r.CompletedClaims)
	assert.Equal(t, 1, r.PendingClaims)
	assert.Equal(t, 1, r.CancelledClaims)
	assert.Equal(t, ptr(50.0), r.SuccessRate)
	assert.Equal(t, 20.0, r.FoodReceived)
	assert.Equal(t, ptr(10.0), r.AvgPerSuccess)
	assert.Equal(t, 2, r.FoodTypes)
	assert.Equal(t, 3, r.RecentClaims)
	assert.Equal(t, "Active Receiver", r.Rating)
}

func TestReceiverAverageQuantity(t *testing.T) {
	env := newTestEnv(t, Options{})
	ds := twoCityDataset()
	ds.Receivers = append(ds.Receivers,
		entity.Receiver{Id: 2, Name: "P", Type: "Charity", City: "CityY", Contact: "p@example.org"},
		entity.Receiver{Id: 3, Name: "Q", Type: "Shelter", City: "CityY", Contact: "q@example.org"},
		entity.Receiver{Id: 4, Name: "Idle", Type: "NGO", City: "CityY", Contact: "idle@example.org"},
	)
	ds.FoodListings = append(ds.FoodListings, entity.FoodListing{
		Id: 4, FoodName: "Water", Quantity: 0, ExpiryDate: day(5), ProviderId: 2, FoodType: "Beverage", MealType: "Beverages",
	})
	ds.Claims = append(ds.Claims,
		entity.Claim{Id: 5, FoodId: 2, ReceiverId: 2, Status: "Pending", Timestamp: "2026-05-19 10:00:00"},
		entity.Claim{Id: 6, FoodId: 4, ReceiverId: 3, Status: "Completed", Timestamp: "2026-05-19 11:00:00"},
	)
	seed(t, env, ds)

	rows, _ := runReport[entity.ReceiverAverageRow](t, env, "receiver_avg_quantity", entity.ReportFilters{})

	require.Len(t, rows, 3)

	r := rows[0]
	assert.Equal(t, 1, r.ReceiverId)
	assert.Equal(t, 60.0, r.QuantityClaimed)
	assert.Equal(t, 20.0, r.FoodReceived)
	assert.Equal(t, ptr(10.0), r.AvgPerSuccess)
	assert.Equal(t, ptr(15.0), r.AvgPerClaim)
	assert.Equal(t, ptr(50.0), r.SuccessRate)
	assert.Equal(t, 1, r.Providers)
	assert.Equal(t, 3, r.RecentClaims)
	assert.Equal(t, 10.0, r.RecentReceived)
	assert.Equal(t, "Occasional", r.Category)

	// equal kg received: a known average sorts before a missing one
	assert.Equal(t, 3, rows[1].ReceiverId)
	assert.Equal(t, ptr(0.0), rows[1].AvgPerSuccess)
	assert.Equal(t, "No Success", rows[1].Category)
	assert.Equal(t, 2, rows[2].ReceiverId)
	assert.Nil(t, rows[2].AvgPerSuccess)
	assert.Equal(t, ptr(0.0), rows[2].SuccessRate)
}

func TestFoodTypeWastageNullsLast(t *testing.T) {
	env := newTestEnv(t, Options{})
	ds := twoCityDataset()
	ds.FoodListings = append(ds.FoodListings, entity.FoodListing{
		Id: 4, FoodName: "Milk", Quantity: 0, ExpiryDate: day(5), ProviderId: 2, FoodType: "Dairy", MealType: "Breakfast",
	})
	seed(t, env, ds)

	rows, _ := runReport[entity.FoodTypeWastageRow](t, env, "food_type_wastage", entity.ReportFilters{})

	require.Len(t, rows, 3)
	assert.Equal(t, "Vegetarian", rows[0].FoodType)
	assert.Equal(t, 40.0, rows[0].TotalQuantity)
	assert.Equal(t, 30.0, rows[0].WastedQuantity)
	assert.Equal(t, ptr(75.0), rows[0].WastageRate)
	assert.Equal(t, "Vegan", rows[1].FoodType)
	assert.Equal(t, ptr(0.0), rows[1].WastageRate)
	assert.Equal(t, "Dairy", rows[2].FoodType)
	assert.Nil(t, rows[2].WastageRate)
}

func TestFoodWastageTrends(t *testing.T) {
	env := newTestEnv(t, Options{})
	seed(t, env, twoCityDataset())

	rows, _ := runReport[entity.FoodWastageTrendRow](t, env, "food_wastage_trends", entity.ReportFilters{})

	require.Len(t, rows, 2)

	v := rows[0]
	assert.Equal(t, "Vegetarian", v.FoodType)
	assert.Equal(t, 2, v.Listings)
	assert.Equal(t, 40.0, v.TotalQuantity)
	assert.Equal(t, 1, v.WastedItems)
	assert.Equal(t, 30.0, v.WastedQuantity)
	assert.Equal(t, ptr(50.0), v.ItemWastageRate)
	assert.Equal(t, ptr(75.0), v.QuantityWastageRate)
	assert.Equal(t, 2, v.Claims)
	assert.Equal(t, 20.0, v.SavedQuantity)
	assert.Equal(t, ptr(50.0), v.SaveRate)
	assert.Equal(t, 2, v.Providers)
	assert.Equal(t, 2, v.Cities)
	assert.Zero(t, v.CriticalItems+v.UrgentItems+v.SoonItems)

	g := rows[1]
	assert.Equal(t, "Vegan", g.FoodType)
	assert.Equal(t, ptr(0.0), g.QuantityWastageRate)
	assert.Equal(t, 1, g.UrgentItems)
	assert.Equal(t, 2, g.Claims)
	assert.Zero(t, g.SavedQuantity)
	assert.Equal(t, ptr(0.0), g.SaveRate)
}

func TestFrequentProviders(t *testing.T) {
	env := newTestEnv(t, Options{})
	seed(t, env, twoCityDataset())

	rows, _ := runReport[entity.FrequentProviderRow](t, env, "frequent_providers", entity.ReportFilters{})

	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].ProviderId)
	assert.Equal(t, 2, rows[0].Listings)
	assert.Equal(t, 30.0, rows[0].TotalQuantity)
	assert.Equal(t, 2, rows[1].ProviderId)
	assert.Equal(t, 1, rows[1].Listings)
}

func TestDailyClaimTrends(t *testing.T) {
	env := newTestEnv(t, Options{})
	seed(t, env, twoCityDataset())

	rows, _ := runReport[entity.DailyClaimTrendRow](t, env, "daily_claim_trends", entity.ReportFilters{})

	require.Len(t, rows, 4)

	assert.Equal(t, "2026-04-10", rows[0].ClaimDate)
	assert.Equal(t, 1, rows[0].CompletedClaims)
	assert.Equal(t, 10.0, rows[0].QuantityClaimed)
	assert.Equal(t, 10.0, rows[0].QuantityDistributed)
	assert.Equal(t, ptr(100.0), rows[0].SuccessRate)
	assert.Equal(t, "Friday", rows[0].DayOfWeek)
	assert.Equal(t, "2026-04", rows[0].YearMonth)

	assert.Equal(t, "2026-04-20", rows[1].ClaimDate)
	assert.Equal(t, 1, rows[1].CancelledClaims)
	assert.Equal(t, 20.0, rows[1].QuantityClaimed)
	assert.Zero(t, rows[1].QuantityDistributed)
	assert.Equal(t, ptr(0.0), rows[1].SuccessRate)
	assert.Equal(t, "Monday", rows[1].DayOfWeek)

	assert.Equal(t, "2026-05-15", rows[2].ClaimDate)
	assert.Equal(t, "Friday", rows[2].DayOfWeek)

	assert.Equal(t, "2026-05-18", rows[3].ClaimDate)
	assert.Equal(t, 1, rows[3].PendingClaims)
	assert.Equal(t, "Monday", rows[3].DayOfWeek)
	assert.Equal(t, "2026-05", rows[3].YearMonth)
}

// thirtyProviderDataset gives each provider its own city, one listing and one
// completed claim by its own receiver.
func thirtyProviderDataset() *entity.Dataset {
	ds := &entity.Dataset{}
	for i := 1; i <= 30; i++ {
		city := fmt.Sprintf("City%02d", i)
		ds.Providers = append(ds.Providers, entity.Provider{Id: i, Name: fmt.Sprintf("P%02d", i), Type: "Restaurant", City: city, Contact: "p@example.org"})
		ds.Receivers = append(ds.Receivers, entity.Receiver{Id: i, Name: fmt.Sprintf("R%02d", i), Type: "NGO", City: city, Contact: "r@example.org"})
		ds.FoodListings = append(ds.FoodListings, entity.FoodListing{
			Id: i, FoodName: "Bread", Quantity: float64(i), ExpiryDate: day(5), ProviderId: i, FoodType: "Vegan", MealType: "Lunch", Location: city,
		})
		ds.Claims = append(ds.Claims, entity.Claim{Id: i, FoodId: i, ReceiverId: i, Status: "Completed", Timestamp: "2026-05-19 10:00:00"})
	}

	return ds
}

func TestReportRowLimits(t *testing.T) {
	env := newTestEnv(t, Options{})
	seed(t, env, thirtyProviderDataset())

	cases := []struct {
		name string
		want int
	}{
		{"cities_by_food_listings", 20},
		{"top_successful_providers", 25},
		{"top_claiming_receivers", 25},
		{"frequent_providers", 10},
		{"demand_by_city", 10},
		{"provider_reliability", 30},
		{"receiver_directory", 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report, err := env.services.Report.RunReport(context.Background(), tc.name, entity.ReportFilters{})
			require.NoError(t, err)
			assert.Equal(t, tc.want, report.RowCount)
		})
	}

	rows, _ := runReport[entity.FrequentProviderRow](t, env, "frequent_providers", entity.ReportFilters{})
	assert.Equal(t, 30, rows[0].ProviderId)
	assert.Equal(t, 21, rows[9].ProviderId)

	received, _ := runReport[entity.TopReceiverRow](t, env, "top_claiming_receivers", entity.ReportFilters{})
	assert.Equal(t, 30, received[0].ReceiverId)
	assert.Equal(t, 6, received[24].ReceiverId)
}

func TestReceiverDirectory(t *testing.T) {
	env := newTestEnv(t, Options{})
	ds := twoCityDataset()
	ds.Receivers = append(ds.Receivers,
		entity.Receiver{Id: 3, Name: "T", Type: "Charity", City: "cityy", Contact: "t@example.org"},
		entity.Receiver{Id: 2, Name: "S", Type: "Shelter", City: "CityY", Contact: "s@example.org"},
	)
	seed(t, env, ds)

	rows, _ := runReport[entity.ReceiverDirectoryRow](t, env, "receiver_directory", entity.ReportFilters{})

	require.Len(t, rows, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{rows[0].ReceiverId, rows[1].ReceiverId, rows[2].ReceiverId})
	assert.Equal(t, 4, rows[0].Claims)
	assert.Equal(t, 2, rows[0].CompletedClaims)
	assert.Zero(t, rows[1].Claims)

	rows, _ = runReport[entity.ReceiverDirectoryRow](t, env, "receiver_directory", entity.ReportFilters{City: " CITYY "})
	require.Len(t, rows, 2)
	assert.Equal(t, "S", rows[0].Name)
	assert.Equal(t, "T", rows[1].Name)

	rows, _ = runReport[entity.ReceiverDirectoryRow](t, env, "receiver_directory", entity.ReportFilters{City: "x' OR '1'='1"})
	assert.Empty(t, rows)
}

func TestRecentClaimsNewestFirst(t *testing.T) {
	env := newTestEnv(t, Options{})
	ds := twoCityDataset()
	ds.Claims = append(ds.Claims,
		entity.Claim{Id: 5, FoodId: 99, ReceiverId: 77, Status: "completed", Timestamp: "2026-05-18 14:30:00"},
		entity.Claim{Id: 6, FoodId: 1, ReceiverId: 1, Status: "Pending", Timestamp: "N/A"},
	)
	seed(t, env, ds)

	rows, _ := runReport[entity.ClaimListingRow](t, env, "recent_claims", entity.ReportFilters{})

	require.Len(t, rows, 6)
	ids := make([]int, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ClaimId)
	}
	assert.Equal(t, []int{3, 5, 2, 4, 1, 6}, ids)

	assert.Equal(t, ptr("Soup"), rows[0].FoodName)
	assert.Equal(t, ptr("Vegan"), rows[0].FoodType)
	assert.Equal(t, ptr(20.0), rows[0].Quantity)
	assert.Equal(t, ptr("A"), rows[0].ProviderName)
	assert.Equal(t, ptr("R"), rows[0].ReceiverName)
	assert.Equal(t, "Pending", rows[0].Status)

	orphan := rows[1]
	assert.Equal(t, 99, orphan.FoodId)
	assert.Nil(t, orphan.FoodName)
	assert.Nil(t, orphan.Quantity)
	assert.Nil(t, orphan.ProviderName)
	assert.Nil(t, orphan.ReceiverName)
	assert.Equal(t, "Completed", orphan.Status)

	assert.Equal(t, "Completed", rows[2].Status)
	assert.Equal(t, "N/A", rows[5].Timestamp)
}
