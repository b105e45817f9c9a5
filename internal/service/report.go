package service

import (
	"context"
	"fmt"
	"food-wastage-api/internal/entity"
	"food-wastage-api/internal/repo"
	"log"
	"reflect"
	"time"
)

const (
	dateLayout = "2006-01-02"

	groupGeography  = "Geography"
	groupProviders  = "Providers"
	groupReceivers  = "Receivers"
	groupFood       = "Food"
	groupClaims     = "Claims"
	groupComposite  = "Composite"
	groupTimeSeries = "Time series"

	filterCity = "city"
)

type reportRunner func(ctx context.Context, asOf time.Time, filters entity.ReportFilters) (any, error)

type reportDef struct {
	name    string
	title   string
	group   string
	filters []string
	columns []string
	empty   any
	run     reportRunner
}

// defineReport derives the column list and the empty result from the row type.
func defineReport[T any](name, title, group string, run func(ctx context.Context, asOf time.Time, filters entity.ReportFilters) ([]T, error), filters ...string) reportDef {
	return reportDef{
		name:    name,
		title:   title,
		group:   group,
		filters: filters,
		columns: columnsOf(reflect.TypeOf((*T)(nil)).Elem()),
		empty:   make([]T, 0),
		run: func(ctx context.Context, asOf time.Time, f entity.ReportFilters) (any, error) {
			return run(ctx, asOf, f)
		},
	}
}

type ReportService struct {
	reportRepo      repo.Report
	datasetRepo     repo.Dataset
	foodListingRepo repo.FoodListing
	cache           *reportCache
	now             func() time.Time

	defs   []reportDef
	byName map[string]*reportDef
}

func NewReportService(repos *repo.Repositories, cache *reportCache, opts Options) *ReportService {
	s := &ReportService{
		reportRepo:      repos.Report,
		datasetRepo:     repos.Dataset,
		foodListingRepo: repos.FoodListing,
		cache:           cache,
		now:             opts.clock(),
	}

	s.defs = []reportDef{
		defineReport("providers_receivers_per_city", "Providers and receivers per city", groupGeography, s.providersReceiversPerCity),
		defineReport("cities_by_food_listings", "Cities by food listings", groupGeography, s.citiesByFoodListings),
		defineReport("provider_contacts", "Provider contacts", groupGeography, s.providerContacts, filterCity),
		defineReport("provider_type_contributions", "Contributions by provider type", groupProviders, s.providerTypeContributions),
		defineReport("top_successful_providers", "Top successful providers", groupProviders, s.topSuccessfulProviders),
		defineReport("donations_per_provider", "Donations per provider", groupProviders, s.donationsPerProvider),
		defineReport("provider_reliability", "Provider reliability", groupProviders, s.providerReliability),
		defineReport("top_claiming_receivers", "Top claiming receivers", groupReceivers, s.topClaimingReceivers),
		defineReport("receiver_avg_quantity", "Average quantity per receiver", groupReceivers, s.receiverAverageQuantity),
		defineReport("receiver_directory", "Current receivers", groupReceivers, s.receiverDirectory, filterCity),
		defineReport("food_availability", "Food availability", groupFood, s.foodAvailability),
		defineReport("common_food_types", "Most common food types", groupFood, s.commonFoodTypes),
		defineReport("food_type_wastage", "Wastage by food type", groupFood, s.foodTypeWastage),
		defineReport("food_wastage_trends", "Food wastage trends", groupFood, s.foodWastageTrends),
		defineReport("claims_per_food_item", "Claims per food item", groupFood, s.claimsPerFoodItem),
		defineReport("expiring_soon", "Food expiring soon", groupFood, s.expiringSoon),
		defineReport("claim_status_breakdown", "Claim status breakdown", groupClaims, s.claimStatusBreakdown),
		defineReport("meal_type_claims", "Claims by meal type", groupClaims, s.mealTypeClaims),
		defineReport("frequent_providers", "Most frequent providers", groupClaims, s.frequentProviders),
		defineReport("demand_by_city", "Demand by city", groupClaims, s.demandByCity),
		defineReport("recent_claims", "Current claims", groupClaims, s.recentClaims),
		defineReport("system_analysis", "System analysis", groupComposite, s.systemAnalysis),
		defineReport("daily_claim_trends", "Daily claim trends", groupTimeSeries, s.dailyClaimTrends),
		defineReport("daily_expiry_trends", "Daily expiry trends", groupTimeSeries, s.dailyExpiryTrends),
		defineReport("monthly_claim_trends", "Monthly claim trends", groupTimeSeries, s.monthlyClaimTrends),
	}

	s.byName = make(map[string]*reportDef, len(s.defs))
	for i := range s.defs {
		s.byName[s.defs[i].name] = &s.defs[i]
	}

	return s
}

func (s *ReportService) Catalog() []entity.ReportDescriptor {
	descriptors := make([]entity.ReportDescriptor, 0, len(s.defs))
	for i := range s.defs {
		descriptors = append(descriptors, mapDescriptor(&s.defs[i]))
	}

	return descriptors
}

// RunReport computes the named report as of now. A failing query is logged and
// turned into an empty report carrying a message; only an unknown name is an error.
func (s *ReportService) RunReport(ctx context.Context, name string, filters entity.ReportFilters) (*entity.Report, error) {
	def, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReport, name)
	}

	now := s.now()
	key := cacheKey(name, filters, now)
	cached, generation, ok := s.cache.get(key)
	if ok {
		return cached, nil
	}

	rows, err := def.run(ctx, now, filters)
	if err != nil {
		log.Printf("report %s failed: %v", name, err)

		return newReport(def, now, def.empty, fmt.Sprintf("Could not compute %s: %v", def.title, err)), nil
	}

	report := newReport(def, now, rows, "")
	s.cache.put(key, generation, report)

	return report, nil
}
