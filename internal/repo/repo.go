package repo

import (
	"context"
	"food-wastage-api/internal/entity"
	"food-wastage-api/internal/repo/sqlitedb"
	"food-wastage-api/pkg/sqlite"
	"time"
)

type Diagnostics interface {
	Ping() error
}

type Provider interface {
	CreateProvider(ctx context.Context, input *entity.CreateProviderInput) (int, error)
	GetProviderById(ctx context.Context, id int) (*entity.Provider, error)
}

type Receiver interface {
	CreateReceiver(ctx context.Context, input *entity.CreateReceiverInput) (int, error)
	GetReceiverById(ctx context.Context, id int) (*entity.Receiver, error)
}

type FoodListing interface {
	CreateFoodListing(ctx context.Context, input *entity.CreateFoodListingInput) (int, error)
	GetFoodListingById(ctx context.Context, id int) (*entity.FoodListing, error)
	GetListingExpiries(ctx context.Context) ([]entity.ListingExpiry, error)
}

type Claim interface {
	CreateClaim(ctx context.Context, input *entity.CreateClaimInput) (int, error)
	GetClaimById(ctx context.Context, id int) (*entity.Claim, error)
}

type Dataset interface {
	ReplaceAll(ctx context.Context, ds *entity.Dataset) error
	Counts(ctx context.Context) (*entity.DatasetCounts, error)
}

// Report methods return raw aggregates. Percentages, ranks, badges and ordering
// are derived by the caller. asOf fixes "today" for expiry and recency checks.
type Report interface {
	GetCityEcosystems(ctx context.Context, asOf time.Time) ([]entity.CityEcosystemRow, error)
	GetCityListings(ctx context.Context, asOf time.Time) ([]entity.CityListingsRow, error)
	GetProviderContacts(ctx context.Context, asOf time.Time, city string) ([]entity.ProviderContactRow, error)
	GetCityDemand(ctx context.Context, asOf time.Time) ([]entity.CityDemandRow, error)

	GetProviderTypeContributions(ctx context.Context, asOf time.Time) ([]entity.ProviderTypeRow, error)
	GetTopProviders(ctx context.Context, asOf time.Time) ([]entity.TopProviderRow, error)
	GetProviderDonations(ctx context.Context, asOf time.Time) ([]entity.ProviderDonationRow, error)
	GetProviderReliability(ctx context.Context, asOf time.Time) ([]entity.ProviderReliabilityRow, error)
	GetFrequentProviders(ctx context.Context, asOf time.Time) ([]entity.FrequentProviderRow, error)

	GetTopReceivers(ctx context.Context, asOf time.Time) ([]entity.TopReceiverRow, error)
	GetReceiverAverages(ctx context.Context, asOf time.Time) ([]entity.ReceiverAverageRow, error)
	GetReceiverDirectory(ctx context.Context, asOf time.Time, city string) ([]entity.ReceiverDirectoryRow, error)

	GetFoodAvailability(ctx context.Context, asOf time.Time) (*entity.FoodAvailabilityRow, error)
	GetFoodTypes(ctx context.Context, asOf time.Time) ([]entity.FoodTypeRow, error)
	GetFoodTypeWastage(ctx context.Context, asOf time.Time) ([]entity.FoodTypeWastageRow, error)
	GetFoodWastageTrends(ctx context.Context, asOf time.Time) ([]entity.FoodWastageTrendRow, error)
	GetFoodItemClaims(ctx context.Context, asOf time.Time) ([]entity.FoodItemClaimsRow, error)
	GetExpiringFood(ctx context.Context, asOf time.Time, days int) ([]entity.ExpiringFoodRow, error)

	GetClaimStatuses(ctx context.Context, asOf time.Time) ([]entity.ClaimStatusRow, error)
	GetMealTypeClaims(ctx context.Context, asOf time.Time) ([]entity.MealTypeRow, error)
	GetClaimListings(ctx context.Context, asOf time.Time) ([]entity.ClaimListingRow, error)

	GetDailyClaimTrends(ctx context.Context, asOf time.Time) ([]entity.DailyClaimTrendRow, error)
	GetDailyExpiryTrends(ctx context.Context, asOf time.Time) ([]entity.DailyExpiryTrendRow, error)
	GetMonthlyClaimTrends(ctx context.Context, asOf time.Time) ([]entity.MonthlyClaimTrendRow, error)
}

type Repositories struct {
	Diagnostics
	Provider
	Receiver
	FoodListing
	Claim
	Dataset
	Report
}

func NewRepositories(db *sqlite.SQLite) *Repositories {
	return &Repositories{
		Diagnostics: sqlitedb.NewDiagnosticsRepo(db),
		Provider:    sqlitedb.NewProviderRepo(db),
		Receiver:    sqlitedb.NewReceiverRepo(db),
		FoodListing: sqlitedb.NewFoodListingRepo(db),
		Claim:       sqlitedb.NewClaimRepo(db),
		Dataset:     sqlitedb.NewDatasetRepo(db),
		Report:      sqlitedb.NewReportRepo(db),
	}
}
