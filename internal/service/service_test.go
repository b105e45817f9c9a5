package service

import (
	"context"
	"food-wastage-api/internal/entity"
	"food-wastage-api/internal/repo"
	"food-wastage-api/migrations"
	"food-wastage-api/pkg/sqlite"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	db       *sqlite.SQLite
	repos    *repo.Repositories
	services *Services
}

func newTestEnv(t *testing.T, opts Options) *testEnv {
	t.Helper()

	db, err := sqlite.NewDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Up(db.Database))

	if opts.Now == nil {
		opts.Now = func() time.Time { return fixedNow }
	}
	repos := repo.NewRepositories(db)

	return &testEnv{db: db, repos: repos, services: NewServices(repos, opts)}
}

func day(offset int) string {
	return fixedNow.AddDate(0, 0, offset).Format(dateLayout)
}

// twoCityDataset has provider A in CityX with two listings, provider B in CityY
// with one, a single receiver in CityX and four claims on A's listings.
func twoCityDataset() *entity.Dataset {
	return &entity.Dataset{
		Providers: []entity.Provider{
			{Id: 1, Name: "A", Type: "Restaurant", Address: "1 Main St", City: "CityX", Contact: "a@example.org"},
			{Id: 2, Name: "B", Type: "Hotel", Address: "2 Side St", City: "CityY", Contact: "b@example.org"},
		},
		Receivers: []entity.Receiver{
			{Id: 1, Name: "R", Type: "NGO", City: "CityX", Contact: "r@example.org"},
		},
		FoodListings: []entity.FoodListing{
			{Id: 1, FoodName: "Bread", Quantity: 10, ExpiryDate: day(10), ProviderId: 1, FoodType: "Vegetarian", MealType: "Breakfast", Location: "CityX"},
			{Id: 2, FoodName: "Soup", Quantity: 20, ExpiryDate: day(2), ProviderId: 1, FoodType: "Vegan", MealType: "Lunch", Location: "CityX"},
			{Id: 3, FoodName: "Rice", Quantity: 30, ExpiryDate: day(-1), ProviderId: 2, FoodType: "Vegetarian", MealType: "Dinner", Location: "CityY"},
		},
		Claims: []entity.Claim{
			{Id: 1, FoodId: 1, ReceiverId: 1, Status: "Completed", Timestamp: "2026-04-10 10:00:00"},
			{Id: 2, FoodId: 1, ReceiverId: 1, Status: "COMPLETED", Timestamp: "2026-05-15 09:00:00"},
			{Id: 3, FoodId: 2, ReceiverId: 1, Status: "pending", Timestamp: "2026-05-18 14:30:00"},
			{Id: 4, FoodId: 2, ReceiverId: 1, Status: "Cancelled", Timestamp: "2026-04-20 08:15:00"},
		},
	}
}

func seed(t *testing.T, env *testEnv, ds *entity.Dataset) {
	t.Helper()
	require.NoError(t, env.repos.Dataset.ReplaceAll(context.Background(), ds))
}

func runReport[T any](t *testing.T, env *testEnv, name string, filters entity.ReportFilters) ([]T, *entity.Report) {
	t.Helper()

	report, err := env.services.Report.RunReport(context.Background(), name, filters)
	require.NoError(t, err)
	require.Empty(t, report.Message)

	rows, ok := report.Rows.([]T)
	require.True(t, ok, "unexpected row type %T", report.Rows)

	return rows, report
}
