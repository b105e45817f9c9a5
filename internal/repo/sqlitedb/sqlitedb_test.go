package sqlitedb

import (
	"context"
	"food-wastage-api/internal/entity"
	"food-wastage-api/internal/repo/repo_errors"
	"food-wastage-api/migrations"
	"food-wastage-api/pkg/sqlite"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlite.SQLite {
	t.Helper()

	db, err := sqlite.NewDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Up(db.Database))

	return db
}

func TestReplaceAllAndCounts(t *testing.T) {
	db := newTestDB(t)
	repo := NewDatasetRepo(db)
	ctx := context.Background()

	ds := &entity.Dataset{
		Providers: []entity.Provider{{Id: 1, Name: "A"}, {Id: 2, Name: "B"}},
		Receivers: []entity.Receiver{{Id: 1, Name: "R"}},
		Claims:    []entity.Claim{{Id: 1, FoodId: 9, ReceiverId: 1, Status: "Pending"}},
	}
	for i := 1; i <= 450; i++ {
		ds.FoodListings = append(ds.FoodListings, entity.FoodListing{Id: i, FoodName: "Item", Quantity: 1, ProviderId: 1})
	}
	require.NoError(t, repo.ReplaceAll(ctx, ds))

	counts, err := repo.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DatasetCounts{Providers: 2, Receivers: 1, FoodListings: 450, Claims: 1}, *counts)

	require.NoError(t, repo.ReplaceAll(ctx, &entity.Dataset{Providers: []entity.Provider{{Id: 5}}}))
	counts, err = repo.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DatasetCounts{Providers: 1}, *counts)
}

func TestCreateUsesCountPlusOne(t *testing.T) {
	db := newTestDB(t)
	providers := NewProviderRepo(db)
	ctx := context.Background()

	require.NoError(t, NewDatasetRepo(db).ReplaceAll(ctx, &entity.Dataset{
		Providers: []entity.Provider{{Id: 10, Name: "X"}, {Id: 20, Name: "Y"}},
	}))

	id, err := providers.CreateProvider(ctx, &entity.CreateProviderInput{Name: "Z", Type: "Hotel", Address: "N/A", City: "C", Contact: "1"})
	require.NoError(t, err)
	assert.Equal(t, 3, id)

	p, err := providers.GetProviderById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Z", p.Name)
	assert.Equal(t, "C", p.City)
}

func TestGetByIdNotFound(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := NewProviderRepo(db).GetProviderById(ctx, 1)
	assert.ErrorIs(t, err, repo_errors.ErrNotFound)
	_, err = NewReceiverRepo(db).GetReceiverById(ctx, 1)
	assert.ErrorIs(t, err, repo_errors.ErrNotFound)
	_, err = NewFoodListingRepo(db).GetFoodListingById(ctx, 1)
	assert.ErrorIs(t, err, repo_errors.ErrNotFound)
	_, err = NewClaimRepo(db).GetClaimById(ctx, 1)
	assert.ErrorIs(t, err, repo_errors.ErrNotFound)
}

func TestReportQueriesToleratePartialData(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	asOf := time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)

	require.NoError(t, NewDatasetRepo(db).ReplaceAll(ctx, &entity.Dataset{
		FoodListings: []entity.FoodListing{
			{Id: 1, FoodName: "Bread", Quantity: 2, ExpiryDate: "not a date", ProviderId: 7, FoodType: "Vegan", MealType: "Lunch"},
			{Id: 2, FoodName: "Milk", Quantity: 3, ExpiryDate: "2026-05-21", ProviderId: 7, FoodType: "Dairy", MealType: "Breakfast"},
		},
		Claims: []entity.Claim{
			{Id: 1, FoodId: 2, ReceiverId: 3, Status: "completed", Timestamp: "2026-05-19 10:00:00"},
			{Id: 2, FoodId: 404, ReceiverId: 3, Status: "Pending", Timestamp: "garbage"},
		},
	}))

	reports := NewReportRepo(db)

	trends, err := reports.GetDailyClaimTrends(ctx, asOf)
	require.NoError(t, err)
	require.Len(t, trends, 1)
	assert.Equal(t, "2026-05-19", trends[0].ClaimDate)

	expiring, err := reports.GetExpiringFood(ctx, asOf, 3)
	require.NoError(t, err)
	require.Len(t, expiring, 1)
	assert.Equal(t, 2, expiring[0].FoodId)
	assert.Nil(t, expiring[0].ProviderName)

	items, err := reports.GetFoodItemClaims(ctx, asOf)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	expiries, err := NewFoodListingRepo(db).GetListingExpiries(ctx)
	require.NoError(t, err)
	assert.Len(t, expiries, 2)

	claims, err := reports.GetClaimListings(ctx, asOf)
	require.NoError(t, err)
	require.Len(t, claims, 2)
	assert.Equal(t, 1, claims[0].ClaimId)
	assert.Equal(t, "Milk", *claims[0].FoodName)
	assert.Nil(t, claims[0].ProviderName)
	assert.Nil(t, claims[0].ReceiverName)
	assert.Equal(t, 2, claims[1].ClaimId)
	assert.Nil(t, claims[1].FoodName)

	directory, err := reports.GetReceiverDirectory(ctx, asOf, "")
	require.NoError(t, err)
	assert.Empty(t, directory)
}
