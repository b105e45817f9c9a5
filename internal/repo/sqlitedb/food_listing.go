package sqlitedb

import (
	"context"
	"database/sql"
	"errors"
	"food-wastage-api/internal/entity"
	"food-wastage-api/internal/repo/repo_errors"
	"food-wastage-api/pkg/sqlite"
)

type FoodListingRepo struct {
	*sqlite.SQLite
}

func NewFoodListingRepo(db *sqlite.SQLite) *FoodListingRepo {
	return &FoodListingRepo{db}
}

var foodListingColumns = []string{
	"food_id", "food_name", "quantity", "expiry_date", "provider_id", "food_type", "meal_type", "location",
}

func (r *FoodListingRepo) CreateFoodListing(ctx context.Context, input *entity.CreateFoodListingInput) (int, error) {
	return insertWithNextId(ctx, r.Database, r.SqlBuilder, "food_listings", foodListingColumns, func(id int) []interface{} {
		return []interface{}{
			id, input.FoodName, input.Quantity, input.ExpiryDate, input.ProviderId,
			input.FoodType, input.MealType, input.Location,
		}
	})
}

func (r *FoodListingRepo) GetFoodListingById(ctx context.Context, id int) (*entity.FoodListing, error) {
	getListingSql, args, _ := r.SqlBuilder.
		Select(foodListingColumns...).
		From("food_listings").
		Where("food_id = ?", id).
		OrderBy("rowid DESC").
		Limit(1).
		ToSql()

	var f entity.FoodListing
	err := r.Database.QueryRowContext(ctx, getListingSql, args...).
		Scan(&f.Id, &f.FoodName, &f.Quantity, &f.ExpiryDate, &f.ProviderId, &f.FoodType, &f.MealType, &f.Location)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &f, nil
}

func (r *FoodListingRepo) GetListingExpiries(ctx context.Context) ([]entity.ListingExpiry, error) {
	listSql, args, _ := r.SqlBuilder.
		Select("food_id", "food_type", "quantity", "expiry_date").
		From("food_listings").
		OrderBy("rowid").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, listSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := make([]entity.ListingExpiry, 0)
	for rows.Next() {
		var l entity.ListingExpiry
		if err = rows.Scan(&l.FoodId, &l.FoodType, &l.Quantity, &l.ExpiryDate); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return listings, nil
}
