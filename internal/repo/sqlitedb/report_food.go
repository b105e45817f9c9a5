package sqlitedb

import (
	"context"
	"database/sql"
	"fmt"
	"food-wastage-api/internal/entity"
	"time"
)

func (r *ReportRepo) GetFoodAvailability(ctx context.Context, asOf time.Time) (*entity.FoodAvailabilityRow, error) {
	query, args, err := r.withFacts(asOf).
		Columns(
			"COUNT(*)",
			"COALESCE(SUM(f.quantity), 0)",
			"COALESCE(SUM(CASE WHEN DATE(f.expiry_date) >= params.today THEN 1 ELSE 0 END), 0)",
			"COALESCE(SUM(CASE WHEN DATE(f.expiry_date) >= params.today THEN f.quantity END), 0)",
			"COALESCE(SUM(CASE WHEN DATE(f.expiry_date) < params.today THEN 1 ELSE 0 END), 0)",
			"COALESCE(SUM(CASE WHEN DATE(f.expiry_date) < params.today THEN f.quantity END), 0)",
			"COUNT(DISTINCT f.provider_id)",
			"(SELECT COUNT(DISTINCT p.city) FROM provider_dir p WHERE p.provider_id IN (SELECT provider_id FROM food_listings))",
			"COUNT(DISTINCT f.food_type)",
			"COUNT(DISTINCT f.meal_type)",
			"(SELECT COUNT(*) FROM claims)",
			"(SELECT COALESCE(SUM(cf.quantity), 0) FROM claim_facts cf WHERE cf.status = 'completed')",
		).
		From("food_listings f").
		JoinClause("CROSS JOIN params").
		ToSql()
	if err != nil {
		return nil, err
	}

	var a entity.FoodAvailabilityRow
	err = r.Database.QueryRowContext(ctx, query, args...).Scan(
		&a.TotalItems, &a.TotalQuantity,
		&a.FreshItems, &a.FreshQuantity, &a.ExpiredItems, &a.ExpiredQuantity,
		&a.Providers, &a.Cities, &a.FoodTypes, &a.MealTypes,
		&a.Claims, &a.DistributedQuantity)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// GetFoodTypes keeps listings whose provider is unknown.
func (r *ReportRepo) GetFoodTypes(ctx context.Context, asOf time.Time) ([]entity.FoodTypeRow, error) {
	b := r.withFacts(asOf).
		Columns(
			"f.food_type",
			"COUNT(*)",
			"COALESCE(SUM(f.quantity), 0)",
			"SUM(CASE WHEN DATE(f.expiry_date) >= params.today THEN 1 ELSE 0 END)",
			"COALESCE(SUM(CASE WHEN DATE(f.expiry_date) >= params.today THEN f.quantity END), 0)",
			"COUNT(DISTINCT f.provider_id)",
			"COUNT(DISTINCT p.type)",
			"COUNT(DISTINCT p.city)",
			"COUNT(DISTINCT f.meal_type)",
			"COALESCE(SUM(cb.claims), 0)",
			"COALESCE(SUM(cb.completed), 0)",
		).
		From("food_listings f").
		LeftJoin("provider_dir p ON p.provider_id = f.provider_id").
		LeftJoin(claimsByFood + " ON cb.food_id = f.food_id").
		JoinClause("CROSS JOIN params").
		GroupBy("f.food_type")

	return collect(ctx, r, b, func(rows *sql.Rows, row *entity.FoodTypeRow) error {
		return rows.Scan(&row.FoodType, &row.Items, &row.TotalQuantity,
			&row.AvailableItems, &row.AvailableQuantity,
			&row.Providers, &row.ProviderTypes, &row.Cities, &row.MealTypes,
			&row.Claims, &row.CompletedClaims)
	})
}

// GetFoodTypeWastage treats everything past its expiry date as wasted.
func (r *ReportRepo) GetFoodTypeWastage(ctx context.Context, asOf time.Time) ([]entity.FoodTypeWastageRow, error) {
	b := r.withFacts(asOf).
		Columns(
			"f.food_type",
			"COALESCE(SUM(f.quantity), 0)",
			"COALESCE(SUM(CASE WHEN DATE(f.expiry_date) < params.today THEN f.quantity END), 0)",
		).
		From("food_listings f").
		JoinClause("CROSS JOIN params").
		GroupBy("f.food_type")

	return collect(ctx, r, b, func(rows *sql.Rows, row *entity.FoodTypeWastageRow) error {
		return rows.Scan(&row.FoodType, &row.TotalQuantity, &row.WastedQuantity)
	})
}

// GetFoodWastageTrends leaves the urgency buckets empty; they are filled from listing expiries.
func (r *ReportRepo) GetFoodWastageTrends(ctx context.Context, asOf time.Time) ([]entity.FoodWastageTrendRow, error) {
	b := r.withFacts(asOf).
		Columns(
			"f.food_type",
			"COUNT(*)",
			"COALESCE(SUM(f.quantity), 0)",
			"SUM(CASE WHEN DATE(f.expiry_date) < params.today THEN 1 ELSE 0 END)",
			"COALESCE(SUM(CASE WHEN DATE(f.expiry_date) < params.today THEN f.quantity END), 0)",
			"COALESCE(SUM(cb.claims), 0)",
			"COALESCE(SUM(f.quantity * cb.completed), 0)",
			"COUNT(DISTINCT f.provider_id)",
			"COUNT(DISTINCT p.city)",
		).
		From("food_listings f").
		LeftJoin("provider_dir p ON p.provider_id = f.provider_id").
		LeftJoin(claimsByFood + " ON cb.food_id = f.food_id").
		JoinClause("CROSS JOIN params").
		GroupBy("f.food_type")

	return collect(ctx, r, b, func(rows *sql.Rows, row *entity.FoodWastageTrendRow) error {
		return rows.Scan(&row.FoodType, &row.Listings, &row.TotalQuantity,
			&row.WastedItems, &row.WastedQuantity, &row.Claims, &row.SavedQuantity,
			&row.Providers, &row.Cities)
	})
}

func (r *ReportRepo) GetFoodItemClaims(ctx context.Context, asOf time.Time) ([]entity.FoodItemClaimsRow, error) {
	b := r.withFacts(asOf).
		Columns(
			"f.food_id", "f.food_name", "f.food_type", "f.meal_type", "f.quantity", "f.expiry_date", "f.provider_id",
			"p.name", "p.city",
			"COALESCE(cb.claims, 0)",
			"COALESCE(cb.completed, 0)",
			"COALESCE(cb.pending, 0)",
			"COALESCE(cb.cancelled, 0)",
			"cb.avg_days_before_expiry",
		).
		From("food_listings f").
		LeftJoin("provider_dir p ON p.provider_id = f.provider_id").
		LeftJoin(claimsByFood + " ON cb.food_id = f.food_id").
		OrderBy("f.rowid")

	return collect(ctx, r, b, func(rows *sql.Rows, row *entity.FoodItemClaimsRow) error {
		var providerName, providerCity sql.NullString
		var avgDays sql.NullFloat64
		err := rows.Scan(&row.FoodId, &row.FoodName, &row.FoodType, &row.MealType, &row.Quantity,
			&row.ExpiryDate, &row.ProviderId, &providerName, &providerCity,
			&row.Claims, &row.CompletedClaims, &row.PendingClaims, &row.CancelledClaims, &avgDays)
		row.ProviderName = stringPtr(providerName)
		row.ProviderCity = stringPtr(providerCity)
		row.AvgDaysBeforeExpiry = floatPtr(avgDays)

		return err
	})
}

// GetExpiringFood returns listings expiring between today and today+days, both inclusive.
func (r *ReportRepo) GetExpiringFood(ctx context.Context, asOf time.Time, days int) ([]entity.ExpiringFoodRow, error) {
	b := r.withFacts(asOf).
		Columns(
			"f.food_id", "f.food_name", "f.food_type", "f.meal_type", "f.quantity",
			"DATE(f.expiry_date)",
			"f.provider_id",
			"p.name", "p.city", "p.contact",
		).
		From("food_listings f").
		LeftJoin("provider_dir p ON p.provider_id = f.provider_id").
		JoinClause("CROSS JOIN params").
		Where("DATE(f.expiry_date) BETWEEN params.today AND DATE(params.today, ?)", fmt.Sprintf("+%d days", days)).
		OrderBy("f.rowid")

	return collect(ctx, r, b, func(rows *sql.Rows, row *entity.ExpiringFoodRow) error {
		var providerName, providerCity, providerContact sql.NullString
		err := rows.Scan(&row.FoodId, &row.FoodName, &row.FoodType, &row.MealType, &row.Quantity,
			&row.ExpiryDate, &row.ProviderId, &providerName, &providerCity, &providerContact)
		row.ProviderName = stringPtr(providerName)
		row.ProviderCity = stringPtr(providerCity)
		row.ProviderContact = stringPtr(providerContact)

		return err
	})
}

// GetDailyExpiryTrends buckets listings by expiry date. A listing is saved once it
// has a completed claim and wasted when it expired without one.
func (r *ReportRepo) GetDailyExpiryTrends(ctx context.Context, asOf time.Time) ([]entity.DailyExpiryTrendRow, error) {
	b := r.withFacts(asOf).
		Columns(
			"DATE(f.expiry_date) AS expiry_day",
			"COUNT(*)",
			"COALESCE(SUM(f.quantity), 0)",
			"COUNT(DISTINCT f.food_type)",
			"COUNT(DISTINCT f.provider_id)",
			"COALESCE(SUM(cb.claims), 0)",
			"SUM(CASE WHEN COALESCE(cb.completed, 0) > 0 THEN 1 ELSE 0 END)",
			"SUM(CASE WHEN COALESCE(cb.completed, 0) = 0 AND DATE(f.expiry_date) < params.today THEN 1 ELSE 0 END)",
			"COALESCE(SUM(CASE WHEN COALESCE(cb.completed, 0) > 0 THEN f.quantity END), 0)",
			"COALESCE(SUM(CASE WHEN COALESCE(cb.completed, 0) = 0 AND DATE(f.expiry_date) < params.today THEN f.quantity END), 0)",
		).
		From("food_listings f").
		LeftJoin(claimsByFood + " ON cb.food_id = f.food_id").
		JoinClause("CROSS JOIN params").
		Where("DATE(f.expiry_date) IS NOT NULL").
		GroupBy("expiry_day").
		OrderBy("expiry_day")

	return collect(ctx, r, b, func(rows *sql.Rows, row *entity.DailyExpiryTrendRow) error {
		return rows.Scan(&row.ExpiryDate, &row.Items, &row.Quantity, &row.FoodTypes, &row.Providers,
			&row.Claims, &row.ItemsSaved, &row.ItemsWasted, &row.QuantitySaved, &row.QuantityWasted)
	})
}
