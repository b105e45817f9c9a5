package sqlitedb

import (
	"context"
	"database/sql"
	"food-wastage-api/internal/entity"
	"time"
)

// GetClaimStatuses groups claims by case-folded status. Status holds one of the
// spellings as stored; callers normalize it.
func (r *ReportRepo) GetClaimStatuses(ctx context.Context, asOf time.Time) ([]entity.ClaimStatusRow, error) {
	b := r.withFacts(asOf).
		Columns(
			"MIN(cf.raw_status)",
			"COUNT(*)",
			"COALESCE(SUM(cf.quantity), 0)",
			"COUNT(DISTINCT cf.provider_city)",
			"COUNT(DISTINCT cf.provider_id)",
			"COUNT(DISTINCT cf.receiver_id)",
			"COUNT(DISTINCT cf.food_type)",
			"COUNT(DISTINCT cf.meal_type)",
			"AVG(julianday(params.today) - julianday(cf.claim_date))",
			"SUM(CASE WHEN cf.claim_date >= params.recent_from THEN 1 ELSE 0 END)",
		).
		From("claim_facts cf").
		JoinClause("CROSS JOIN params").
		GroupBy("cf.status")

	return collect(ctx, r, b, func(rows *sql.Rows, row *entity.ClaimStatusRow) error {
		var avgDays sql.NullFloat64
		err := rows.Scan(&row.Status, &row.Claims, &row.TotalQuantity,
			&row.Cities, &row.Providers, &row.Receivers, &row.FoodTypes, &row.MealTypes,
			&avgDays, &row.RecentClaims)
		row.AvgDaysSinceClaim = floatPtr(avgDays)

		return err
	})
}

// GetMealTypeClaims starts from the meal types present in listings, so a meal
// type with no claims still shows up with zero counts.
func (r *ReportRepo) GetMealTypeClaims(ctx context.Context, asOf time.Time) ([]entity.MealTypeRow, error) {
	b := r.withFacts(asOf).
		Columns(
			"lm.meal_type",
			"COALESCE(cm.claims, 0)",
			"COALESCE(cm.completed, 0)",
			"COALESCE(cm.pending, 0)",
			"COALESCE(cm.cancelled, 0)",
			"COALESCE(cm.distributed, 0)",
			"lm.items",
			"lm.providers",
			"COALESCE(cm.receivers, 0)",
			"COALESCE(cm.cities, 0)",
			"lm.food_types",
			"cm.avg_days_before_expiry",
			"COALESCE(cm.recent, 0)",
		).
		From(`(SELECT meal_type,
				COUNT(*) AS items,
				COUNT(DISTINCT provider_id) AS providers,
				COUNT(DISTINCT food_type) AS food_types
			FROM food_listings GROUP BY meal_type) lm`).
		LeftJoin(`(SELECT cf.meal_type,
				COUNT(*) AS claims,
				SUM(CASE WHEN cf.status = 'completed' THEN 1 ELSE 0 END) AS completed,
				SUM(CASE WHEN cf.status = 'pending' THEN 1 ELSE 0 END) AS pending,
				SUM(CASE WHEN cf.status = 'cancelled' THEN 1 ELSE 0 END) AS cancelled,
				COALESCE(SUM(CASE WHEN cf.status = 'completed' THEN cf.quantity END), 0) AS distributed,
				COUNT(DISTINCT cf.receiver_id) AS receivers,
				COUNT(DISTINCT cf.provider_city) AS cities,
				AVG(julianday(cf.expiry_date) - julianday(cf.claim_date)) AS avg_days_before_expiry,
				SUM(CASE WHEN cf.claim_date >= params.recent_from THEN 1 ELSE 0 END) AS recent
			FROM claim_facts cf CROSS JOIN params
			WHERE cf.meal_type IS NOT NULL
			GROUP BY cf.meal_type) cm ON cm.meal_type = lm.meal_type`)

	return collect(ctx, r, b, func(rows *sql.Rows, row *entity.MealTypeRow) error {
		var avgDays sql.NullFloat64
		err := rows.Scan(&row.MealType, &row.Claims, &row.CompletedClaims, &row.PendingClaims, &row.CancelledClaims,
			&row.DistributedQuantity, &row.Items, &row.Providers, &row.Receivers, &row.Cities, &row.FoodTypes,
			&avgDays, &row.RecentClaims)
		row.AvgDaysBeforeExpiry = floatPtr(avgDays)

		return err
	})
}

// GetDailyClaimTrends skips claims whose timestamp is not a date.
func (r *ReportRepo) GetDailyClaimTrends(ctx context.Context, asOf time.Time) ([]entity.DailyClaimTrendRow, error) {
	b := r.withFacts(asOf).
		Columns(
			"cf.claim_date",
			"COUNT(*)",
			"SUM(CASE WHEN cf.status = 'completed' THEN 1 ELSE 0 END)",
			"SUM(CASE WHEN cf.status = 'pending' THEN 1 ELSE 0 END)",
			"SUM(CASE WHEN cf.status = 'cancelled' THEN 1 ELSE 0 END)",
			"COALESCE(SUM(cf.quantity), 0)",
			"COALESCE(SUM(CASE WHEN cf.status = 'completed' THEN cf.quantity END), 0)",
		).
		From("claim_facts cf").
		Where("cf.claim_date IS NOT NULL").
		GroupBy("cf.claim_date").
		OrderBy("cf.claim_date")

	return collect(ctx, r, b, func(rows *sql.Rows, row *entity.DailyClaimTrendRow) error {
		return rows.Scan(&row.ClaimDate, &row.Claims, &row.CompletedClaims, &row.PendingClaims, &row.CancelledClaims,
			&row.QuantityClaimed, &row.QuantityDistributed)
	})
}

func (r *ReportRepo) GetMonthlyClaimTrends(ctx context.Context, asOf time.Time) ([]entity.MonthlyClaimTrendRow, error) {
	b := r.withFacts(asOf).
		Columns(
			"strftime('%Y-%m', cf.claim_date) AS claim_month",
			"COUNT(*)",
			"SUM(CASE WHEN cf.status = 'completed' THEN 1 ELSE 0 END)",
			"COALESCE(SUM(cf.quantity), 0)",
			"COALESCE(SUM(CASE WHEN cf.status = 'completed' THEN cf.quantity END), 0)",
			"COUNT(DISTINCT cf.provider_id)",
			"COUNT(DISTINCT cf.receiver_id)",
			"COUNT(DISTINCT cf.provider_city)",
			"AVG(julianday(cf.expiry_date) - julianday(cf.claim_date))",
		).
		From("claim_facts cf").
		Where("cf.claim_date IS NOT NULL").
		GroupBy("claim_month").
		OrderBy("claim_month")

	return collect(ctx, r, b, func(rows *sql.Rows, row *entity.MonthlyClaimTrendRow) error {
		var avgDays sql.NullFloat64
		err := rows.Scan(&row.Month, &row.Claims, &row.CompletedClaims, &row.QuantityClaimed, &row.QuantityDistributed,
			&row.ActiveProviders, &row.ActiveReceivers, &row.Cities, &avgDays)
		row.AvgDaysBeforeExpiry = floatPtr(avgDays)

		return err
	})
}

// GetClaimListings returns every claim, newest first. Claims with an unreadable
// timestamp come last, and equal timestamps are ordered by claim id.
func (r *ReportRepo) GetClaimListings(ctx context.Context, asOf time.Time) ([]entity.ClaimListingRow, error) {
	b := r.withFacts(asOf).
		Columns(
			"c.claim_id", "c.food_id",
			"f.food_name", "f.food_type", "f.quantity",
			"p.name",
			"c.receiver_id", "rc.name",
			"c.status", "c.timestamp",
		).
		From("claims c").
		LeftJoin("listing_dir f ON f.food_id = c.food_id").
		LeftJoin("provider_dir p ON p.provider_id = f.provider_id").
		LeftJoin("receiver_dir rc ON rc.receiver_id = c.receiver_id").
		OrderBy("DATETIME(c.timestamp) IS NULL", "DATETIME(c.timestamp) DESC", "c.claim_id", "c.rowid")

	return collect(ctx, r, b, func(rows *sql.Rows, row *entity.ClaimListingRow) error {
		var foodName, foodType, providerName, receiverName sql.NullString
		var quantity sql.NullFloat64
		err := rows.Scan(&row.ClaimId, &row.FoodId, &foodName, &foodType, &quantity, &providerName,
			&row.ReceiverId, &receiverName, &row.Status, &row.Timestamp)
		row.FoodName = stringPtr(foodName)
		row.FoodType = stringPtr(foodType)
		row.Quantity = floatPtr(quantity)
		row.ProviderName = stringPtr(providerName)
		row.ReceiverName = stringPtr(receiverName)

		return err
	})
}
