package sqlitedb

import (
	"context"
	"database/sql"
	"food-wastage-api/internal/entity"
	"time"
)

// GetProviderTypeContributions only returns provider types that have listings.
// Distributed quantity counts a listing once per completed claim on it.
func (r *ReportRepo) GetProviderTypeContributions(ctx context.Context, asOf time.Time) ([]entity.ProviderTypeRow, error) {
	b := r.withFacts(asOf).
		Columns(
			"p.type",
			"COUNT(DISTINCT p.provider_id)",
			"COUNT(*)",
			"COALESCE(SUM(f.quantity), 0)",
			"COUNT(DISTINCT f.food_type)",
			"COUNT(DISTINCT f.meal_type)",
			"COALESCE(SUM(cb.claims), 0)",
			"COALESCE(SUM(cb.completed), 0)",
			"COALESCE(SUM(f.quantity * cb.completed), 0)",
		).
		From("provider_dir p").
		Join("food_listings f ON f.provider_id = p.provider_id").
		LeftJoin(claimsByFood + " ON cb.food_id = f.food_id").
		GroupBy("p.type")

	return collect(ctx, r, b, func(rows *sql.Rows, row *entity.ProviderTypeRow) error {
		return rows.Scan(&row.ProviderType, &row.Providers, &row.Listings, &row.TotalQuantity,
			&row.FoodTypes, &row.MealTypes, &row.Claims, &row.CompletedClaims, &row.DistributedQuantity)
	})
}

// GetTopProviders returns providers with at least one completed claim.
func (r *ReportRepo) GetTopProviders(ctx context.Context, asOf time.Time) ([]entity.TopProviderRow, error) {
	b := r.withFacts(asOf).
		Columns(
			"p.provider_id", "p.name", "p.type", "p.city", "p.contact",
			"COALESCE(la.listings, 0)",
			"COALESCE(la.quantity, 0)",
			"COALESCE(la.food_types, 0)",
			"ca.claims", "ca.completed", "ca.pending", "ca.cancelled",
			"ca.distributed",
			"ca.receivers",
			"ca.avg_days_before_expiry",
			"ca.recent_completed",
		).
		From("providers p").
		Join(claimsByProvider + " ON ca.provider_id = p.provider_id").
		LeftJoin(listingsByProvider + " ON la.provider_id = p.provider_id").
		Where("ca.completed > 0").
		OrderBy("p.rowid")

	return collect(ctx, r, b, func(rows *sql.Rows, row *entity.TopProviderRow) error {
		var avgDays sql.NullFloat64
		err := rows.Scan(&row.ProviderId, &row.Name, &row.Type, &row.City, &row.Contact,
			&row.Listings, &row.TotalQuantity, &row.FoodTypes,
			&row.Claims, &row.CompletedClaims, &row.PendingClaims, &row.CancelledClaims,
			&row.DistributedQuantity, &row.UniqueReceivers, &avgDays, &row.RecentSuccesses)
		row.AvgDaysBeforeExpiry = floatPtr(avgDays)

		return err
	})
}

// GetProviderDonations returns providers with at least one listing.
func (r *ReportRepo) GetProviderDonations(ctx context.Context, asOf time.Time) ([]entity.ProviderDonationRow, error) {
	b := r.withFacts(asOf).
		Columns(
			"p.provider_id", "p.name", "p.type", "p.city",
			"la.listings",
			"la.quantity",
			"COALESCE(ca.distributed_items, 0)",
			"COALESCE(ca.distributed, 0)",
			"la.expired",
			"la.expired_quantity",
			"la.food_types",
			"COALESCE(ca.receivers_served, 0)",
			"la.avg_days_to_expiry",
		).
		From("providers p").
		Join(listingsByProvider + " ON la.provider_id = p.provider_id").
		LeftJoin(claimsByProvider + " ON ca.provider_id = p.provider_id").
		OrderBy("p.rowid")

	return collect(ctx, r, b, func(rows *sql.Rows, row *entity.ProviderDonationRow) error {
		var avgDays sql.NullFloat64
		err := rows.Scan(&row.ProviderId, &row.Name, &row.Type, &row.City,
			&row.Listings, &row.DonatedQuantity, &row.DistributedItems, &row.DistributedQuantity,
			&row.ExpiredItems, &row.WastedQuantity, &row.FoodTypes, &row.ReceiversServed, &avgDays)
		row.AvgDaysToExpiry = floatPtr(avgDays)

		return err
	})
}

func (r *ReportRepo) GetProviderReliability(ctx context.Context, asOf time.Time) ([]entity.ProviderReliabilityRow, error) {
	b := r.withFacts(asOf).
		Columns(
			"p.provider_id", "p.name", "p.type", "p.city",
			"COALESCE(ca.claims, 0)",
			"COALESCE(ca.completed, 0)",
		).
		From("providers p").
		LeftJoin(claimsByProvider + " ON ca.provider_id = p.provider_id").
		OrderBy("p.rowid")

	return collect(ctx, r, b, func(rows *sql.Rows, row *entity.ProviderReliabilityRow) error {
		return rows.Scan(&row.ProviderId, &row.Name, &row.Type, &row.City, &row.TotalClaims, &row.CompletedClaims)
	})
}

func (r *ReportRepo) GetFrequentProviders(ctx context.Context, asOf time.Time) ([]entity.FrequentProviderRow, error) {
	b := r.withFacts(asOf).
		Columns(
			"p.provider_id", "p.name", "p.type", "p.city", "p.contact",
			"la.listings",
			"la.quantity",
		).
		From("providers p").
		Join(listingsByProvider + " ON la.provider_id = p.provider_id").
		OrderBy("p.rowid")

	return collect(ctx, r, b, func(rows *sql.Rows, row *entity.FrequentProviderRow) error {
		return rows.Scan(&row.ProviderId, &row.Name, &row.Type, &row.City, &row.Contact,
			&row.Listings, &row.TotalQuantity)
	})
}

// GetTopReceivers returns receivers with at least one claim.
func (r *ReportRepo) GetTopReceivers(ctx context.Context, asOf time.Time) ([]entity.TopReceiverRow, error) {
	b := r.withFacts(asOf).
		Columns(
			"rc.receiver_id", "rc.name", "rc.type", "rc.city", "rc.contact",
			"cr.claims", "cr.completed", "cr.pending", "cr.cancelled",
			"cr.received",
			"cr.food_types",
			"cr.recent",
		).
		From("receivers rc").
		Join(claimsByReceiver + " ON cr.receiver_id = rc.receiver_id").
		OrderBy("rc.rowid")

	return collect(ctx, r, b, func(rows *sql.Rows, row *entity.TopReceiverRow) error {
		return rows.Scan(&row.ReceiverId, &row.Name, &row.Type, &row.City, &row.Contact,
			&row.Claims, &row.CompletedClaims, &row.PendingClaims, &row.CancelledClaims,
			&row.FoodReceived, &row.FoodTypes, &row.RecentClaims)
	})
}

// GetReceiverAverages returns receivers with at least one claim.
func (r *ReportRepo) GetReceiverAverages(ctx context.Context, asOf time.Time) ([]entity.ReceiverAverageRow, error) {
	b := r.withFacts(asOf).
		Columns(
			"rc.receiver_id", "rc.name", "rc.type", "rc.city",
			"cr.claims", "cr.completed",
			"cr.claimed_quantity",
			"cr.received",
			"cr.food_types",
			"cr.providers",
			"cr.recent",
			"cr.recent_received",
		).
		From("receivers rc").
		Join(claimsByReceiver + " ON cr.receiver_id = rc.receiver_id").
		OrderBy("rc.rowid")

	return collect(ctx, r, b, func(rows *sql.Rows, row *entity.ReceiverAverageRow) error {
		return rows.Scan(&row.ReceiverId, &row.Name, &row.Type, &row.City,
			&row.Claims, &row.CompletedClaims, &row.QuantityClaimed, &row.FoodReceived,
			&row.FoodTypes, &row.Providers, &row.RecentClaims, &row.RecentReceived)
	})
}

// GetReceiverDirectory lists every stored receiver row. A non-empty city is
// matched case-insensitively and always bound as a parameter.
func (r *ReportRepo) GetReceiverDirectory(ctx context.Context, asOf time.Time, city string) ([]entity.ReceiverDirectoryRow, error) {
	b := r.withFacts(asOf).
		Columns(
			"rc.receiver_id", "rc.name", "rc.type", "rc.city", "rc.contact",
			"COALESCE(cr.claims, 0)",
			"COALESCE(cr.completed, 0)",
		).
		From("receivers rc").
		LeftJoin(claimsByReceiver + " ON cr.receiver_id = rc.receiver_id").
		OrderBy("rc.rowid")

	if city != "" {
		b = b.Where("LOWER(TRIM(rc.city)) = LOWER(TRIM(?))", city)
	}

	return collect(ctx, r, b, func(rows *sql.Rows, row *entity.ReceiverDirectoryRow) error {
		return rows.Scan(&row.ReceiverId, &row.Name, &row.Type, &row.City, &row.Contact,
			&row.Claims, &row.CompletedClaims)
	})
}
