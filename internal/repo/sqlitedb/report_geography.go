package sqlitedb

import (
	"context"
	"database/sql"
	"food-wastage-api/internal/common"
	"food-wastage-api/internal/entity"
	"time"
)

// GetCityEcosystems covers every city that has a provider or a receiver.
func (r *ReportRepo) GetCityEcosystems(ctx context.Context, asOf time.Time) ([]entity.CityEcosystemRow, error) {
	b := r.withFacts(asOf).
		Columns(
			"ci.city",
			"COALESCE(pa.providers, 0)",
			"COALESCE(ra.receivers, 0)",
			"COALESCE(pa.restaurants, 0)",
			"COALESCE(pa.grocery_stores, 0)",
			"COALESCE(pa.hotels, 0)",
			"COALESCE(pa.supermarkets, 0)",
			"COALESCE(ra.ngos, 0)",
			"COALESCE(ra.food_banks, 0)",
			"COALESCE(ra.shelters, 0)",
			"COALESCE(ra.charities, 0)",
		).
		From("(SELECT city FROM providers UNION SELECT city FROM receivers) ci").
		LeftJoin(`(SELECT city,
				COUNT(DISTINCT provider_id) AS providers,
				SUM(CASE WHEN type = ? THEN 1 ELSE 0 END) AS restaurants,
				SUM(CASE WHEN type = ? THEN 1 ELSE 0 END) AS grocery_stores,
				SUM(CASE WHEN type = ? THEN 1 ELSE 0 END) AS hotels,
				SUM(CASE WHEN type = ? THEN 1 ELSE 0 END) AS supermarkets
			FROM providers GROUP BY city) pa ON pa.city = ci.city`,
			common.Restaurant, common.GroceryStore, common.Hotel, common.Supermarket).
		LeftJoin(`(SELECT city,
				COUNT(DISTINCT receiver_id) AS receivers,
				SUM(CASE WHEN type = ? THEN 1 ELSE 0 END) AS ngos,
				SUM(CASE WHEN type = ? THEN 1 ELSE 0 END) AS food_banks,
				SUM(CASE WHEN type = ? THEN 1 ELSE 0 END) AS shelters,
				SUM(CASE WHEN type = ? THEN 1 ELSE 0 END) AS charities
			FROM receivers GROUP BY city) ra ON ra.city = ci.city`,
			common.NGO, common.FoodBank, common.Shelter, common.Charity)

	return collect(ctx, r, b, func(rows *sql.Rows, row *entity.CityEcosystemRow) error {
		return rows.Scan(&row.City, &row.Providers, &row.Receivers,
			&row.Restaurants, &row.GroceryStores, &row.Hotels, &row.Supermarkets,
			&row.NGOs, &row.FoodBanks, &row.Shelters, &row.Charities)
	})
}

// GetCityListings groups listings by the city of their provider. Listings whose
// provider is unknown have no city and are left out.
func (r *ReportRepo) GetCityListings(ctx context.Context, asOf time.Time) ([]entity.CityListingsRow, error) {
	b := r.withFacts(asOf).
		Columns(
			"p.city",
			"COUNT(*)",
			"COALESCE(SUM(f.quantity), 0)",
			"COUNT(DISTINCT f.provider_id)",
			"COUNT(DISTINCT f.food_type)",
			"COUNT(DISTINCT f.meal_type)",
			"SUM(CASE WHEN DATE(f.expiry_date) >= params.today THEN 1 ELSE 0 END)",
			"SUM(CASE WHEN DATE(f.expiry_date) < params.today THEN 1 ELSE 0 END)",
			"COALESCE(SUM(cb.claims), 0)",
			"COALESCE(SUM(cb.completed), 0)",
		).
		From("food_listings f").
		Join("provider_dir p ON p.provider_id = f.provider_id").
		LeftJoin(claimsByFood + " ON cb.food_id = f.food_id").
		JoinClause("CROSS JOIN params").
		GroupBy("p.city")

	return collect(ctx, r, b, func(rows *sql.Rows, row *entity.CityListingsRow) error {
		return rows.Scan(&row.City, &row.Listings, &row.TotalQuantity, &row.Providers,
			&row.FoodTypes, &row.MealTypes, &row.FreshItems, &row.ExpiredItems,
			&row.Claims, &row.CompletedClaims)
	})
}

// GetProviderContacts lists providers with their activity. A non-empty city is
// matched case-insensitively and always bound as a parameter.
func (r *ReportRepo) GetProviderContacts(ctx context.Context, asOf time.Time, city string) ([]entity.ProviderContactRow, error) {
	b := r.withFacts(asOf).
		Columns(
			"p.provider_id", "p.name", "p.type", "p.address", "p.city", "p.contact",
			"COALESCE(la.listings, 0)",
			"COALESCE(la.quantity, 0)",
			"COALESCE(la.food_types, 0)",
			"COALESCE(la.fresh, 0)",
			"COALESCE(la.expired, 0)",
			"COALESCE(ca.claims, 0)",
			"COALESCE(ca.completed, 0)",
		).
		From("providers p").
		LeftJoin(listingsByProvider + " ON la.provider_id = p.provider_id").
		LeftJoin(claimsByProvider + " ON ca.provider_id = p.provider_id").
		OrderBy("p.rowid")

	if city != "" {
		b = b.Where("LOWER(TRIM(p.city)) = LOWER(TRIM(?))", city)
	}

	return collect(ctx, r, b, func(rows *sql.Rows, row *entity.ProviderContactRow) error {
		return rows.Scan(&row.ProviderId, &row.Name, &row.Type, &row.Address, &row.City, &row.Contact,
			&row.Listings, &row.TotalQuantity, &row.FoodTypes, &row.FreshItems, &row.ExpiredItems,
			&row.Claims, &row.CompletedClaims)
	})
}

// GetCityDemand counts claims by the city of the provider behind the claimed listing.
func (r *ReportRepo) GetCityDemand(ctx context.Context, asOf time.Time) ([]entity.CityDemandRow, error) {
	b := r.withFacts(asOf).
		Columns(
			"cf.provider_city",
			"COUNT(*)",
			"SUM(CASE WHEN cf.status = 'completed' THEN 1 ELSE 0 END)",
			"COALESCE(SUM(CASE WHEN cf.status = 'completed' THEN cf.quantity END), 0)",
			"COUNT(DISTINCT cf.receiver_id)",
		).
		From("claim_facts cf").
		Where("cf.provider_city IS NOT NULL").
		GroupBy("cf.provider_city")

	return collect(ctx, r, b, func(rows *sql.Rows, row *entity.CityDemandRow) error {
		return rows.Scan(&row.City, &row.Claims, &row.CompletedClaims, &row.DistributedQuantity, &row.Receivers)
	})
}
