package sqlitedb

import (
	"context"
	"database/sql"
	"food-wastage-api/pkg/sqlite"
	"time"

	"github.com/Masterminds/squirrel"
)

const (
	dateLayout = "2006-01-02"
	recentDays = 30
)

// reportPrefix binds "today" and the recency cutoff once and exposes
// de-duplicated lookups plus one row per claim enriched with its listing.
// The *_dir views keep the latest row per id, since ids are not unique.
const reportPrefix = `WITH params AS (SELECT ? AS today, ? AS recent_from),
provider_dir AS (
	SELECT * FROM providers WHERE rowid IN (SELECT MAX(rowid) FROM providers GROUP BY provider_id)
),
listing_dir AS (
	SELECT * FROM food_listings WHERE rowid IN (SELECT MAX(rowid) FROM food_listings GROUP BY food_id)
),
receiver_dir AS (
	SELECT * FROM receivers WHERE rowid IN (SELECT MAX(rowid) FROM receivers GROUP BY receiver_id)
),
claim_facts AS (
	SELECT c.claim_id, c.food_id, c.receiver_id,
		TRIM(c.status) AS raw_status,
		LOWER(TRIM(c.status)) AS status,
		DATE(c.timestamp) AS claim_date,
		f.provider_id, f.quantity, f.food_type, f.meal_type,
		DATE(f.expiry_date) AS expiry_date,
		p.city AS provider_city
	FROM claims c
	LEFT JOIN listing_dir f ON f.food_id = c.food_id
	LEFT JOIN provider_dir p ON p.provider_id = f.provider_id
)`

// per-listing claim counts
const claimsByFood = `(SELECT cf.food_id,
		COUNT(*) AS claims,
		SUM(CASE WHEN cf.status = 'completed' THEN 1 ELSE 0 END) AS completed,
		SUM(CASE WHEN cf.status = 'pending' THEN 1 ELSE 0 END) AS pending,
		SUM(CASE WHEN cf.status = 'cancelled' THEN 1 ELSE 0 END) AS cancelled,
		AVG(julianday(cf.expiry_date) - julianday(cf.claim_date)) AS avg_days_before_expiry
	FROM claim_facts cf
	GROUP BY cf.food_id) cb`

const listingsByProvider = `(SELECT f.provider_id,
		COUNT(*) AS listings,
		COALESCE(SUM(f.quantity), 0) AS quantity,
		COUNT(DISTINCT f.food_type) AS food_types,
		SUM(CASE WHEN DATE(f.expiry_date) >= params.today THEN 1 ELSE 0 END) AS fresh,
		SUM(CASE WHEN DATE(f.expiry_date) < params.today THEN 1 ELSE 0 END) AS expired,
		COALESCE(SUM(CASE WHEN DATE(f.expiry_date) < params.today THEN f.quantity END), 0) AS expired_quantity,
		AVG(julianday(DATE(f.expiry_date)) - julianday(params.today)) AS avg_days_to_expiry
	FROM food_listings f CROSS JOIN params
	GROUP BY f.provider_id) la`

const claimsByProvider = `(SELECT cf.provider_id,
		COUNT(*) AS claims,
		SUM(CASE WHEN cf.status = 'completed' THEN 1 ELSE 0 END) AS completed,
		SUM(CASE WHEN cf.status = 'pending' THEN 1 ELSE 0 END) AS pending,
		SUM(CASE WHEN cf.status = 'cancelled' THEN 1 ELSE 0 END) AS cancelled,
		COALESCE(SUM(CASE WHEN cf.status = 'completed' THEN cf.quantity END), 0) AS distributed,
		COUNT(DISTINCT CASE WHEN cf.status = 'completed' THEN cf.food_id END) AS distributed_items,
		COUNT(DISTINCT cf.receiver_id) AS receivers,
		COUNT(DISTINCT CASE WHEN cf.status = 'completed' THEN cf.receiver_id END) AS receivers_served,
		AVG(julianday(cf.expiry_date) - julianday(cf.claim_date)) AS avg_days_before_expiry,
		SUM(CASE WHEN cf.status = 'completed' AND cf.claim_date >= params.recent_from THEN 1 ELSE 0 END) AS recent_completed
	FROM claim_facts cf CROSS JOIN params
	WHERE cf.provider_id IS NOT NULL
	GROUP BY cf.provider_id) ca`

const claimsByReceiver = `(SELECT cf.receiver_id,
		COUNT(*) AS claims,
		SUM(CASE WHEN cf.status = 'completed' THEN 1 ELSE 0 END) AS completed,
		SUM(CASE WHEN cf.status = 'pending' THEN 1 ELSE 0 END) AS pending,
		SUM(CASE WHEN cf.status = 'cancelled' THEN 1 ELSE 0 END) AS cancelled,
		COALESCE(SUM(cf.quantity), 0) AS claimed_quantity,
		COALESCE(SUM(CASE WHEN cf.status = 'completed' THEN cf.quantity END), 0) AS received,
		COUNT(DISTINCT cf.food_type) AS food_types,
		COUNT(DISTINCT cf.provider_id) AS providers,
		SUM(CASE WHEN cf.claim_date >= params.recent_from THEN 1 ELSE 0 END) AS recent,
		COALESCE(SUM(CASE WHEN cf.status = 'completed' AND cf.claim_date >= params.recent_from THEN cf.quantity END), 0) AS recent_received
	FROM claim_facts cf CROSS JOIN params
	GROUP BY cf.receiver_id) cr`

type ReportRepo struct {
	*sqlite.SQLite
}

func NewReportRepo(db *sqlite.SQLite) *ReportRepo {
	return &ReportRepo{db}
}

func (r *ReportRepo) withFacts(asOf time.Time) squirrel.SelectBuilder {
	today := asOf.Format(dateLayout)
	recentFrom := asOf.AddDate(0, 0, -recentDays).Format(dateLayout)

	return r.SqlBuilder.Select().Prefix(reportPrefix, today, recentFrom)
}

func collect[T any](ctx context.Context, r *ReportRepo, b squirrel.SelectBuilder, scan func(rows *sql.Rows, row *T) error) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.Database.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		var row T
		if err = scan(rows, &row); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
