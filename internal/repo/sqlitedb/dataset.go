package sqlitedb

import (
	"context"
	"database/sql"
	"food-wastage-api/internal/entity"
	"food-wastage-api/pkg/sqlite"

	"github.com/Masterminds/squirrel"
)

const insertChunkSize = 200

type DatasetRepo struct {
	*sqlite.SQLite
}

func NewDatasetRepo(db *sqlite.SQLite) *DatasetRepo {
	return &DatasetRepo{db}
}

// ReplaceAll swaps the contents of all four tables for ds in one transaction.
func (r *DatasetRepo) ReplaceAll(ctx context.Context, ds *entity.Dataset) error {
	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for _, table := range []string{"claims", "food_listings", "receivers", "providers"} {
		deleteSql, args, _ := r.SqlBuilder.Delete(table).ToSql()
		if _, err = tx.ExecContext(ctx, deleteSql, args...); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	providers := make([][]interface{}, 0, len(ds.Providers))
	for _, p := range ds.Providers {
		providers = append(providers, []interface{}{p.Id, p.Name, p.Type, p.Address, p.City, p.Contact})
	}
	receivers := make([][]interface{}, 0, len(ds.Receivers))
	for _, rc := range ds.Receivers {
		receivers = append(receivers, []interface{}{rc.Id, rc.Name, rc.Type, rc.City, rc.Contact})
	}
	listings := make([][]interface{}, 0, len(ds.FoodListings))
	for _, f := range ds.FoodListings {
		listings = append(listings, []interface{}{
			f.Id, f.FoodName, f.Quantity, f.ExpiryDate, f.ProviderId, f.FoodType, f.MealType, f.Location,
		})
	}
	claims := make([][]interface{}, 0, len(ds.Claims))
	for _, c := range ds.Claims {
		claims = append(claims, []interface{}{c.Id, c.FoodId, c.ReceiverId, c.Status, c.Timestamp})
	}

	batches := []struct {
		table   string
		columns []string
		rows    [][]interface{}
	}{
		{"providers", providerColumns, providers},
		{"receivers", receiverColumns, receivers},
		{"food_listings", foodListingColumns, listings},
		{"claims", claimColumns, claims},
	}
	for _, b := range batches {
		if err = r.insertRows(ctx, tx, b.table, b.columns, b.rows); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (r *DatasetRepo) insertRows(ctx context.Context, tx *sql.Tx, table string, columns []string, rows [][]interface{}) error {
	for start := 0; start < len(rows); start += insertChunkSize {
		end := start + insertChunkSize
		if end > len(rows) {
			end = len(rows)
		}

		insert := r.SqlBuilder.Insert(table).Columns(columns...)
		for _, row := range rows[start:end] {
			insert = insert.Values(row...)
		}

		insertSql, args, err := insert.ToSql()
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, insertSql, args...); err != nil {
			return err
		}
	}

	return nil
}

func (r *DatasetRepo) Counts(ctx context.Context) (*entity.DatasetCounts, error) {
	countsSql, args, _ := r.SqlBuilder.
		Select().
		Column(squirrel.Alias(r.SqlBuilder.Select("COUNT(*)").From("providers"), "providers")).
		Column(squirrel.Alias(r.SqlBuilder.Select("COUNT(*)").From("receivers"), "receivers")).
		Column(squirrel.Alias(r.SqlBuilder.Select("COUNT(*)").From("food_listings"), "food_listings")).
		Column(squirrel.Alias(r.SqlBuilder.Select("COUNT(*)").From("claims"), "claims")).
		ToSql()

	var c entity.DatasetCounts
	err := r.Database.QueryRowContext(ctx, countsSql, args...).
		Scan(&c.Providers, &c.Receivers, &c.FoodListings, &c.Claims)
	if err != nil {
		return nil, err
	}

	return &c, nil
}
