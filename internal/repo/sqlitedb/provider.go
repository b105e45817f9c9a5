package sqlitedb

import (
	"context"
	"database/sql"
	"errors"
	"food-wastage-api/internal/entity"
	"food-wastage-api/internal/repo/repo_errors"
	"food-wastage-api/pkg/sqlite"
)

type ProviderRepo struct {
	*sqlite.SQLite
}

func NewProviderRepo(db *sqlite.SQLite) *ProviderRepo {
	return &ProviderRepo{db}
}

var providerColumns = []string{"provider_id", "name", "type", "address", "city", "contact"}

func (r *ProviderRepo) CreateProvider(ctx context.Context, input *entity.CreateProviderInput) (int, error) {
	return insertWithNextId(ctx, r.Database, r.SqlBuilder, "providers", providerColumns, func(id int) []interface{} {
		return []interface{}{id, input.Name, input.Type, input.Address, input.City, input.Contact}
	})
}

// GetProviderById returns the most recently inserted provider with the id.
func (r *ProviderRepo) GetProviderById(ctx context.Context, id int) (*entity.Provider, error) {
	getProviderSql, args, _ := r.SqlBuilder.
		Select(providerColumns...).
		From("providers").
		Where("provider_id = ?", id).
		OrderBy("rowid DESC").
		Limit(1).
		ToSql()

	var p entity.Provider
	err := r.Database.QueryRowContext(ctx, getProviderSql, args...).
		Scan(&p.Id, &p.Name, &p.Type, &p.Address, &p.City, &p.Contact)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &p, nil
}
