package sqlitedb

import (
	"context"
	"database/sql"
	"errors"
	"food-wastage-api/internal/entity"
	"food-wastage-api/internal/repo/repo_errors"
	"food-wastage-api/pkg/sqlite"
)

type ClaimRepo struct {
	*sqlite.SQLite
}

func NewClaimRepo(db *sqlite.SQLite) *ClaimRepo {
	return &ClaimRepo{db}
}

var claimColumns = []string{"claim_id", "food_id", "receiver_id", "status", "timestamp"}

func (r *ClaimRepo) CreateClaim(ctx context.Context, input *entity.CreateClaimInput) (int, error) {
	return insertWithNextId(ctx, r.Database, r.SqlBuilder, "claims", claimColumns, func(id int) []interface{} {
		return []interface{}{id, input.FoodId, input.ReceiverId, input.Status, input.Timestamp}
	})
}

func (r *ClaimRepo) GetClaimById(ctx context.Context, id int) (*entity.Claim, error) {
	getClaimSql, args, _ := r.SqlBuilder.
		Select(claimColumns...).
		From("claims").
		Where("claim_id = ?", id).
		OrderBy("rowid DESC").
		Limit(1).
		ToSql()

	var c entity.Claim
	err := r.Database.QueryRowContext(ctx, getClaimSql, args...).
		Scan(&c.Id, &c.FoodId, &c.ReceiverId, &c.Status, &c.Timestamp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &c, nil
}
