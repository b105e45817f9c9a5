package sqlitedb

import (
	"context"
	"database/sql"
	"errors"
	"food-wastage-api/internal/entity"
	"food-wastage-api/internal/repo/repo_errors"
	"food-wastage-api/pkg/sqlite"
)

type ReceiverRepo struct {
	*sqlite.SQLite
}

func NewReceiverRepo(db *sqlite.SQLite) *ReceiverRepo {
	return &ReceiverRepo{db}
}

var receiverColumns = []string{"receiver_id", "name", "type", "city", "contact"}

func (r *ReceiverRepo) CreateReceiver(ctx context.Context, input *entity.CreateReceiverInput) (int, error) {
	return insertWithNextId(ctx, r.Database, r.SqlBuilder, "receivers", receiverColumns, func(id int) []interface{} {
		return []interface{}{id, input.Name, input.Type, input.City, input.Contact}
	})
}

func (r *ReceiverRepo) GetReceiverById(ctx context.Context, id int) (*entity.Receiver, error) {
	getReceiverSql, args, _ := r.SqlBuilder.
		Select(receiverColumns...).
		From("receivers").
		Where("receiver_id = ?", id).
		OrderBy("rowid DESC").
		Limit(1).
		ToSql()

	var rc entity.Receiver
	err := r.Database.QueryRowContext(ctx, getReceiverSql, args...).
		Scan(&rc.Id, &rc.Name, &rc.Type, &rc.City, &rc.Contact)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &rc, nil
}
