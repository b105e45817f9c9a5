package sqlitedb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
)

// nextId allocates count+1 inside tx. Not safe under concurrent writers or
// after deletes; ids may then collide.
func nextId(ctx context.Context, builder squirrel.StatementBuilderType, tx *sql.Tx, table string) (int, error) {
	countSql, args, err := builder.
		Select("COUNT(*)").
		From(table).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err = tx.QueryRowContext(ctx, countSql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting %s: %w", table, err)
	}

	return count + 1, nil
}

func insertWithNextId(ctx context.Context, db *sql.DB, builder squirrel.StatementBuilderType,
	table string, columns []string, values func(id int) []interface{}) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	id, err := nextId(ctx, builder, tx, table)
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}

	insertSql, args, err := builder.
		Insert(table).
		Columns(columns...).
		Values(values(id)...).
		ToSql()
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}

	if _, err = tx.ExecContext(ctx, insertSql, args...); err != nil {
		_ = tx.Rollback()
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}

	return id, nil
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}

	return &s.String
}

func floatPtr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}

	return &f.Float64
}
