package sqlitedb

import (
	"food-wastage-api/pkg/sqlite"
)

type DiagnosticsRepo struct {
	*sqlite.SQLite
}

func NewDiagnosticsRepo(db *sqlite.SQLite) *DiagnosticsRepo {
	return &DiagnosticsRepo{db}
}

func (r *DiagnosticsRepo) Ping() error {
	if err := r.Database.Ping(); err != nil {
		return err
	}

	return nil
}
