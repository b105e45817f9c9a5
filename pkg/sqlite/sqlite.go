package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	Database   *sql.DB
	SqlBuilder squirrel.StatementBuilderType
}

// NewDB opens the database file at path. ":memory:" gives a private in-memory database,
// which stays alive because the pool is capped at a single connection.
func NewDB(path string) (*SQLite, error) {
	driver := "sqlite3"
	db, err := sql.Open(driver, path)
	if err != nil {
		return nil, fmt.Errorf("error while opening database with driver `%s` and path `%s`. %w", driver, path, err)
	}
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error while connecting to database `%s`. %w", path, err)
	}

	return &SQLite{
		Database:   db,
		SqlBuilder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

func (s *SQLite) Close() error {
	if s.Database != nil {
		return s.Database.Close()
	}

	return nil
}
