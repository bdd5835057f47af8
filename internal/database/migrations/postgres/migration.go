package postgres

import (
	"database/sql"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// NewConnection opens a database connection and applies pending migrations.
func NewConnection(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		return nil, err
	}

	m, err := Migrate(db.DB)
	if err != nil {
		db.Close()
		return nil, err
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate creates a migration instance over the embedded schema.
func Migrate(db *sql.DB) (*migrate.Migrate, error) {
	d, err := iofs.New(schemaFS, "schema")
	if err != nil {
		return nil, err
	}

	inst, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, err
	}

	m, err := migrate.NewWithInstance("iofs", d, "building_metrics", inst)
	if err != nil {
		return nil, err
	}

	return m, nil
}
