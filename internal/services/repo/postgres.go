package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/leonf08/building-metrics.git/internal/database/migrations/postgres"
	"github.com/leonf08/building-metrics.git/internal/errorhandling"
	"github.com/leonf08/building-metrics.git/internal/models"
)

const pgSourceName = "postgres"

var _ Source = (*PGSource)(nil)

// PGSource is database implementation of the backing store.
type PGSource struct {
	db *sqlx.DB
}

type recordDB struct {
	Floor      string          `db:"floor"`
	Room       sql.NullString  `db:"room"`
	MetricName string          `db:"metric_name"`
	Value      sql.NullFloat64 `db:"value"`
	Timestamp  string          `db:"timestamp"`
	MetricType sql.NullString  `db:"metric_type"`
}

// NewPGSource creates a new database connection.
// A server that is not up yet is retried before giving up.
func NewPGSource(dsn string) (*PGSource, error) {
	var db *sqlx.DB
	err := errorhandling.Retry(context.Background(), func() error {
		var err error
		db, err = postgres.NewConnection(dsn)
		return markRetriable(err)
	})
	if err != nil {
		return nil, &LoadError{Source: pgSourceName, Err: err}
	}

	return &PGSource{
		db: db,
	}, nil
}

// Close closes the database connection.
func (st *PGSource) Close() error {
	return st.db.Close()
}

// Load reads all rows of the metrics table in insertion order.
func (st *PGSource) Load(ctx context.Context) ([]models.MetricRecord, error) {
	const queryStr = `
		SELECT floor, room, metric_name, value, timestamp, metric_type
		FROM building_metrics
		ORDER BY id`

	var rows []recordDB
	err := errorhandling.Retry(ctx, func() error {
		rows = rows[:0]
		return markRetriable(st.db.SelectContext(ctx, &rows, queryStr))
	})
	if err != nil {
		return nil, &LoadError{Source: pgSourceName, Err: err}
	}

	records := make([]models.MetricRecord, 0, len(rows))
	for i, row := range rows {
		if !row.Value.Valid {
			return nil, &LoadError{Source: pgSourceName, Err: fmt.Errorf("row %d: missing value", i+1)}
		}

		r := models.MetricRecord{
			Floor:      row.Floor,
			Room:       row.Room.String,
			MetricName: row.MetricName,
			Value:      row.Value.Float64,
			Timestamp:  row.Timestamp,
			MetricType: models.MetricType(row.MetricType.String),
		}

		if err = normalize(&r); err != nil {
			return nil, &LoadError{Source: pgSourceName, Err: fmt.Errorf("row %d: %w", i+1, err)}
		}

		records = append(records, r)
	}

	return records, nil
}

// isTransient reports whether err is a connection failure or an
// overloaded server, both worth another attempt.
func isTransient(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgerrcode.IsInsufficientResources(pgErr.Code) ||
			pgerrcode.IsConnectionException(pgErr.Code)
	}

	return false
}

func markRetriable(err error) error {
	if err != nil && isTransient(err) {
		return fmt.Errorf("%w: %w", errorhandling.ErrRetriable, err)
	}

	return err
}
