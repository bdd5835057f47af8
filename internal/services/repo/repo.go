package repo

import (
	"context"
	"fmt"

	"github.com/leonf08/building-metrics.git/internal/models"
)

// Source is a backing store the dataset is loaded from.
//
//go:generate mockery --name Source --output ../mocks --filename source_mock.go
type Source interface {
	Load(context.Context) ([]models.MetricRecord, error)
}

// LoadError reports a backing store that is unreadable or malformed.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Dataset is an immutable in-memory snapshot of metric records.
// It is safe for concurrent use since nothing mutates it after Load.
type Dataset struct {
	records []models.MetricRecord
	floors  []string
}

// NewDataset creates a snapshot from a copy of records.
func NewDataset(records []models.MetricRecord) *Dataset {
	rs := make([]models.MetricRecord, len(records))
	copy(rs, records)

	seen := make(map[string]struct{})
	floors := make([]string, 0)
	for _, r := range rs {
		if _, ok := seen[r.Floor]; ok {
			continue
		}
		seen[r.Floor] = struct{}{}
		floors = append(floors, r.Floor)
	}

	return &Dataset{
		records: rs,
		floors:  floors,
	}
}

// Load reads all records from the source once and wraps them into a snapshot.
func Load(ctx context.Context, src Source) (*Dataset, error) {
	records, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}

	return NewDataset(records), nil
}

// All returns the records in load order. The result must not be modified.
func (d *Dataset) All() []models.MetricRecord {
	return d.records[:len(d.records):len(d.records)]
}

// Floors returns distinct floor identifiers in the order they were first seen.
func (d *Dataset) Floors() []string {
	floors := make([]string, len(d.floors))
	copy(floors, d.floors)

	return floors
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}
