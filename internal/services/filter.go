package services

import (
	"github.com/leonf08/building-metrics.git/internal/models"
)

// Filter returns the records matching every predicate set in f.
// Relative order of the records is preserved. The result is never nil.
func Filter(records []models.MetricRecord, f models.MetricFilter) []models.MetricRecord {
	res := make([]models.MetricRecord, 0)
	for _, r := range records {
		if match(r, f) {
			res = append(res, r)
		}
	}

	return res
}

func match(r models.MetricRecord, f models.MetricFilter) bool {
	if f.Floor != "" && r.Floor != f.Floor {
		return false
	}

	if f.MetricName != "" && r.MetricName != f.MetricName {
		return false
	}

	// Timestamps share one lexically sortable layout, so plain string
	// comparison orders them.
	if f.StartDate != "" && r.Timestamp < f.StartDate {
		return false
	}

	if f.EndDate != "" && r.Timestamp > f.EndDate {
		return false
	}

	if f.MetricType != "" && r.MetricType != f.MetricType {
		return false
	}

	return true
}
