package services

import (
	"github.com/leonf08/building-metrics.git/internal/models"
)

var _ MetricsQuerier = (*MetricsService)(nil)

// MetricsService answers queries over the loaded dataset.
// It holds no mutable state and is safe for concurrent use.
type MetricsService struct {
	records RecordSet
}

// NewMetricsService creates a query service over the record set.
func NewMetricsService(rs RecordSet) *MetricsService {
	return &MetricsService{
		records: rs,
	}
}

// ListMetrics returns records of the floor and metric name, empty values match everything.
func (s *MetricsService) ListMetrics(floor, metricName string) []models.MetricRecord {
	return Filter(s.records.All(), models.MetricFilter{
		Floor:      floor,
		MetricName: metricName,
	})
}

// GetFloorMetrics returns floor and room metrics of the floor.
// It returns ErrFloorNotFound if the floor has no records.
func (s *MetricsService) GetFloorMetrics(floorID string) (models.FloorMetricsView, error) {
	records := Filter(s.records.All(), models.MetricFilter{Floor: floorID})

	return Aggregate(floorID, records)
}

// FilterMetrics returns records matching all predicates of f.
func (s *MetricsService) FilterMetrics(f models.MetricFilter) []models.MetricRecord {
	return Filter(s.records.All(), f)
}

// Floors returns known floors in the order they appear in the dataset.
func (s *MetricsService) Floors() []string {
	return s.records.Floors()
}

// Size returns the number of loaded records.
func (s *MetricsService) Size() int {
	return s.records.Len()
}
