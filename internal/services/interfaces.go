package services

import (
	"github.com/leonf08/building-metrics.git/internal/models"
)

//go:generate mockery --name MetricsQuerier --output ./mocks --filename querier_mock.go
type (
	// RecordSet is a read-only view of the loaded dataset.
	RecordSet interface {
		All() []models.MetricRecord
		Floors() []string
		Len() int
	}

	// MetricsQuerier is an interface for querying metrics.
	MetricsQuerier interface {
		ListMetrics(floor, metricName string) []models.MetricRecord
		GetFloorMetrics(floorID string) (models.FloorMetricsView, error)
		FilterMetrics(models.MetricFilter) []models.MetricRecord
		Floors() []string
		Size() int
	}

	// IPChecker is an interface for checking if the IP is in trusted subnet.
	IPChecker interface {
		IsTrusted(string) (bool, error)
	}
)
