package services

import (
	"testing"

	"github.com/leonf08/building-metrics.git/internal/models"
	"github.com/stretchr/testify/assert"
)

var records = []models.MetricRecord{
	{Floor: "1", MetricName: "occupancy", Value: 5, Timestamp: "2024-01-01", MetricType: models.FloorMetric},
	{Floor: "1", Room: "101", MetricName: "temp", Value: 21, Timestamp: "2024-01-02", MetricType: models.RoomMetric},
	{Floor: "2", MetricName: "occupancy", Value: 7, Timestamp: "2024-01-03", MetricType: models.FloorMetric},
	{Floor: "2", Room: "201", MetricName: "temp", Value: 19, Timestamp: "2024-01-04", MetricType: models.RoomMetric},
	{Floor: "1", MetricName: "occupancy", Value: 6, Timestamp: "2024-01-05", MetricType: models.FloorMetric},
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter models.MetricFilter
		want   []models.MetricRecord
	}{
		{
			name:   "empty filter returns everything in order",
			filter: models.MetricFilter{},
			want:   records,
		},
		{
			name:   "by floor",
			filter: models.MetricFilter{Floor: "1"},
			want:   []models.MetricRecord{records[0], records[1], records[4]},
		},
		{
			name:   "by metric name",
			filter: models.MetricFilter{MetricName: "occupancy"},
			want:   []models.MetricRecord{records[0], records[2], records[4]},
		},
		{
			name:   "by metric type",
			filter: models.MetricFilter{MetricType: models.RoomMetric},
			want:   []models.MetricRecord{records[1], records[3]},
		},
		{
			name:   "date range is inclusive on both bounds",
			filter: models.MetricFilter{StartDate: "2024-01-02", EndDate: "2024-01-04"},
			want:   []models.MetricRecord{records[1], records[2], records[3]},
		},
		{
			name:   "only start date",
			filter: models.MetricFilter{StartDate: "2024-01-04"},
			want:   []models.MetricRecord{records[3], records[4]},
		},
		{
			name:   "only end date",
			filter: models.MetricFilter{EndDate: "2024-01-01"},
			want:   []models.MetricRecord{records[0]},
		},
		{
			name: "all predicates combined",
			filter: models.MetricFilter{
				Floor:      "1",
				MetricName: "occupancy",
				StartDate:  "2024-01-02",
				EndDate:    "2024-12-31",
				MetricType: models.FloorMetric,
			},
			want: []models.MetricRecord{records[4]},
		},
		{
			name:   "lexical comparison with longer timestamps",
			filter: models.MetricFilter{StartDate: "2024-01-03T00:00:00"},
			want:   []models.MetricRecord{records[3], records[4]},
		},
		{
			name:   "nothing matches",
			filter: models.MetricFilter{Floor: "9"},
			want:   []models.MetricRecord{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(records, tt.filter)

			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	in := make([]models.MetricRecord, len(records))
	copy(in, records)

	_ = Filter(in, models.MetricFilter{Floor: "2"})

	assert.Equal(t, records, in)
}
