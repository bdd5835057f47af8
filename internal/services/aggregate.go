package services

import (
	"errors"
	"fmt"

	"github.com/leonf08/building-metrics.git/internal/models"
)

// ErrFloorNotFound is returned when a floor has no records at all.
var ErrFloorNotFound = errors.New("floor not found")

// Aggregate builds the floor view from records. Records of other floors are ignored.
// A metric seen twice keeps the later value.
func Aggregate(floorID string, records []models.MetricRecord) (models.FloorMetricsView, error) {
	view := models.FloorMetricsView{
		Floor:        floorID,
		FloorMetrics: make(map[string]float64),
		RoomMetrics:  make(map[string]map[string]float64),
		Rooms:        make([]string, 0),
	}

	found := false
	for _, r := range records {
		if r.Floor != floorID {
			continue
		}
		found = true

		switch r.MetricType {
		case models.FloorMetric:
			view.FloorMetrics[r.MetricName] = r.Value
		case models.RoomMetric:
			if r.Room == "" {
				continue
			}

			room, ok := view.RoomMetrics[r.Room]
			if !ok {
				room = make(map[string]float64)
				view.RoomMetrics[r.Room] = room
				view.Rooms = append(view.Rooms, r.Room)
			}
			room[r.MetricName] = r.Value
		}
	}

	if !found {
		return models.FloorMetricsView{}, fmt.Errorf("%w: %s", ErrFloorNotFound, floorID)
	}

	return view, nil
}
