package models

// MetricType tells whether a record describes a whole floor or a single room.
type MetricType string

const (
	// FloorMetric is a measurement scoped to an entire floor.
	FloorMetric MetricType = "floor"

	// RoomMetric is a measurement scoped to a room within a floor.
	RoomMetric MetricType = "room"
)

// IsValid reports whether t is one of the known metric types.
func (t MetricType) IsValid() bool {
	return t == FloorMetric || t == RoomMetric
}

// MetricRecord is a single observation of the dataset.
type MetricRecord struct {
	// Floor is an identifier of the floor, never empty
	Floor string `json:"floor" db:"floor"`

	// Room is an identifier of the room, empty for floor-level records
	Room string `json:"room" db:"room"`

	// MetricName is a name of the metric
	MetricName string `json:"metric_name" db:"metric_name"`

	// Value is a value of the metric
	Value float64 `json:"value" db:"value"`

	// Timestamp is kept as text, filters compare it lexically
	Timestamp string `json:"timestamp" db:"timestamp"`

	// MetricType is a scope of the metric
	MetricType MetricType `json:"metric_type" db:"metric_type"`
}

// FloorMetricsView is data structure for the floor detail response.
type FloorMetricsView struct {
	Floor        string                        `json:"floor"`
	FloorMetrics map[string]float64            `json:"floor_metrics"`
	RoomMetrics  map[string]map[string]float64 `json:"room_metrics"`

	// Rooms lists keys of RoomMetrics in the order they were first seen.
	Rooms []string `json:"-"`
}

// MetricFilter is data structure for the filter request.
// An empty field means the predicate is not applied.
type MetricFilter struct {
	Floor      string     `json:"floor,omitempty"`
	MetricName string     `json:"metric_name,omitempty"`
	StartDate  string     `json:"start_date,omitempty"`
	EndDate    string     `json:"end_date,omitempty"`
	MetricType MetricType `json:"metric_type,omitempty"`
}

// IsEmpty reports whether no predicate is set.
func (f MetricFilter) IsEmpty() bool {
	return f == MetricFilter{}
}
