package repo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/leonf08/building-metrics.git/internal/models"
)

const (
	colFloor      = "floor"
	colRoom       = "room"
	colMetricName = "metric_name"
	colValue      = "value"
	colTimestamp  = "timestamp"
	colMetricType = "metric_type"
)

var requiredColumns = []string{colFloor, colMetricName, colValue, colTimestamp}

// nullValues are cell contents treated as a missing value.
var nullValues = map[string]struct{}{
	"":     {},
	"nan":  {},
	"null": {},
	"none": {},
	"n/a":  {},
	"na":   {},
	"#n/a": {},
}

var errNoHeader = errors.New("no header row")

func isNull(s string) bool {
	_, ok := nullValues[strings.ToLower(s)]
	return ok
}

// parseTable converts rows of a delimited table into records.
// The first row is a header naming the columns in any order.
func parseTable(rows [][]string) ([]models.MetricRecord, error) {
	if len(rows) == 0 {
		return nil, errNoHeader
	}

	idx := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}

	for _, c := range requiredColumns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("missing required column %q", c)
		}
	}

	cell := func(row []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	records := make([]models.MetricRecord, 0, len(rows)-1)
	for n, row := range rows[1:] {
		line := n + 2

		if isBlank(row) {
			continue
		}

		raw := cell(row, colValue)
		if isNull(raw) {
			return nil, fmt.Errorf("row %d: missing value", line)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid value %q: %w", line, raw, err)
		}

		r := models.MetricRecord{
			Floor:      cell(row, colFloor),
			Room:       cell(row, colRoom),
			MetricName: cell(row, colMetricName),
			Value:      v,
			Timestamp:  cell(row, colTimestamp),
			MetricType: models.MetricType(cell(row, colMetricType)),
		}

		if err = normalize(&r); err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}

		records = append(records, r)
	}

	return records, nil
}

// normalize applies defaults to the optional fields and checks the required ones.
func normalize(r *models.MetricRecord) error {
	if isNull(r.Room) {
		r.Room = ""
	}

	if isNull(string(r.MetricType)) {
		r.MetricType = models.FloorMetric
	}
	r.MetricType = models.MetricType(strings.ToLower(string(r.MetricType)))

	switch {
	case isNull(r.Floor):
		return errors.New("empty floor")
	case isNull(r.MetricName):
		return errors.New("empty metric_name")
	case isNull(r.Timestamp):
		return errors.New("empty timestamp")
	case !r.MetricType.IsValid():
		return fmt.Errorf("unknown metric_type %q", r.MetricType)
	case math.IsNaN(r.Value) || math.IsInf(r.Value, 0):
		// not representable in JSON
		return fmt.Errorf("value %v is not a finite number", r.Value)
	}

	return nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}
