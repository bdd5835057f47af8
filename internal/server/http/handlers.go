package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/leonf08/building-metrics.git/internal/models"
	"github.com/leonf08/building-metrics.git/internal/services"
	"github.com/rs/zerolog"
)

type handler struct {
	svc services.MetricsQuerier
	log zerolog.Logger
}

// errorResponse is the body of every error response.
type errorResponse struct {
	Detail string `json:"detail"`
}

type pingResponse struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
}

func newHandler(r chi.Router, svc services.MetricsQuerier, l zerolog.Logger) {
	h := handler{
		svc: svc,
		log: l,
	}

	r.Get("/ping", h.ping)
	r.Get("/floors", h.listFloors)
	r.Get("/floors/{floorID}/metrics", h.getFloorMetrics)
	r.Get("/metrics", h.listMetrics)
	r.Post("/metrics/filter", h.filterMetrics)
}

// listMetrics handles GET requests to /metrics endpoint.
// Optional query parameters floor and metric_name narrow the result.
// Response contains JSON array of metric records, empty if nothing matches.
func (h handler) listMetrics(w http.ResponseWriter, r *http.Request) {
	logEntry := h.log.With().Str("component", "handler/listMetrics").Logger()

	q := r.URL.Query()
	metrics := h.svc.ListMetrics(q.Get("floor"), q.Get("metric_name"))

	writeJSON(w, logEntry, http.StatusOK, metrics)
}

// getFloorMetrics handles GET requests to /floors/{floorID}/metrics endpoint.
// Response contains floor and room metrics of the floor in JSON format.
func (h handler) getFloorMetrics(w http.ResponseWriter, r *http.Request) {
	logEntry := h.log.With().Str("component", "handler/getFloorMetrics").Logger()

	floorID := chi.URLParam(r, "floorID")

	view, err := h.svc.GetFloorMetrics(floorID)
	if err != nil {
		if errors.Is(err, services.ErrFloorNotFound) {
			logEntry.Debug().Err(err).Msg("GetFloorMetrics")
			writeError(w, logEntry, http.StatusNotFound, err.Error())
			return
		}

		logEntry.Error().Err(err).Msg("GetFloorMetrics")
		writeError(w, logEntry, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, logEntry, http.StatusOK, view)
}

// filterMetrics handles POST requests to /metrics/filter endpoint.
// Filter criteria are passed as JSON object in request body, every field is optional.
// Response contains JSON array of matching metric records.
func (h handler) filterMetrics(w http.ResponseWriter, r *http.Request) {
	logEntry := h.log.With().Str("component", "handler/filterMetrics").Logger()

	var filter models.MetricFilter
	if err := json.NewDecoder(r.Body).Decode(&filter); err != nil && !errors.Is(err, io.EOF) {
		logEntry.Error().Err(err).Msg("Decode")
		writeError(w, logEntry, http.StatusBadRequest, err.Error())
		return
	}

	if filter.MetricType != "" && !filter.MetricType.IsValid() {
		logEntry.Error().Str("metric_type", string(filter.MetricType)).Msg("invalid metric type")
		writeError(w, logEntry, http.StatusBadRequest,
			fmt.Sprintf("invalid metric_type %q, expected %q or %q",
				filter.MetricType, models.FloorMetric, models.RoomMetric))
		return
	}

	writeJSON(w, logEntry, http.StatusOK, h.svc.FilterMetrics(filter))
}

// listFloors handles GET requests to /floors endpoint.
// Response contains JSON array of floor identifiers.
func (h handler) listFloors(w http.ResponseWriter, _ *http.Request) {
	logEntry := h.log.With().Str("component", "handler/listFloors").Logger()

	writeJSON(w, logEntry, http.StatusOK, h.svc.Floors())
}

// ping handles GET requests to /ping endpoint.
func (h handler) ping(w http.ResponseWriter, _ *http.Request) {
	logEntry := h.log.With().Str("component", "handler/ping").Logger()

	writeJSON(w, logEntry, http.StatusOK, pingResponse{
		Status:  "ok",
		Records: h.svc.Size(),
	})
}

// writeJSON encodes v before the status is sent, so an encoding failure
// still reaches the client as a 500.
func writeJSON(w http.ResponseWriter, log zerolog.Logger, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("Marshal")

		status = http.StatusInternalServerError
		body, _ = json.Marshal(errorResponse{Detail: "failed to encode response"})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(append(body, '\n')); err != nil {
		log.Error().Err(err).Msg("Write")
	}
}

func writeError(w http.ResponseWriter, log zerolog.Logger, status int, detail string) {
	writeJSON(w, log, status, errorResponse{Detail: detail})
}
