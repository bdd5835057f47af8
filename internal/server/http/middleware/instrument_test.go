package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type observation struct {
	route string
	code  int
}

type recorder struct {
	mu  sync.Mutex
	obs []observation
}

func (r *recorder) ObserveRequest(route string, code int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.obs = append(r.obs, observation{route: route, code: code})
}

func TestInstrument(t *testing.T) {
	rec := &recorder{}

	r := chi.NewRouter()
	r.Use(Instrument(rec))
	r.Get("/floors/{floorID}/metrics", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, url := range []string{"/floors/1/metrics", "/floors/2/metrics", "/unknown"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, url, nil))
	}

	assert.Equal(t, []observation{
		{route: "/floors/{floorID}/metrics", code: http.StatusOK},
		{route: "/floors/{floorID}/metrics", code: http.StatusOK},
		{route: unmatchedRoute, code: http.StatusNotFound},
	}, rec.obs)
}
