package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	m := New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/animais/{animalID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, path := range []string{"/animais/1", "/animais/2"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	}

	got := testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "/animais/{animalID}", "404"))
	assert.Equal(t, 2.0, got)
}

func TestAdoptionCounters(t *testing.T) {
	m := New()
	m.AdoptionCreated()
	m.AdoptionCreated()
	m.AdoptionCancelled()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AdoptionsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AdoptionsCancelled))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.AdoptionsDeleted))

	var nilMetrics *Metrics
	assert.NotPanics(t, nilMetrics.AdoptionDeleted)
}

func TestHandler_ExposesRegistry(t *testing.T) {
	m := New()
	m.AdoptionCreated()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "shelter_adoptions_created_total 1")
}

func TestMiddleware_KeepsFlusherAndDefaultsTo200(t *testing.T) {
	m := New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/stream", func(w http.ResponseWriter, r *http.Request) {
		f, ok := w.(http.Flusher)
		require.True(t, ok)
		f.Flush()
	})
	r.Get("/empty", func(w http.ResponseWriter, r *http.Request) {})

	for _, path := range []string{"/stream", "/empty"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "/stream", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "/empty", "200")))
}
