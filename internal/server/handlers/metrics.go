package handlers

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/vzahanych/city-weather/internal/server/middlewares"
	"github.com/vzahanych/city-weather/internal/weather"
	"go.uber.org/zap"
)

// FetchRecorder counts provider fetches by outcome.
type FetchRecorder interface {
	RecordFetch(ctx context.Context, outcome weather.Outcome)
}

// HTTPStatsProvider is implemented by middlewares.MetricsMiddleware.
type HTTPStatsProvider interface {
	HTTPStats() middlewares.HTTPStats
}

type MetricsHandler struct {
	logger *zap.Logger
	http   HTTPStatsProvider

	mutex         sync.RWMutex
	fetchOutcomes map[string]int64
}

func NewMetricsHandler(logger *zap.Logger, httpStats HTTPStatsProvider) *MetricsHandler {
	return &MetricsHandler{
		logger:        logger,
		http:          httpStats,
		fetchOutcomes: make(map[string]int64),
	}
}

func (h *MetricsHandler) RecordFetch(ctx context.Context, outcome weather.Outcome) {
	h.mutex.Lock()
	h.fetchOutcomes[outcome.Kind.String()]++
	h.mutex.Unlock()
}

// ServeMetrics exposes counters in the Prometheus text format.
func (h *MetricsHandler) ServeMetrics(c *gin.Context) {
	var b strings.Builder

	if h.http != nil {
		stats := h.http.HTTPStats()

		b.WriteString("# HELP http_requests_total Total number of HTTP requests\n")
		b.WriteString("# TYPE http_requests_total counter\n")
		for _, key := range sortedKeys(stats.RequestsTotal) {
			b.WriteString("http_requests_total{route_status=\"" + key + "\"} " + strconv.FormatInt(stats.RequestsTotal[key], 10) + "\n")
		}

		b.WriteString("\n# HELP http_request_duration_seconds_avg Average duration of HTTP requests\n")
		b.WriteString("# TYPE http_request_duration_seconds_avg gauge\n")
		b.WriteString("http_request_duration_seconds_avg " + strconv.FormatFloat(stats.AvgDurationSeconds, 'f', 6, 64) + "\n")

		b.WriteString("\n# HELP http_active_requests Number of active HTTP requests\n")
		b.WriteString("# TYPE http_active_requests gauge\n")
		b.WriteString("http_active_requests " + strconv.FormatInt(stats.ActiveRequests, 10) + "\n\n")
	}

	h.mutex.RLock()
	b.WriteString("# HELP weather_fetch_total Provider fetches by outcome\n")
	b.WriteString("# TYPE weather_fetch_total counter\n")
	for _, kind := range sortedKeys(h.fetchOutcomes) {
		b.WriteString("weather_fetch_total{outcome=\"" + kind + "\"} " + strconv.FormatInt(h.fetchOutcomes[kind], 10) + "\n")
	}
	h.mutex.RUnlock()

	c.Data(http.StatusOK, "text/plain; version=0.0.4; charset=utf-8", []byte(b.String()))
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
