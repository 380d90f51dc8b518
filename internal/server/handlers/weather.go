package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vzahanych/city-weather/internal/server/utils"
	"github.com/vzahanych/city-weather/internal/weather"
	"go.uber.org/zap"
)

type WeatherHandler struct {
	fetcher weather.Fetcher
	catalog weather.Catalog
	metrics FetchRecorder
	logger  *zap.Logger
}

func NewWeatherHandler(fetcher weather.Fetcher, catalog weather.Catalog, metrics FetchRecorder, logger *zap.Logger) *WeatherHandler {
	return &WeatherHandler{
		fetcher: fetcher,
		catalog: catalog,
		metrics: metrics,
		logger:  logger,
	}
}

// GetWeather fetches a fresh snapshot for the city and returns every metric.
func (h *WeatherHandler) GetWeather(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	snapshot, outcome := h.fetch(c, req.City)

	c.JSON(statusForOutcome(outcome), WeatherResponse{
		City:      req.City,
		RequestID: utils.GetRequestIDFromGinContext(c),
		Outcome:   outcome.Result(),
		Metrics:   h.catalog.Report(snapshot),
	})
}

// GetMetric fetches a fresh snapshot and returns the single named metric.
func (h *WeatherHandler) GetMetric(c *gin.Context) {
	name := c.Param("metric")
	extractor, found := h.catalog.Find(name)
	if !found {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Unknown metric",
			Code:    "UNKNOWN_METRIC",
			Details: "metric must be one of: " + strings.Join(h.catalog.Names(), ", "),
		})
		return
	}

	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	snapshot, outcome := h.fetch(c, req.City)

	c.JSON(statusForOutcome(outcome), MetricResponse{
		City:      req.City,
		RequestID: utils.GetRequestIDFromGinContext(c),
		Outcome:   outcome.Result(),
		Metric:    extractor.Name,
		Data:      extractor.Extract(snapshot),
	})
}

func (h *WeatherHandler) bindRequest(c *gin.Context) (WeatherRequest, bool) {
	reqLogger := h.logger.With(zap.String("request_id", utils.GetRequestIDFromGinContext(c)))

	var req WeatherRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		reqLogger.Warn("Invalid request parameters", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request parameters",
			Code:    "INVALID_PARAMS",
			Details: err.Error(),
		})
		return req, false
	}

	if violations := utils.ValidateStruct(req); len(violations) > 0 {
		reqLogger.Warn("Invalid request parameters", zap.Any("violations", violations))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:      "Invalid request parameters",
			Code:       "INVALID_PARAMS",
			Violations: violations,
		})
		return req, false
	}

	return req, true
}

func (h *WeatherHandler) fetch(c *gin.Context, city string) (*weather.Snapshot, weather.Outcome) {
	ctx := utils.GetContextFromGinContext(c)
	reqLogger := h.logger.With(
		zap.String("request_id", utils.GetRequestIDFromGinContext(c)),
		zap.String("city", city))

	reqLogger.Info("Processing weather request")

	snapshot, outcome := h.fetcher.GetWeather(ctx, city)
	if h.metrics != nil {
		h.metrics.RecordFetch(ctx, outcome)
	}

	if outcome.OK() {
		reqLogger.Info("Weather request completed successfully")
	} else {
		reqLogger.Warn("Weather request completed without data", zap.Stringer("outcome", outcome))
	}

	return snapshot, outcome
}

// statusForOutcome maps a fetch outcome onto this API's response status.
func statusForOutcome(outcome weather.Outcome) int {
	switch outcome.Kind {
	case weather.OutcomeOK:
		return http.StatusOK
	case weather.OutcomeNotFound:
		return http.StatusNotFound
	case weather.OutcomeConnectionFailed:
		return http.StatusServiceUnavailable
	case weather.OutcomeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}
