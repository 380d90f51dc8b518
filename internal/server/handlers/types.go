package handlers

import (
	"github.com/vzahanych/city-weather/internal/server/utils"
	"github.com/vzahanych/city-weather/internal/weather"
)

// WeatherRequest is the query accepted by the weather endpoints.
type WeatherRequest struct {
	City string `form:"city" json:"city" validate:"required,city"`
}

// WeatherResponse carries the fetch outcome and every extractor result
// computed from the snapshot of this request.
type WeatherResponse struct {
	City      string                    `json:"city"`
	RequestID string                    `json:"request_id,omitempty"`
	Outcome   weather.Result            `json:"outcome"`
	Metrics   map[string]weather.Result `json:"metrics"`
}

// MetricResponse carries one extractor result.
type MetricResponse struct {
	City      string         `json:"city"`
	RequestID string         `json:"request_id,omitempty"`
	Outcome   weather.Result `json:"outcome"`
	Metric    string         `json:"metric"`
	Data      weather.Result `json:"data"`
}

type ErrorResponse struct {
	Error      string                  `json:"error"`
	Code       string                  `json:"code,omitempty"`
	Details    string                  `json:"details,omitempty"`
	Violations []utils.ValidationError `json:"violations,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp,omitempty"`
}
