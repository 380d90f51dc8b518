package openweather

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"io"
	"net"
	"net/url"
	"strings"
	"syscall"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/vzahanych/city-weather/internal/config"
	"github.com/vzahanych/city-weather/internal/weather"
	"github.com/vzahanych/city-weather/pkg/logger"
	"github.com/vzahanych/city-weather/pkg/telemetry"
)

const (
	units     = "metric"
	userAgent = "city-weather/1.0"
)

// Client fetches current conditions for a city from the OpenWeather API.
// Every call is a single attempt.
type Client struct {
	baseURL string
	apiKey  string
	client  *resty.Client
	logger  *zap.Logger
	tele    *telemetry.Telemetry
}

func NewClientWithConfig(cfg config.OpenWeatherConfig, logger *zap.Logger, tele *telemetry.Telemetry) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json").
		SetLogger(logger.Sugar())

	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  client,
		logger:  logger,
		tele:    tele,
	}
}

// GetWeather sends one request for city. The snapshot is returned only for
// a 200 response with a JSON object body.
func (c *Client) GetWeather(ctx context.Context, city string) (*weather.Snapshot, weather.Outcome) {
	tracer := c.tele.GetTracer()
	ctx, span := tracer.Start(ctx, "openweather.GetWeather")
	defer span.End()

	span.SetAttributes(attribute.String("city", city))

	log := c.logger.With(zap.String("city", city))
	if requestID := logger.RequestIDFromContext(ctx); requestID != "" {
		log = log.With(zap.String("request_id", requestID))
	}
	log.Debug("Fetching current weather")

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":     city,
			"appid": c.apiKey,
			"units": units,
		}).
		Get(c.baseURL)
	if err != nil {
		outcome := classifyError(err)
		outcome.Err = c.redact(err)
		span.SetAttributes(
			attribute.Bool("success", false),
			attribute.String("outcome", outcome.Kind.String()),
		)
		c.tele.RecordError(ctx, outcome.Err, map[string]interface{}{"city": city})
		log.Error(outcome.Message(), zap.Stringer("outcome", outcome.Kind), zap.Error(outcome.Err))
		return nil, outcome
	}

	outcome := weather.StatusOutcome(resp.StatusCode())
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))

	if !outcome.OK() {
		span.SetAttributes(
			attribute.Bool("success", false),
			attribute.String("outcome", outcome.Kind.String()),
		)
		log.Warn(outcome.Message(),
			zap.Int("status", resp.StatusCode()),
			zap.Stringer("outcome", outcome.Kind))
		return nil, outcome
	}

	snapshot, err := weather.ParseSnapshot(resp.Body())
	if err != nil {
		outcome = weather.Outcome{Kind: weather.OutcomeInvalidResponse, StatusCode: resp.StatusCode(), Err: err}
		span.SetAttributes(
			attribute.Bool("success", false),
			attribute.String("outcome", outcome.Kind.String()),
		)
		log.Error(outcome.Message(), zap.Int("status", resp.StatusCode()), zap.Error(err))
		return nil, outcome
	}

	span.SetAttributes(attribute.Bool("success", true))
	log.Info("Current weather fetched", zap.Duration("latency", resp.Time()))

	return snapshot, outcome
}

// classifyError maps request-layer failures to outcomes. Timeouts are
// checked first because a dial timeout is also a net.OpError.
func classifyError(err error) weather.Outcome {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return weather.Outcome{Kind: weather.OutcomeTimeout, Err: err}
	}

	if isConnectionError(err) {
		return weather.Outcome{Kind: weather.OutcomeConnectionFailed, Err: err}
	}

	return weather.Outcome{Kind: weather.OutcomeRequestFailed, Err: err}
}

// isConnectionError covers failures to reach or keep a connection to the
// provider: dial and DNS errors, resets, a peer hanging up before the
// response, and TLS handshake or certificate errors.
func isConnectionError(err error) bool {
	var (
		opErr      *net.OpError
		dnsErr     *net.DNSError
		headerErr  tls.RecordHeaderError
		verifyErr  *tls.CertificateVerificationError
		authErr    x509.UnknownAuthorityError
		hostErr    x509.HostnameError
		invalidErr x509.CertificateInvalidError
		alertErr   tls.AlertError
	)
	return errors.As(err, &opErr) ||
		errors.As(err, &dnsErr) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.As(err, &headerErr) ||
		errors.As(err, &verifyErr) ||
		errors.As(err, &authErr) ||
		errors.As(err, &hostErr) ||
		errors.As(err, &invalidErr) ||
		errors.As(err, &alertErr)
}

// redact drops the request URL, which carries the API key in its query,
// from a transport error before it is logged or returned to callers.
func (c *Client) redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		err = urlErr.Err
	}
	if c.apiKey != "" && strings.Contains(err.Error(), c.apiKey) {
		return errors.New(strings.ReplaceAll(err.Error(), c.apiKey, "REDACTED"))
	}
	return err
}
