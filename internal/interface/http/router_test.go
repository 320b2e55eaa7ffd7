package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/equigrid-api/internal/domain/energy"
	"github.com/yanqian/equigrid-api/internal/infra/config"
	"github.com/yanqian/equigrid-api/pkg/metrics"
	"github.com/yanqian/equigrid-api/pkg/util"
)

func TestRouter_ZoneProfile(t *testing.T) {
	server := newRouterUnderTest(t, nil)

	recorder := performRequest(server, http.MethodGet, "/api/energy/zone/US-CA", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	var got energy.ZoneResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "US-CA", got.ZoneID)
	require.Equal(t, 42, got.AQI)
	require.Len(t, got.Series, 24)
	require.Equal(t, "2024-07-01T15:00:00Z", got.Series[23].Hour)
	require.Equal(t, got.Series[23].Carbon, got.CarbonIntensity)
	require.Equal(t, got.Series[23].Price, got.PriceCentsPerKWh)

	hours := make(map[string]bool, len(got.Series))
	for _, p := range got.Series {
		hours[p.Hour] = true
	}
	for _, h := range got.CleanerHoursISO {
		require.True(t, hours[h], h)
	}
}

func TestRouter_ZoneFieldNames(t *testing.T) {
	server := newRouterUnderTest(t, nil)

	recorder := performRequest(server, http.MethodGet, "/api/energy/zone/DE", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &raw))
	for _, key := range []string{"zoneId", "load_kwh", "carbon_intensity", "aqi", "price_cents_per_kwh", "series", "cleaner_hours_iso"} {
		require.Contains(t, raw, key)
	}

	var series []map[string]any
	require.NoError(t, json.Unmarshal(raw["series"], &series))
	require.Len(t, series, 24)
	for _, key := range []string{"hour", "carbon", "price", "load"} {
		require.Contains(t, series[0], key)
	}
}

func TestRouter_ZoneEmptyIdentifier(t *testing.T) {
	server := newRouterUnderTest(t, nil)

	recorder := performRequest(server, http.MethodGet, "/api/energy/zone/", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got energy.ZoneResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "", got.ZoneID)
	require.Len(t, got.Series, 24)
}

func TestRouter_ZoneIdentifierIsDecoded(t *testing.T) {
	server := newRouterUnderTest(t, nil)

	recorder := performRequest(server, http.MethodGet, "/api/energy/zone/north%20grid", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got energy.ZoneResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "north grid", got.ZoneID)
}

func TestRouter_CleanerHours(t *testing.T) {
	server := newRouterUnderTest(t, nil)

	recorder := performRequest(server, http.MethodGet, "/api/energy/zone/GA-30331/cleaner-hours", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got energy.CleanerHoursResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "GA-30331", got.ZoneID)
	require.NotEmpty(t, got.CleanerHours)
	for _, ch := range got.CleanerHours {
		require.NotEmpty(t, ch.Label)
	}
}

func TestRouter_Root(t *testing.T) {
	server := newRouterUnderTest(t, nil)

	recorder := performRequest(server, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"message":"EquiGridAI backend is running!"}`, recorder.Body.String())

	recorder = performRequest(server, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}

func TestRouter_UnknownRoute(t *testing.T) {
	server := newRouterUnderTest(t, nil)

	recorder := performRequest(server, http.MethodGet, "/api/energy/regions", nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "not_found", errBody["error"]["code"])
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	server := newRouterUnderTest(t, nil)

	recorder := performRequest(server, http.MethodPost, "/api/energy/zone/US-CA", nil)
	require.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
	require.Equal(t, "GET", recorder.Header().Get("Allow"))

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "method_not_allowed", errBody["error"]["code"])
}

func TestRouter_RequestID(t *testing.T) {
	server := newRouterUnderTest(t, nil)

	recorder := performRequest(server, http.MethodGet, "/", map[string]string{requestIDHeader: "abc-123"})
	require.Equal(t, "abc-123", recorder.Header().Get(requestIDHeader))

	recorder = performRequest(server, http.MethodGet, "/", nil)
	require.Len(t, recorder.Header().Get(requestIDHeader), 36)
}

func TestRouter_CORSAllowedOrigin(t *testing.T) {
	server := newRouterUnderTest(t, nil)

	recorder := performRequest(server, http.MethodGet, "/api/energy/zone/US-CA", map[string]string{"Origin": "http://localhost:5173"})
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "http://localhost:5173", recorder.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", recorder.Header().Get("Access-Control-Allow-Credentials"))

	recorder = performRequest(server, http.MethodGet, "/api/energy/zone/US-CA", map[string]string{"Origin": "https://evil.example.com"})
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_CORSPreflight(t *testing.T) {
	server := newRouterUnderTest(t, nil)

	recorder := performRequest(server, http.MethodOptions, "/api/energy/zone/US-CA", map[string]string{
		"Origin":                        "http://localhost:5173",
		"Access-Control-Request-Method": "GET",
	})
	require.Equal(t, http.StatusNoContent, recorder.Code)
	require.Equal(t, "GET, OPTIONS", recorder.Header().Get("Access-Control-Allow-Methods"))
	require.Equal(t, "600", recorder.Header().Get("Access-Control-Max-Age"))
}

func TestRouter_RateLimit(t *testing.T) {
	server := newRouterUnderTest(t, func(cfg *config.Config) {
		cfg.HTTP.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerMinute: 1, Burst: 2, MaxClients: 8}
	})

	require.Equal(t, http.StatusOK, performRequest(server, http.MethodGet, "/", nil).Code)
	require.Equal(t, http.StatusOK, performRequest(server, http.MethodGet, "/", nil).Code)

	recorder := performRequest(server, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusTooManyRequests, recorder.Code)
	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "rate_limit_exceeded", errBody["error"]["code"])
}

func TestRouter_Metrics(t *testing.T) {
	server := newRouterUnderTest(t, nil)

	require.Equal(t, http.StatusOK, performRequest(server, http.MethodGet, "/api/energy/zone/US-CA", nil).Code)

	recorder := performRequest(server, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	require.Contains(t, body, "equigrid_zone_profiles_total 1")
	require.Contains(t, body, `equigrid_http_requests_total{method="GET",route="/api/energy/zone/:zoneId",status="200"} 1`)
}

func TestRouter_MetricsDisabled(t *testing.T) {
	server := newRouterUnderTest(t, func(cfg *config.Config) {
		cfg.Metrics.Enabled = false
	})

	require.Equal(t, http.StatusNotFound, performRequest(server, http.MethodGet, "/metrics", nil).Code)
}

func performRequest(server *http.Server, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, mutate func(cfg *config.Config)) *http.Server {
	t.Helper()
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
			CORS: config.CORSConfig{
				AllowedOrigins:   []string{"http://localhost:5173"},
				AllowedMethods:   []string{"GET", "OPTIONS"},
				AllowedHeaders:   []string{"Content-Type"},
				AllowCredentials: true,
				MaxAge:           10 * time.Minute,
			},
		},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	if mutate != nil {
		mutate(cfg)
	}

	recorder, err := metrics.NewRecorder(nil)
	require.NoError(t, err)
	clock := util.FixedClock{At: time.Date(2024, 7, 1, 15, 42, 10, 0, time.UTC)}
	svc := energy.NewService(energy.NewRand(7), clock, recorder, newTestLogger())
	return NewRouter(cfg, NewHandler(svc, newTestLogger()), recorder)
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

func decodeErrorBody(t *testing.T, body []byte) map[string]map[string]string {
	t.Helper()
	var payload map[string]map[string]string
	require.NoError(t, json.Unmarshal(body, &payload))
	return payload
}
