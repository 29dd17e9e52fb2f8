package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/campaign-chat/internal/config"
	"github.com/ignite/campaign-chat/internal/domain"
	"github.com/ignite/campaign-chat/internal/pkg/latency"
	"github.com/ignite/campaign-chat/internal/service/campaign"
	"github.com/ignite/campaign-chat/internal/service/datasource"
)

type testEnv struct {
	handler  http.Handler
	registry *datasource.Registry
	draws    *countingRand
}

// countingRand counts the draws made through it.
type countingRand struct {
	campaign.Rand
	n atomic.Int64
}

func (r *countingRand) IntN(n int) int {
	r.n.Add(1)
	return r.Rand.IntN(n)
}

func (r *countingRand) Float64() float64 {
	r.n.Add(1)
	return r.Rand.Float64()
}

func setupTestServer(t *testing.T, mutate ...func(*config.Config)) *testEnv {
	t.Helper()

	cfg := config.Default()
	disabled := false
	cfg.RateLimit.Enabled = &disabled
	for _, fn := range mutate {
		fn(cfg)
	}

	rng := &countingRand{Rand: campaign.NewRand(11)}
	generator := campaign.NewGenerator(rng)
	renderer := campaign.NewRenderer()
	chat := campaign.NewService(generator, renderer, latency.NoDelay{}, rng, campaign.LatencyConfig{})

	registry := datasource.NewRegistry()
	sources := datasource.NewService(registry, latency.NoDelay{}, 0)

	handlers := NewHandlers(sources, chat)
	health := NewHealthChecker(registry, renderer)

	return &testEnv{
		handler:  NewServer(cfg, handlers, health).Handler(),
		registry: registry,
		draws:    rng,
	}
}

func (e *testEnv) source(t *testing.T, id domain.SourceID) domain.DataSource {
	t.Helper()
	for _, ds := range e.registry.List() {
		if ds.ID == id {
			return ds
		}
	}
	t.Fatalf("source %s not in registry", id)
	return domain.DataSource{}
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealthCheck(t *testing.T) {
	env := setupTestServer(t)

	rec := env.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, healthVersion, status.Version)
	assert.Equal(t, "up", status.Checks["registry"].Status)
	assert.Equal(t, "up", status.Checks["engine"].Status)
	assert.Equal(t, "0 of 3 connectors connected", status.Checks["registry"].Message)

	rec = env.do(t, http.MethodGet, "/health/live", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	live := decodeBody(t, rec)
	assert.Equal(t, "alive", live["status"])

	rec = env.do(t, http.MethodGet, "/health/ready", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["ready"])
}

func TestDetermineOverallStatus(t *testing.T) {
	tests := []struct {
		name   string
		checks map[string]ComponentCheck
		want   string
	}{
		{"all up", map[string]ComponentCheck{"a": {Status: "up"}, "b": {Status: "up"}}, "healthy"},
		{"degraded", map[string]ComponentCheck{"a": {Status: "up"}, "b": {Status: "degraded"}}, "degraded"},
		{"down", map[string]ComponentCheck{"a": {Status: "down", Message: "broken"}, "b": {Status: "degraded"}}, "unhealthy"},
		{"not configured", map[string]ComponentCheck{"a": {Status: "down", Message: "not configured"}}, "healthy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, determineOverallStatus(tt.checks))
		})
	}
}

func TestHealthNotConfigured(t *testing.T) {
	hc := NewHealthChecker(nil, nil)

	rec := httptest.NewRecorder()
	hc.HandleReadiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body ReadinessStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Ready)
	assert.Equal(t, "not configured", body.Checks["registry"].Message)
	assert.Empty(t, body.Checks["engine"].Latency)
}

func TestListDataSources(t *testing.T) {
	env := setupTestServer(t)

	rec := env.do(t, http.MethodGet, "/api/data-sources", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"lastUpdated":null`)
	assert.Contains(t, rec.Body.String(), `"dataPoints":null`)

	var body DataSourcesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Sources, 3)
	assert.Equal(t, domain.SourceGoogleAds, body.Sources[0].ID)
	assert.Equal(t, "Google Ads", body.Sources[0].Name)
	assert.Equal(t, domain.SourceShopify, body.Sources[1].ID)
	assert.Equal(t, domain.SourceFacebookPage, body.Sources[2].ID)
	for _, s := range body.Sources {
		assert.Equal(t, domain.StatusDisconnected, s.Status)
	}
}

func TestConnectDataSource(t *testing.T) {
	env := setupTestServer(t)

	rec := env.do(t, http.MethodPost, "/api/data-sources/shopify/connect", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "connecting", body["status"])
	assert.Equal(t, float64(2000), body["estimated_time"])
	assert.Equal(t, "Connecting to Shopify...", body["message"])

	assert.Equal(t, domain.StatusConnected, env.source(t, domain.SourceShopify).Status)
}

func TestConnectDataSourceWithCredentials(t *testing.T) {
	env := setupTestServer(t)

	rec := env.do(t, http.MethodPost, "/api/data-sources/google_ads/connect", `{"credentials":{"api_key":"abc123"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Connecting to Google Ads...", decodeBody(t, rec)["message"])
}

func TestConnectDataSourceErrors(t *testing.T) {
	env := setupTestServer(t)

	rec := env.do(t, http.MethodPost, "/api/data-sources/mailchimp/connect", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Data source not found"}`, rec.Body.String())

	rec = env.do(t, http.MethodPost, "/api/data-sources/shopify/connect", `{"credentials":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, domain.StatusDisconnected, env.source(t, domain.SourceShopify).Status, "a rejected body must not connect")
}

func TestDisconnectDataSource(t *testing.T) {
	env := setupTestServer(t)
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/data-sources/facebook_page/connect", "").Code)

	rec := env.do(t, http.MethodDelete, "/api/data-sources/facebook_page/disconnect", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "disconnected", body["status"])
	assert.Equal(t, "Disconnected from Facebook Page", body["message"])
	assert.NotContains(t, body, "estimated_time")

	rec = env.do(t, http.MethodDelete, "/api/data-sources/unknown/disconnect", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Data source not found"}`, rec.Body.String())
}

func TestChatMessageWithoutSources(t *testing.T) {
	env := setupTestServer(t)

	for _, payload := range []string{
		`{"message":"recover abandoned carts","context":{"connected_sources":[]}}`,
		`{"message":"recover abandoned carts","context":{}}`,
	} {
		rec := env.do(t, http.MethodPost, "/api/chat/message", payload)
		require.Equal(t, http.StatusOK, rec.Code, payload)
		assert.JSONEq(t, `{
			"response": "Please connect at least one data source to generate campaign recommendations.",
			"campaigns": [],
			"processing_time": 100
		}`, rec.Body.String())
	}
}

func TestChatMessageGeneratesCampaign(t *testing.T) {
	env := setupTestServer(t)

	rec := env.do(t, http.MethodPost, "/api/chat/message",
		`{"message":"I need to recover abandoned carts","context":{"connected_sources":["shopify"],"user_id":"u1"}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Response  string `json:"response"`
		Campaigns []struct {
			ID          string          `json:"id"`
			Type        string          `json:"type"`
			Confidence  float64         `json:"confidence"`
			CreatedAt   string          `json:"createdAt"`
			JSONPayload domain.Campaign `json:"jsonPayload"`
		} `json:"campaigns"`
		ProcessingTime int64 `json:"processing_time"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, strings.HasPrefix(body.Response, "I found "))
	assert.GreaterOrEqual(t, body.ProcessingTime, int64(0))
	require.Len(t, body.Campaigns, 1)

	card := body.Campaigns[0]
	assert.Equal(t, "cart_abandonment", card.Type)
	assert.Equal(t, 0.8, card.Confidence)
	assert.Equal(t, card.ID, card.JSONPayload.ID)
	assert.Regexp(t, `^camp_[0-9a-f]{8}$`, card.ID)
	assert.NotEmpty(t, card.CreatedAt)

	payload := card.JSONPayload
	assert.GreaterOrEqual(t, payload.Audience.Size, 100)
	assert.Less(t, payload.Audience.Size, 300)
	assert.Equal(t, domain.ChannelEmail, payload.Channels.Primary)
	assert.Equal(t, "Still thinking about your items?", payload.Message[domain.ChannelEmail].Subject)
	assert.Equal(t, []domain.SourceID{domain.SourceShopify}, payload.DataSources)
}

func TestChatMessageLeavesSourceStatsEmpty(t *testing.T) {
	env := setupTestServer(t)
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/data-sources/shopify/connect", "").Code)

	rec := env.do(t, http.MethodPost, "/api/chat/message",
		`{"message":"promote the new line","context":{"connected_sources":["shopify","google_ads"]}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/data-sources", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Sources []map[string]interface{} `json:"sources"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Sources, 3)
	for _, src := range body.Sources {
		require.Contains(t, src, "lastUpdated")
		require.Contains(t, src, "dataPoints")
		assert.Nil(t, src["lastUpdated"], src["id"])
		assert.Nil(t, src["dataPoints"], src["id"])
	}
	assert.Equal(t, "connected", body.Sources[1]["status"])
}

func TestHealthPollingLeavesChatRandomnessAlone(t *testing.T) {
	env := setupTestServer(t)

	for i := 0; i < 5; i++ {
		require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/health", "").Code)
		require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/health/ready", "").Code)
	}
	assert.Zero(t, env.draws.n.Load())

	rec := env.do(t, http.MethodPost, "/api/chat/message",
		`{"message":"promote","context":{"connected_sources":["shopify"]}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Positive(t, env.draws.n.Load())
}

func TestChatMessageValidation(t *testing.T) {
	env := setupTestServer(t)

	tests := []struct {
		name    string
		payload string
		status  int
		field   string
	}{
		{"missing message", `{"context":{"connected_sources":["shopify"]}}`, http.StatusUnprocessableEntity, "message"},
		{"missing context", `{"message":"hi"}`, http.StatusUnprocessableEntity, "context"},
		{"unknown source", `{"message":"hi","context":{"connected_sources":["mailchimp"]}}`, http.StatusUnprocessableEntity, "context.connected_sources[0]"},
		{"malformed json", `{"message":`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/chat/message", tt.payload)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())

			body := decodeBody(t, rec)
			assert.NotEmpty(t, body["detail"])
			if tt.field == "" {
				return
			}
			assert.Equal(t, "VALIDATION_ERROR", body["code"])
			details, ok := body["details"].([]interface{})
			require.True(t, ok)
			require.NotEmpty(t, details)
			assert.Equal(t, tt.field, details[0].(map[string]interface{})["field"])
		})
	}
}

func TestChatMessageEmptyTextIsAccepted(t *testing.T) {
	env := setupTestServer(t)

	rec := env.do(t, http.MethodPost, "/api/chat/message", `{"message":"","context":{"connected_sources":["facebook_page"]}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"type":"product_promotion"`)
}

func TestChatRateLimit(t *testing.T) {
	env := setupTestServer(t, func(cfg *config.Config) {
		enabled := true
		cfg.RateLimit.Enabled = &enabled
		cfg.RateLimit.Requests = 2
	})

	payload := `{"message":"hi","context":{}}`
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/chat/message", payload).Code)
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/chat/message", payload).Code)
	assert.Equal(t, http.StatusTooManyRequests, env.do(t, http.MethodPost, "/api/chat/message", payload).Code)

	// Data source routes are not limited.
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/api/data-sources", "").Code)
}

func TestCORS(t *testing.T) {
	env := setupTestServer(t)

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/chat/message", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		env.handler.ServeHTTP(rec, req)
		return rec
	}

	rec := preflight("http://localhost:3000")
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = preflight("https://evil.example.com")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	env := setupTestServer(t)
	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/api/data-sources", "").Code)

	rec := env.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "campaign_chat_http_request_duration_seconds")
	assert.Contains(t, rec.Body.String(), `route="/api/data-sources`)
}

func TestUnknownRoute(t *testing.T) {
	env := setupTestServer(t)

	rec := env.do(t, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Not Found"}`, rec.Body.String())
}

func TestSafeErrorMessage(t *testing.T) {
	canceled := fmt.Errorf("recommend: %w", context.Canceled)
	dialErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}

	assert.Equal(t, msgTimedOut, safeErrorMessage(http.StatusServiceUnavailable, canceled))
	assert.Equal(t, msgTimedOut, safeErrorMessage(http.StatusInternalServerError, context.DeadlineExceeded))
	assert.Equal(t, msgUnavailable, safeErrorMessage(http.StatusInternalServerError, dialErr))
	assert.Equal(t, msgInternal, safeErrorMessage(http.StatusInternalServerError, errors.New("boom")))
	assert.Equal(t, msgInternal, safeErrorMessage(http.StatusInternalServerError, nil))
	assert.Equal(t, "bad input", safeErrorMessage(http.StatusBadRequest, errors.New("bad input")))
}
