package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhq/furniture-api/internal/config"
	"github.com/janhq/furniture-api/internal/domain/agent"
	"github.com/janhq/furniture-api/internal/domain/conversation"
	"github.com/janhq/furniture-api/internal/infrastructure/catalogdata"
	"github.com/janhq/furniture-api/internal/infrastructure/inference"
	"github.com/janhq/furniture-api/internal/interfaces/httpserver/handlers"
	"github.com/janhq/furniture-api/internal/utils/httpclients"
	"github.com/janhq/furniture-api/pkg/testhelpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig(baseURL, apiKey string) *config.Config {
	return &config.Config{
		ServiceName:        "furniture-api-test",
		Environment:        "test",
		HTTPPort:           8000,
		ShutdownTimeout:    time.Second,
		CORSAllowedOrigins: []string{"http://localhost:5173"},
		ProviderAPIKey:     apiKey,
		ProviderBaseURL:    baseURL,
		ProviderModel:      "moonshotai/Kimi-K2-Instruct",
		ProviderTimeout:    5 * time.Second,
	}
}

func newTestServer(t *testing.T, baseURL, apiKey string) *HTTPServer {
	t.Helper()
	return newTestServerWithConfig(t, testConfig(baseURL, apiKey))
}

func newTestServerWithConfig(t *testing.T, cfg *config.Config) *HTTPServer {
	t.Helper()
	log := zerolog.Nop()

	cat, err := catalogdata.Load()
	require.NoError(t, err)

	client := inference.NewChatCompletionClient(
		httpclients.NewClient("provider", cfg.ProviderTimeout, log),
		inference.Options{BaseURL: cfg.ProviderBaseURL, APIKey: cfg.ProviderAPIKey, Model: cfg.ProviderModel},
		log,
	)
	provider := handlers.NewProvider(
		handlers.NewFurnitureHandler(cat),
		handlers.NewConversationHandler(conversation.NewService(client, cfg.ProviderTimeout, nil, log)),
		handlers.NewAgentHandler(agent.NewService(client, cat, cfg.ProviderTimeout, nil, log)),
	)
	return New(cfg, log, provider)
}

func do(t *testing.T, srv *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestRootBannerAndHealth(t *testing.T) {
	srv := newTestServer(t, "http://127.0.0.1:1/v1", "")

	rec := do(t, srv, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Furniture API Server"}`, rec.Body.String())

	rec = do(t, srv, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, srv, http.MethodGet, "/readyz", "")
	assert.Equal(t, false, decode(t, rec)["provider_configured"])
}

func TestListFurnitureIsStable(t *testing.T) {
	srv := newTestServer(t, "http://127.0.0.1:1/v1", "")

	first := do(t, srv, http.MethodGet, "/api/furniture", "")
	second := do(t, srv, http.MethodGet, "/api/furniture", "")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())

	var items []map[string]any
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &items))
	require.Len(t, items, 16)
	for i, item := range items {
		assert.NotEmpty(t, item["name"], "item %d", i)
		assert.GreaterOrEqual(t, item["price"].(float64), float64(0), "item %d", i)
		props, ok := item["properties"].(map[string]any)
		require.True(t, ok, "item %d", i)
		for _, key := range []string{"type", "style", "material", "color", "dimensions"} {
			assert.Contains(t, props, key, "item %d", i)
		}
	}
}

func TestSelectedFurniture(t *testing.T) {
	srv := newTestServer(t, "http://127.0.0.1:1/v1", "")

	rec := do(t, srv, http.MethodPost, "/api/selected-furniture", `{"selected_indices":[0,3,20,-1]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Mid-Century Sofa", items[0]["name"])
	assert.EqualValues(t, 0, items[0]["original_index"])
	assert.Equal(t, "Wooden Dining Chair", items[1]["name"])
	assert.EqualValues(t, 3, items[1]["original_index"])

	rec = do(t, srv, http.MethodPost, "/api/selected-furniture", `{"selected_indices":[]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestMalformedBodiesAreRejected(t *testing.T) {
	srv := newTestServer(t, "http://127.0.0.1:1/v1", "key")

	tests := []struct {
		name string
		path string
		body string
	}{
		{"not json", "/api/run-agent", "house"},
		{"missing house prompt", "/api/run-agent", `{}`},
		{"missing indices", "/api/selected-furniture", `{}`},
		{"indices wrong type", "/api/selected-furniture", `{"selected_indices":"0,1"}`},
		{"missing step", "/api/conversation", `{"user_message":"hi"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, srv, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "error", decode(t, rec)["status"])
		})
	}
}

func TestDecodeErrorsAreNotEchoed(t *testing.T) {
	srv := newTestServer(t, "http://127.0.0.1:1/v1", "key")

	for _, body := range []string{"house", `{"selected_indices":"0,1"}`} {
		rec := do(t, srv, http.MethodPost, "/api/selected-furniture", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"status":"error","message":"invalid request body"}`, rec.Body.String())
	}
}

func TestConversationAcceptsZeroValues(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		prefix string
	}{
		{"step zero", `{"user_message":"hi","current_step":0}`, "Step 0 of 8. User said: 'hi'. "},
		{"empty message", `{"user_message":"","current_step":1}`, "Step 1 of 8. User said: ''. "},
		{"negative step", `{"user_message":"hi","current_step":-1}`, "Step -1 of 8. "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := testhelpers.NewFakeProvider(t, testhelpers.ReplyWith("Tell me more."))
			srv := newTestServer(t, fake.URL(), "key")

			rec := do(t, srv, http.MethodPost, "/api/conversation", tt.body)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"status":"success","ai_response":"Tell me more.","advance_step":false}`, rec.Body.String())
			assert.True(t, strings.HasPrefix(fake.LastRequest().Messages[1].Content, tt.prefix))
		})
	}
}

func TestRunAgentAcceptsEmptyPrompt(t *testing.T) {
	fake := testhelpers.NewFakeProvider(t, testhelpers.ReplyWith("[1, 3]"))
	srv := newTestServer(t, fake.URL(), "key")

	rec := do(t, srv, http.MethodPost, "/api/run-agent", `{"house_prompt":""}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"complete","selected_indices":[1,3],"ai_reasoning":"[1, 3]"}`, rec.Body.String())
	assert.Equal(t, 1, fake.Calls())
}

func TestConversationWithoutCredential(t *testing.T) {
	fake := testhelpers.NewFakeProvider(t, testhelpers.ReplyWith("unused"))
	srv := newTestServer(t, fake.URL(), "")

	rec := do(t, srv, http.MethodPost, "/api/conversation",
		`{"user_message":"hi","conversation_history":[],"current_step":1,"conversation_data":{}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"error","advance_step":false,"message":"API key not configured"}`, rec.Body.String())
	assert.Equal(t, 0, fake.Calls())
}

func TestConversationRelaysReply(t *testing.T) {
	fake := testhelpers.NewFakeProvider(t, testhelpers.ReplyWith("Lovely! How big is the room?"))
	srv := newTestServer(t, fake.URL(), "key")

	rec := do(t, srv, http.MethodPost, "/api/conversation",
		`{"user_message":"I am redoing my den","conversation_history":[{"role":"user","content":"x"}],"current_step":2,"conversation_data":{}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","ai_response":"Lovely! How big is the room?","advance_step":false}`, rec.Body.String())

	sent := fake.LastRequest()
	require.Len(t, sent.Messages, 2)
	assert.True(t, strings.HasPrefix(sent.Messages[1].Content, "Step 2 of 8. User said: 'I am redoing my den'. "))
	assert.Equal(t, "key", fake.LastToken())
}

func TestConversationUpstreamFailure(t *testing.T) {
	fake := testhelpers.NewFakeProvider(t, testhelpers.FailWith(http.StatusTooManyRequests, "slow down"))
	srv := newTestServer(t, fake.URL(), "key")

	rec := do(t, srv, http.MethodPost, "/api/conversation", `{"user_message":"hi","current_step":1}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"error","advance_step":false,"message":"AI API error: 429"}`, rec.Body.String())
}

func TestRunAgentFiltersSelection(t *testing.T) {
	fake := testhelpers.NewFakeProvider(t, testhelpers.ReplyWith("[0, 2, 99, 1.5, 7]"))
	srv := newTestServer(t, fake.URL(), "key")

	rec := do(t, srv, http.MethodPost, "/api/run-agent", `{"house_prompt":"Small Scandinavian studio"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"complete","selected_indices":[0,2,7],"ai_reasoning":"[0, 2, 99, 1.5, 7]"}`, rec.Body.String())
	assert.Contains(t, fake.LastRequest().Messages[1].Content, `"Small Scandinavian studio"`)
}

func TestRunAgentFallback(t *testing.T) {
	fake := testhelpers.NewFakeProvider(t, testhelpers.ReplyWith("Sure! I'd go with the sofa."))
	srv := newTestServer(t, fake.URL(), "key")

	rec := do(t, srv, http.MethodPost, "/api/run-agent", `{"house_prompt":"loft"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"complete","selected_indices":[0,1,2,4,5,8,9,13],"ai_reasoning":"Used default selection due to parsing error"}`, rec.Body.String())
}

func TestRunAgentTransportFailure(t *testing.T) {
	srv := newTestServer(t, "http://127.0.0.1:1/v1", "key")

	rec := do(t, srv, http.MethodPost, "/api/run-agent", `{"house_prompt":"loft"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"AI agent processing failed"}`, rec.Body.String())
}

func TestCORSHeaderForFrontend(t *testing.T) {
	srv := newTestServer(t, "http://127.0.0.1:1/v1", "")

	req := httptest.NewRequest(http.MethodGet, "/api/furniture", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHandlerServesOverHTTP(t *testing.T) {
	srv := newTestServer(t, "http://127.0.0.1:1/v1", "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	require.NoError(t, testhelpers.WaitForHealth(ts.URL, time.Second))

	resp, err := http.Get(ts.URL + "/api/furniture")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSlowProviderTimesOut(t *testing.T) {
	fake := testhelpers.NewFakeProvider(t, testhelpers.Delayed(500*time.Millisecond, testhelpers.ReplyWith("too late")))
	cfg := testConfig(fake.URL(), "key")
	cfg.ProviderTimeout = 50 * time.Millisecond
	srv := newTestServerWithConfig(t, cfg)

	rec := do(t, srv, http.MethodPost, "/api/conversation", `{"user_message":"hi","current_step":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"error","advance_step":false,"message":"Failed to process conversation"}`, rec.Body.String())

	rec = do(t, srv, http.MethodPost, "/api/run-agent", `{"house_prompt":"loft"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"AI agent processing failed"}`, rec.Body.String())
}
