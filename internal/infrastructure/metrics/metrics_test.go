package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAgentSelection(t *testing.T) {
	before := testutil.ToFloat64(AgentSelections.WithLabelValues("fallback"))
	RecordAgentSelection("fallback")
	assert.Equal(t, before+1, testutil.ToFloat64(AgentSelections.WithLabelValues("fallback")))
}

func TestRecordTokens(t *testing.T) {
	beforePrompt := testutil.ToFloat64(TokensTotal.WithLabelValues("conversation", "prompt"))
	beforeCompletion := testutil.ToFloat64(TokensTotal.WithLabelValues("conversation", "completion"))

	RecordTokens("conversation", 10, 25)

	assert.Equal(t, beforePrompt+10, testutil.ToFloat64(TokensTotal.WithLabelValues("conversation", "prompt")))
	assert.Equal(t, beforeCompletion+25, testutil.ToFloat64(TokensTotal.WithLabelValues("conversation", "completion")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	RecordRequest("GET", "/api/furniture", "200", 0.01)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "furniture_api_requests_total")
}
