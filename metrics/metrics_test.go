package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerExposesCollectors(t *testing.T) {
	PageViews.WithLabelValues("dashboard").Inc()
	Exports.WithLabelValues("parts").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `fleetdash_page_views_total{page="dashboard"}`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(LiveTicks)
	LiveTicks.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(LiveTicks))

	SSEClients.Set(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(SSEClients))
	SSEClients.Set(0)
}
