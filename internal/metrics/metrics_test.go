package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ObserveDecode(OutcomeSuccess, 0.2)
	m.ObserveDecode(OutcomeSuccess, 0.1)
	m.ObserveDecode(OutcomeTransport, 0)
	m.Read("A")
	m.Rejected("B")
	m.Accepted("A")
	m.SetHistorySize(7)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.decodes.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.decodes.WithLabelValues(OutcomeTransport)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.scanReads.WithLabelValues("rejected")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.historySize))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveDecode(OutcomeDecodeFail, 0)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `vindecoder_decode_requests_total{outcome="decode_failed"} 1`)
}
