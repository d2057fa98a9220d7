package metrics

import (
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// getTestMetrics returns metrics bound to a fresh registry so tests never collide
func getTestMetrics() (*Metrics, *prometheus.Registry) {
	registry := prometheus.NewRegistry()
	return NewWithRegistry(registry, zap.NewNop()), registry
}

func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := counter.Write(metric); err != nil {
		t.Fatalf("Failed to write counter metric: %v", err)
	}
	return metric.Counter.GetValue()
}

func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := gauge.Write(metric); err != nil {
		t.Fatalf("Failed to write gauge metric: %v", err)
	}
	return metric.Gauge.GetValue()
}

func TestMetricsInitialization(t *testing.T) {
	m, _ := getTestMetrics()

	assert.NotNil(t, m.HTTPRequestsTotal)
	assert.NotNil(t, m.HTTPRequestDuration)
	assert.NotNil(t, m.DBConnectionsOpen)
	assert.NotNil(t, m.DBQueryDuration)
	assert.NotNil(t, m.DBQueryErrors)
	assert.NotNil(t, m.PostsTotal)
	assert.NotNil(t, m.CommentsTotal)
	assert.NotNil(t, m.PostCreatedTotal)
	assert.NotNil(t, m.CommentCreatedTotal)
}

func TestMetricNames_SnakeCase(t *testing.T) {
	m, registry := getTestMetrics()
	// touch the vectors so they are exported
	m.RecordHTTPRequest("GET", "/api/posts", 200, time.Millisecond)
	m.RecordDBQuery("select", "posts", time.Millisecond, errors.New("boom"))

	families, err := registry.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)

	snake := regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	for _, f := range families {
		name := f.GetName()
		assert.True(t, snake.MatchString(name), "metric %q is not snake_case", name)
		assert.True(t, strings.HasPrefix(name, namespace+"_"), "metric %q lacks namespace", name)
		assert.NotEmpty(t, f.GetHelp(), "metric %q has no help text", name)
	}
}

func TestRecordHTTPRequest(t *testing.T) {
	m, _ := getTestMetrics()

	m.RecordHTTPRequest("POST", "/api/posts", 200, 10*time.Millisecond)
	m.RecordHTTPRequest("POST", "/api/posts", 201, 10*time.Millisecond)
	m.RecordHTTPRequest("GET", "/api/posts/:id", 404, 10*time.Millisecond)
	m.RecordHTTPRequest("GET", "", 404, 10*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/posts", "2xx")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/posts/:id", "4xx")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "4xx")))
}

func TestCategorizeStatus(t *testing.T) {
	tests := map[int]string{
		100: "unknown",
		200: "2xx",
		302: "3xx",
		400: "4xx",
		404: "4xx",
		500: "5xx",
		503: "5xx",
	}
	for code, want := range tests {
		assert.Equal(t, want, categorizeStatus(code), "code %d", code)
	}
}

func TestShouldSkipEndpoint(t *testing.T) {
	assert.True(t, ShouldSkipEndpoint("/metrics"))
	assert.True(t, ShouldSkipEndpoint("/health"))
	assert.True(t, ShouldSkipEndpoint("/ready"))
	assert.False(t, ShouldSkipEndpoint("/api/posts"))
}

func TestRecordDBQuery(t *testing.T) {
	m, _ := getTestMetrics()

	m.RecordDBQuery("INSERT", "posts", time.Millisecond, nil)
	m.RecordDBQuery("insert", "posts", time.Millisecond, errors.New("constraint"))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("insert", "posts")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.DBQueryDuration))
}

func TestUpdateDBStats(t *testing.T) {
	m, _ := getTestMetrics()

	m.UpdateDBStats(sql.DBStats{
		MaxOpenConnections: 25,
		OpenConnections:    4,
		InUse:              3,
		Idle:               1,
	})

	assert.Equal(t, float64(25), getGaugeValue(t, m.DBConnectionsMax))
	assert.Equal(t, float64(4), getGaugeValue(t, m.DBConnectionsOpen))
	assert.Equal(t, float64(3), getGaugeValue(t, m.DBConnectionsInUse))
	assert.Equal(t, float64(1), getGaugeValue(t, m.DBConnectionsIdle))

	// anything else is ignored
	m.UpdateDBStats("not stats")
	assert.Equal(t, float64(4), getGaugeValue(t, m.DBConnectionsOpen))
}

func TestSafeExecute_RecoversPanic(t *testing.T) {
	m, _ := getTestMetrics()

	assert.NotPanics(t, func() {
		m.safeExecute("test", func() { panic("boom") })
	})

	// a nil metrics field must not crash the caller either
	m.PostCreatedTotal = nil
	assert.NotPanics(t, m.IncrementPostCreated)
}
