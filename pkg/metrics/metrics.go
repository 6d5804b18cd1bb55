// Package metrics holds the Prometheus collectors of the analysis engine.
package metrics

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// cache request results
const (
	Hit   = "hit"
	Miss  = "miss"
	Error = "error"
)

var (
	// Registry holds the engine collectors
	Registry = prometheus.NewRegistry()

	cacheRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bioforge",
			Subsystem: "cache",
			Name:      "requests_total",
			Help:      "Total number of result cache lookups.",
		},
		[]string{"op", "result"},
	)

	analysisDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bioforge",
			Subsystem: "analysis",
			Name:      "duration_seconds",
			Help:      "Duration of analysis operations, cache hits included.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		},
		[]string{"op"},
	)
)

func init() {
	Registry.MustRegister(cacheRequests, analysisDuration)
}

// RecordCache counts one lookup of op with result Hit, Miss or Error
func RecordCache(op, result string) {
	cacheRequests.WithLabelValues(op, result).Inc()
}

// ObserveDuration since start for op
func ObserveDuration(op string, start time.Time) {
	analysisDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// WriteSummary prints one line per series of the registry, sorted
func WriteSummary(w io.Writer) error {
	families, err := Registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	var lines []string
	for _, family := range families {
		for _, m := range family.GetMetric() {
			name, kv := family.GetName(), labels(m.GetLabel())
			switch family.GetType() {
			case dto.MetricType_COUNTER:
				lines = append(lines, fmt.Sprintf("%s%s\t%g", name, kv, m.GetCounter().GetValue()))
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				lines = append(lines, fmt.Sprintf("%s_count%s\t%d", name, kv, h.GetSampleCount()))
				lines = append(lines, fmt.Sprintf("%s_sum%s\t%g", name, kv, h.GetSampleSum()))
			}
		}
	}
	sort.Strings(lines)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func labels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	var kv = make([]string, len(pairs))
	for i, p := range pairs {
		kv[i] = fmt.Sprintf("%s=%q", p.GetName(), p.GetValue())
	}
	return "{" + strings.Join(kv, ",") + "}"
}
