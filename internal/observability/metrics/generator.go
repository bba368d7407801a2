package metrics

import (
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Config carries the constant labels attached to every metric.
type Config struct {
	ServiceName string
	Environment string
}

// GeneratorMetrics captures outcome metrics of the generate pipeline.
type GeneratorMetrics struct {
	generateTotal    *prometheus.CounterVec
	generateDuration *prometheus.HistogramVec
	validationErrors prometheus.Counter
	outputBytes      prometheus.Histogram
}

var (
	generatorMetricsOnce sync.Once
	generatorMetrics     *GeneratorMetrics
)

// Generator returns the process-wide generator metrics.
func Generator() *GeneratorMetrics {
	return GeneratorWithConfig(Config{})
}

// GeneratorWithConfig returns the process-wide generator metrics, creating
// them with cfg on first use.
func GeneratorWithConfig(cfg Config) *GeneratorMetrics {
	generatorMetricsOnce.Do(func() {
		generatorMetrics = newGeneratorMetrics(prometheus.DefaultRegisterer, cfg)
	})
	return generatorMetrics
}

// ResetGeneratorMetricsForTest clears the singleton between tests.
func ResetGeneratorMetricsForTest() {
	generatorMetricsOnce = sync.Once{}
	generatorMetrics = nil
}

func newGeneratorMetrics(registerer prometheus.Registerer, cfg Config) *GeneratorMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "qrbill"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}

	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	m := &GeneratorMetrics{
		generateTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "qrbill_generate_total",
			Help:        "Generate calls by result.",
			ConstLabels: constLabels,
		}, []string{"result"}),
		generateDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "qrbill_generate_duration_seconds",
			Help:        "Generate call duration.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"result"}),
		validationErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "qrbill_validation_errors_total",
			Help:        "Field-level validation errors across all calls.",
			ConstLabels: constLabels,
		}),
		outputBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "qrbill_output_bytes",
			Help:        "Size of generated documents.",
			Buckets:     prometheus.ExponentialBuckets(1024, 4, 8),
			ConstLabels: constLabels,
		}),
	}

	for _, collector := range []prometheus.Collector{
		m.generateTotal, m.generateDuration, m.validationErrors, m.outputBytes,
	} {
		if err := registerer.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				panic(err)
			}
		}
	}
	return m
}

// ObserveGenerate records the outcome of one generate call.
func (m *GeneratorMetrics) ObserveGenerate(result string, errorCount int, outputSize int, duration time.Duration) {
	if m == nil {
		return
	}
	m.generateTotal.WithLabelValues(result).Inc()
	m.generateDuration.WithLabelValues(result).Observe(duration.Seconds())
	if errorCount > 0 {
		m.validationErrors.Add(float64(errorCount))
	}
	if outputSize > 0 {
		m.outputBytes.Observe(float64(outputSize))
	}
}
