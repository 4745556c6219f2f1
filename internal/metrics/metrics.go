// metrics — прометеевские метрики HTTP-слоя и уборщика вложений.
//
// Коллекторы регистрируются в переданном Registerer (в main — собственный реестр
// вместе с Go/process коллекторами), отдаются на отдельном листенере /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "social"

// Metrics — набор коллекторов сервиса.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	swept    prometheus.Counter
}

// New создаёт коллекторы и регистрирует их в reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		swept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "media",
			Name:      "orphans_removed_total",
			Help:      "Unattached media removed by the janitor.",
		}),
	}

	reg.MustRegister(m.requests, m.duration, m.swept)

	return m
}

// NewRegistry — реестр с коллекторами Go-рантайма и процесса.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// ObserveHTTP учитывает один обработанный запрос.
// route — шаблон маршрута chi, а не сырой путь (ограничиваем кардинальность).
func (m *Metrics) ObserveHTTP(method, route string, status int, dur time.Duration) {
	if route == "" {
		route = "unmatched"
	}

	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(dur.Seconds())
}

// MediaSwept учитывает удалённые уборщиком вложения.
func (m *Metrics) MediaSwept(n int) {
	if n > 0 {
		m.swept.Add(float64(n))
	}
}
