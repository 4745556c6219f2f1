package middleware

import (
	"net/http"
	"time"
)

// Observer — приёмник метрик запроса (реализует internal/metrics.Metrics).
type Observer interface {
	ObserveHTTP(method, route string, status int, dur time.Duration)
}

// Metrics учитывает запрос по шаблону маршрута chi (не по сырому пути).
func Metrics(o Observer) Middleware {
	return func(next http.Handler) http.Handler {
		if o == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)
			start := time.Now()
			next.ServeHTTP(sw, r)

			o.ObserveHTTP(r.Method, routePattern(r), sw.code(), time.Since(start))
		})
	}
}
