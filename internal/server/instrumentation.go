package server

//
// instrumentation.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const metricsNamespace = "ytdash"

//nolint:gochecknoglobals
var defaultDurationBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10}

// promMiddleware collect metrics of requests handled by one part of server (api, web).
type promMiddleware struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	responseSize    *prometheus.SummaryVec
	inFlight        prometheus.Gauge
}

func (m *promMiddleware) handler(next http.Handler) http.Handler {
	base := promhttp.InstrumentHandlerInFlight(m.inFlight, next)
	base = promhttp.InstrumentHandlerResponseSize(m.responseSize, base)
	base = promhttp.InstrumentHandlerDuration(m.requestDuration, base)
	base = promhttp.InstrumentHandlerCounter(m.requestsTotal, base)

	return base
}

// newPromMiddleware create middleware that register metrics labeled by handler `name`.
func newPromMiddleware(name string, buckets []float64) func(http.Handler) http.Handler {
	if buckets == nil {
		buckets = defaultDurationBuckets
	}

	reg := prometheus.WrapRegistererWith(prometheus.Labels{"handler": name}, prometheus.DefaultRegisterer)
	factory := promauto.With(reg)

	mw := promMiddleware{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "http_requests_total",
				Help:      "Number of HTTP requests.",
			}, []string{"method", "code"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "http_request_duration_seconds",
				Help:      "Latencies of HTTP requests.",
				Buckets:   buckets,
			},
			[]string{"method", "code"},
		),
		responseSize: factory.NewSummaryVec(
			prometheus.SummaryOpts{
				Namespace: metricsNamespace,
				Name:      "http_response_size_bytes",
				Help:      "Size of HTTP responses.",
			},
			[]string{"method", "code"},
		),
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "http_in_flight_requests",
			Help:      "Number of requests currently being served.",
		}),
	}

	return mw.handler
}

func newMetricsHandler() http.Handler {
	return promhttp.InstrumentMetricHandler(
		prometheus.DefaultRegisterer,
		promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
			DisableCompression: true,
			ErrorLog:           &promErrorLogger{},
		}),
	)
}

// promErrorLogger pass errors from metrics handler to zerolog.
type promErrorLogger struct{}

func (promErrorLogger) Println(v ...any) {
	log.Logger.Error().Msgf("Metrics: %s", fmt.Sprint(v...))
}
