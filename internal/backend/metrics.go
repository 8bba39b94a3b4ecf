package backend

//
// metrics.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//nolint:gochecknoglobals
var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ytdash_backend_requests_total",
			Help: "Number of requests sent to the backend.",
		},
		[]string{"code", "method"},
	)
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ytdash_backend_request_duration_seconds",
			Help:    "Latencies of requests sent to the backend.",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method"},
	)
	inFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ytdash_backend_in_flight_requests",
		Help: "Number of requests to the backend currently in progress.",
	})
)

func instrumentedTransport(next http.RoundTripper) http.RoundTripper {
	rt := promhttp.InstrumentRoundTripperInFlight(inFlight, next)
	rt = promhttp.InstrumentRoundTripperDuration(requestDuration, rt)
	rt = promhttp.InstrumentRoundTripperCounter(requestsTotal, rt)

	return rt
}
