//go:build !trace

package server

//
// trace_disabled.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"gitlab.com/kabes/go-ytdash/internal/config"
)

func passthrough(next http.Handler) http.Handler {
	return next
}

func newTracingMiddleware(cfg *config.ServerConf) func(http.Handler) http.Handler {
	_ = cfg

	log.Logger.Warn().Msg("Tracing: not available in this build")

	return passthrough
}

func mountXTrace(group chi.Router, webroot string) {}

//-------------------------------------------------------------

func newFRMiddleware() func(http.Handler) http.Handler {
	log.Logger.Warn().Msg("FlightRecorder: not available in this build")

	return passthrough
}
