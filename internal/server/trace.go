//go:build trace

package server

//
// trace.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"gitlab.com/kabes/go-ytdash/internal/common"
	"gitlab.com/kabes/go-ytdash/internal/config"
	xtrace "golang.org/x/net/trace"
)

// traceFamily group requests on /debug/requests page.
func traceFamily(request *http.Request) string {
	if request.Method == http.MethodGet {
		return "ytdash.get"
	}

	return "ytdash.change"
}

func newTracingMiddleware(cfg *config.ServerConf) func(http.Handler) http.Handler {
	xtrace.AuthRequest = cfg.AuthMgmtRequest

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if shouldSkipLogRequest(request) {
				next.ServeHTTP(writer, request)

				return
			}

			ctx := request.Context()
			reqid := "?"

			if id, ok := hlog.IDFromCtx(ctx); ok {
				reqid = id.String()
				pprof.SetGoroutineLabels(pprof.WithLabels(ctx, pprof.Labels(common.LogKeyReqID, reqid)))
			}

			tr := xtrace.New(traceFamily(request), request.Method+" "+request.URL.Path+" req_id="+reqid)
			defer tr.Finish()

			next.ServeHTTP(writer, request.WithContext(xtrace.NewContext(ctx, tr)))
		})
	}
}

func mountXTrace(group chi.Router, webroot string) {
	group.Get(webroot+"/debug/requests", xtrace.Traces)
	group.Get(webroot+"/debug/events", xtrace.Events)
}

//-------------------------------------------------------------

// FlightRecorderThreshold is minimal duration of request that trigger snapshot.
const FlightRecorderThreshold = 2 * time.Second

type frMiddleware struct {
	once sync.Once
	fr   *trace.FlightRecorder
}

func newFRMiddleware() func(http.Handler) http.Handler {
	frm := &frMiddleware{}

	frm.fr = trace.NewFlightRecorder(trace.FlightRecorderConfig{
		MinAge:   FlightRecorderThreshold,
		MaxBytes: 4 << 20, //nolint:mnd  // 4MB
	})

	if err := frm.fr.Start(); err != nil {
		log.Logger.Error().Err(err).Msgf("FlightRecorder: start error=%q", err)

		return func(next http.Handler) http.Handler {
			return next
		}
	}

	log.Logger.Warn().Msgf("FlightRecorder: enabled; threshold=%s", FlightRecorderThreshold)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			if frm.fr.Enabled() && time.Since(start) > FlightRecorderThreshold {
				go frm.captureSnapshot(r.Context())
			}
		})
	}
}

// captureSnapshot write only first slow request; recorder is stopped afterward.
func (f *frMiddleware) captureSnapshot(ctx context.Context) {
	f.once.Do(func() {
		logger := log.Logger

		reqid := "unk"
		if id, ok := hlog.IDFromCtx(ctx); ok {
			reqid = id.String()
		}

		fname := filepath.Join(os.TempDir(),
			"ytdash-"+time.Now().Format("20060102T150405")+"-"+reqid+".trace")

		fout, err := os.Create(fname) //nolint:gosec
		if err != nil {
			logger.Error().Err(err).Msgf("FlightRecorder: opening snapshot file %q error=%q", fname, err)

			return
		}
		defer fout.Close()

		if _, err = f.fr.WriteTo(fout); err != nil {
			logger.Error().Err(err).Msgf("FlightRecorder: writing snapshot to file %q error=%q", fname, err)

			return
		}

		f.fr.Stop()
		logger.Warn().Str(common.LogKeyReqID, reqid).
			Msgf("FlightRecorder: captured snapshot to %q for req_id=%s", fname, reqid)
	})
}
