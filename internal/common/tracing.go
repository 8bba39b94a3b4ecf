//go:build trace

package common

//
// tracing.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"runtime/trace"
	"strings"

	xtrace "golang.org/x/net/trace"
)

const TracingAvailable = true

//-------------------------------------------------------------

func TraceLazyPrintf(ctx context.Context, format string, a ...any) {
	if trace.IsEnabled() {
		cat, _, _ := strings.Cut(format, ":")
		trace.Logf(ctx, cat, format, a...)
	}

	if tr, ok := xtrace.FromContext(ctx); ok && tr != nil {
		tr.LazyPrintf(format, a...)
	}
}

func TraceErrorLazyPrintf(ctx context.Context, format string, a ...any) {
	if trace.IsEnabled() {
		cat, _, _ := strings.Cut(format, ":")
		trace.Logf(ctx, "error "+cat, format, a...)
	}

	if tr, ok := xtrace.FromContext(ctx); ok && tr != nil {
		tr.LazyPrintf(format, a...)
		tr.SetError()
	}
}

//-------------------------------------------------------------

type EventLog struct {
	events xtrace.EventLog
}

func NewEventLog(family, title string) *EventLog {
	return &EventLog{xtrace.NewEventLog(family, title)}
}

func (e *EventLog) Printf(format string, a ...any) {
	if e != nil && e.events != nil {
		e.events.Printf(format, a...)
	}
}

func (e *EventLog) Errorf(format string, a ...any) {
	if e != nil && e.events != nil {
		e.events.Errorf(format, a...)
	}
}

func (e *EventLog) Close() {
	if e != nil && e.events != nil {
		e.events.Finish()
	}
}
