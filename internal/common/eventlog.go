package common

//
// eventlog.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import "context"

type ctxEventLogKey struct{}

// ContextEventLog return event log attached to context or nil.
func ContextEventLog(ctx context.Context) *EventLog {
	value, ok := ctx.Value(ctxEventLogKey{}).(*EventLog)
	if ok {
		return value
	}

	return nil
}

// ContextWithEventLog create context with event log.
func ContextWithEventLog(ctx context.Context, eventlog *EventLog) context.Context {
	return context.WithValue(ctx, ctxEventLogKey{}, eventlog)
}

// NewCtxEventLog create new event log and put it into context. Returned func close log.
func NewCtxEventLog(ctx context.Context, family, title string) (context.Context, func()) {
	e := NewEventLog(family, title)

	return ContextWithEventLog(ctx, e), e.Close
}

func EventLogPrintf(ctx context.Context, format string, a ...any) {
	if e := ContextEventLog(ctx); e != nil {
		e.Printf(format, a...)
	}
}

func EventLogErrorf(ctx context.Context, format string, a ...any) {
	if e := ContextEventLog(ctx); e != nil {
		e.Errorf(format, a...)
	}
}
