//go:build !trace

package common

//
// tracing_disabled.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
)

const TracingAvailable = false

func TraceLazyPrintf(_ context.Context, _ string, _ ...any) {}

func TraceErrorLazyPrintf(_ context.Context, _ string, _ ...any) {}

type EventLog struct{}

func NewEventLog(_, _ string) *EventLog {
	return &EventLog{}
}

func (e *EventLog) Printf(_ string, _ ...any) {}

func (e *EventLog) Errorf(_ string, _ ...any) {}

func (e *EventLog) Close() {}
