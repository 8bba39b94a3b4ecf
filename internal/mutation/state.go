package mutation

//
// state.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import "time"

// Kind of mutation.
type Kind string

const (
	KindAdd            Kind = "add"
	KindUpdateInterval Kind = "update-interval"
	KindDelete         Kind = "delete"
)

// State of mutation for (kind, target): Idle, Submitting, Succeeded or Failed.
type State interface {
	mutationState()
	String() string
}

type Idle struct{}

// Submitting - request sent to backend, waiting for result.
type Submitting struct {
	OpID  string
	Since time.Time
}

type Succeeded struct {
	Message string
	At      time.Time
	// RefreshErr is set when change was saved but subscription list reload failed.
	RefreshErr error
}

type Failed struct {
	Err error
	At  time.Time
}

func (Idle) mutationState()       {}
func (Submitting) mutationState() {}
func (Succeeded) mutationState()  {}
func (Failed) mutationState()     {}

func (Idle) String() string       { return "idle" }
func (Submitting) String() string { return "submitting" }
func (Succeeded) String() string  { return "succeeded" }
func (Failed) String() string     { return "failed" }

// InProgress return true when state is Submitting.
func InProgress(s State) bool {
	_, ok := s.(Submitting)

	return ok
}
