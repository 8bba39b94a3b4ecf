package registry

//
// state.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

// State is loading state of the registry: Idle, Loading or Failed.
type State interface {
	registryState()
	String() string
}

// Idle - no reload in progress; last reload (if any) succeeded.
type Idle struct{}

// Loading - reload in progress.
type Loading struct{}

// Failed - last reload failed; previous subscriptions are kept.
type Failed struct {
	Err error
}

func (Idle) registryState()    {}
func (Loading) registryState() {}
func (Failed) registryState()  {}

func (Idle) String() string    { return "idle" }
func (Loading) String() string { return "loading" }
func (Failed) String() string  { return "failed" }
