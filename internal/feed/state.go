package feed

//
// state.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import "time"

// State of the cache: Empty, Loading, Loaded or Failed.
type State interface {
	feedState()
	// SourceKey return key of subscription the state refers to; empty for Empty.
	SourceKey() string
	String() string
}

type Empty struct{}

type Loading struct {
	Key   string
	Since time.Time
}

type Loaded struct {
	Key       string
	FetchedAt time.Time
}

// Failed - last load failed; cached videos (if any) are not changed.
type Failed struct {
	Key string
	Err error
}

func (Empty) feedState()   {}
func (Loading) feedState() {}
func (Loaded) feedState()  {}
func (Failed) feedState()  {}

func (Empty) SourceKey() string     { return "" }
func (s Loading) SourceKey() string { return s.Key }
func (s Loaded) SourceKey() string  { return s.Key }
func (s Failed) SourceKey() string  { return s.Key }

func (Empty) String() string   { return "empty" }
func (Loading) String() string { return "loading" }
func (Loaded) String() string  { return "loaded" }
func (Failed) String() string  { return "failed" }
