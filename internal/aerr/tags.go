package aerr

//
// tags.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

const (
	InternalError      = "internal error"
	ValidationError    = "validation error"
	DataError          = "data error"
	ConfigurationError = "configuration error"
	ConflictError      = "conflict error"

	// FetchError mark failed loading of the subscription list.
	FetchError = "fetch error"
	// FeedLoadError mark failed loading of videos.
	FeedLoadError = "feed load error"
	AddError      = "add error"
	UpdateError   = "update error"
	DeleteError   = "delete error"
	// ReloadError mark mutation that succeeded but later refresh of subscription list failed.
	ReloadError = "reload error"
)

var (
	ErrValidation  = New("validation error").WithTag(ValidationError)
	ErrInvalidConf = New("invalid configuration").WithTag(ConfigurationError)
)
