package common

//
// Common application errors
//
// errors.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"errors"

	"gitlab.com/kabes/go-ytdash/internal/aerr"
)

// Backend related errors; cause is attached by aerr.ApplyFor.
var (
	ErrFetch = aerr.New("load subscriptions failed").
			WithTag(aerr.FetchError).
			WithUserMsg("Failed to fetch available channels.")
	ErrFeedLoad = aerr.New("load videos failed").
			WithTag(aerr.FeedLoadError).
			WithUserMsg("Failed to fetch videos. Please check the channel and ensure the API is running.")
	ErrAdd = aerr.New("add subscription failed").
		WithTag(aerr.AddError).
		WithUserMsg("Failed to add subscription.")
	ErrUpdate = aerr.New("update subscription failed").
			WithTag(aerr.UpdateError).
			WithUserMsg("Failed to update fetch interval.")
	ErrDelete = aerr.New("delete subscription failed").
			WithTag(aerr.DeleteError).
			WithUserMsg("Failed to delete subscription.")
	ErrMarkViewed = aerr.New("mark viewed failed").
			WithTag(aerr.UpdateError)
	ErrReloadAfterMutation = aerr.New("reload subscriptions after change failed").
				WithTag(aerr.ReloadError).
				WithUserMsg("Change saved, but the subscription list could not be refreshed.")
	ErrInvalidResponse = aerr.New("invalid backend response").
				WithTag(aerr.DataError)
)

// Validation errors.
var (
	ErrEmptyURL = aerr.New("empty url").
			WithTag(aerr.ValidationError).
			WithUserMsg("Channel or playlist URL can't be empty.")
	ErrInvalidURL = aerr.New("invalid url").
			WithTag(aerr.ValidationError).
			WithUserMsg("Invalid channel or playlist URL.")
	ErrInvalidInterval = aerr.New("invalid interval").
				WithTag(aerr.ValidationError).
				WithUserMsg("Fetch interval must be a number of seconds.")
	ErrUnknownSubscription = aerr.New("unknown subscription").
				WithTag(aerr.ValidationError).
				WithUserMsg("Unknown subscription.")
	ErrInvalidSourceKey = aerr.New("invalid source key").
				WithTag(aerr.DataError)
	ErrDeleteNotConfirmed = aerr.New("delete not confirmed").
				WithTag(aerr.ValidationError).
				WithUserMsg("Deleting subscription require confirmation.")
)

var ErrOperationInProgress = aerr.New("operation in progress").
	WithTag(aerr.ConflictError).
	WithUserMsg("Operation already in progress.")

// ErrSuperseded is returned when result of request was dropped because newer request was started.
var ErrSuperseded = errors.New("request superseded")
