package model

//
// videos.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"cmp"
	"slices"
	"time"
)

// DurationUnknown mark video without known duration (live streams, premieres).
const DurationUnknown = -1

type Video struct {
	ID               string
	Title            string
	Author           string
	AuthorChannelURL string
	Link             string
	ThumbnailURL     string
	Summary          string
	PublishedAt      time.Time
	UpdatedAt        time.Time
	// Duration in seconds; negative when unknown.
	Duration int
}

// IsNewSince report video published strictly after lastViewed. Zero lastViewed mean never
// viewed and then no video is marked as new.
func (v *Video) IsNewSince(lastViewed time.Time) bool {
	if lastViewed.IsZero() {
		return false
	}

	return v.PublishedAt.After(lastViewed)
}

func (v *Video) HasDuration() bool {
	return v.Duration >= 0
}

// SortVideosByPublished sort videos newest first; order of videos with equal date is kept.
func SortVideosByPublished(videos []Video) {
	slices.SortStableFunc(videos, func(a, b Video) int {
		return cmp.Compare(b.PublishedAt.UnixNano(), a.PublishedAt.UnixNano())
	})
}
