// Package view build presentation model from components state.
package view

//
// compose.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"fmt"
	"time"
	"unicode/utf8"

	"gitlab.com/kabes/go-ytdash/internal/aerr"
	"gitlab.com/kabes/go-ytdash/internal/feed"
	"gitlab.com/kabes/go-ytdash/internal/formats"
	"gitlab.com/kabes/go-ytdash/internal/model"
	"gitlab.com/kabes/go-ytdash/internal/mutation"
	"gitlab.com/kabes/go-ytdash/internal/registry"
)

// LongSummaryLen is number of characters above which summary is collapsed.
const LongSummaryLen = 100

const (
	defaultFetchError = "Failed to fetch available channels."
	defaultFeedError  = "Failed to fetch videos."
	defaultOpError    = "Operation failed."
)

type Input struct {
	Registry registry.Snapshot
	Feed     feed.Snapshot
	Ops      mutation.Snapshot
	// EditID is id of subscription with open interval editor.
	EditID string
}

// Compose build view model. It has no side effects.
func Compose(in Input, now time.Time) Model {
	m := Model{
		Registry:      composeRegistry(&in.Registry),
		Options:       make([]Option, 0, len(in.Registry.Subscriptions)),
		Subscriptions: make([]SubscriptionRow, 0, len(in.Registry.Subscriptions)),
		AddForm:       composeForm(in.Ops.Add),
	}

	for _, sub := range in.Registry.Subscriptions {
		m.Options = append(m.Options, Option{
			ID:       sub.ID,
			Label:    OptionLabel(&sub),
			Selected: sub.ID == in.Registry.SelectedID,
		})

		m.Subscriptions = append(m.Subscriptions, SubscriptionRow{
			ID:            sub.ID,
			Title:         sub.DisplayTitle(),
			Kind:          sub.Kind.String(),
			Interval:      formats.Interval(sub.FetchInterval),
			IntervalSec:   sub.FetchInterval,
			Editing:       sub.ID == in.EditID,
			Update:        composeForm(in.Ops.Updates[sub.ID]),
			Delete:        composeForm(in.Ops.Deletes[sub.ID]),
			VideoCount:    sub.VideoCount,
			NewVideoCount: sub.NewVideoCount,
		})
	}

	if in.Registry.SelectedID != "" {
		sub, ok := in.Registry.Selected()
		m.Selected = composeSelected(in.Registry.SelectedID, &sub, ok, now)

		if ok {
			m.Feed = composeFeed(&in.Feed, &sub, now)
		}
	}

	m.Pending = m.Registry.Loading || m.AddForm.Submitting || (m.Feed != nil && m.Feed.Loading)

	for _, row := range m.Subscriptions {
		m.Pending = m.Pending || row.Update.Submitting || row.Delete.Submitting
	}

	return m
}

// OptionLabel format subscription as "<title or id> (N videos, M new)".
func OptionLabel(sub *model.Subscription) string {
	return fmt.Sprintf("%s (%d videos, %d new)", sub.DisplayTitle(), sub.VideoCount, sub.NewVideoCount)
}

//-------------------------------------------------------------

func composeRegistry(snap *registry.Snapshot) RegistryView {
	rv := RegistryView{}

	switch state := snap.State.(type) {
	case registry.Loading:
		rv.Loading = true
	case registry.Failed:
		rv.Error = aerr.GetUserMessageOr(state.Err, defaultFetchError)
	case registry.Idle:
	}

	rv.Empty = snap.Loaded && !rv.Loading && rv.Error == "" && len(snap.Subscriptions) == 0

	if snap.Loaded {
		rv.LoadedAt = formats.DateTime(snap.LoadedAt)
	}

	return rv
}

func composeSelected(id string, sub *model.Subscription, known bool, now time.Time) *SelectedView {
	if !known {
		return &SelectedView{ID: id}
	}

	return &SelectedView{
		ID:            sub.ID,
		Known:         true,
		SourceKey:     sub.SourceKey,
		Title:         sub.DisplayTitle(),
		Kind:          sub.Kind.String(),
		Link:          sub.Link,
		VideoCount:    sub.VideoCount,
		NewVideoCount: sub.NewVideoCount,
		FetchInterval: formats.Interval(sub.FetchInterval),
		LastUpdated:   formats.RelativeTime(sub.LastVideoUpdatedAt, now),
		LastFetched:   formats.RelativeTime(sub.LastFetchedAt, now),
		LastViewed:    formats.DateTime(sub.LastViewedAt),
	}
}

func composeFeed(snap *feed.Snapshot, sub *model.Subscription, now time.Time) *FeedView {
	fv := &FeedView{}

	// state of other subscription (e.g. load started before selection changed) is not presented
	if snap.State != nil && snap.State.SourceKey() == sub.SourceKey {
		switch state := snap.State.(type) {
		case feed.Loading:
			fv.Loading = true
		case feed.Failed:
			fv.Error = aerr.GetUserMessageOr(state.Err, defaultFeedError)
		case feed.Loaded, feed.Empty:
		}
	}

	videos, ok := snap.VideosFor(sub.SourceKey)
	if !ok {
		fv.Loading = fv.Loading || fv.Error == ""
		fv.Videos = []VideoView{}

		return fv
	}

	fv.Videos = make([]VideoView, 0, len(videos))
	for _, v := range videos {
		fv.Videos = append(fv.Videos, NewVideoView(&v, sub.LastViewedAt, now))
	}

	fv.Empty = len(fv.Videos) == 0 && !fv.Loading && fv.Error == ""

	return fv
}

// NewVideoView prepare video for presentation; video is new when published after lastViewed.
func NewVideoView(v *model.Video, lastViewed, now time.Time) VideoView {
	vv := VideoView{
		ID:           v.ID,
		Title:        v.Title,
		Author:       v.Author,
		AuthorURL:    v.AuthorChannelURL,
		Link:         v.Link,
		Thumbnail:    v.ThumbnailURL,
		Summary:      v.Summary,
		LongSummary:  utf8.RuneCountInString(v.Summary) > LongSummaryLen,
		Published:    formats.DateTime(v.PublishedAt),
		PublishedAgo: formats.RelativeTime(v.PublishedAt, now),
		Duration:     formats.DurationPlaceholder,
		New:          v.IsNewSince(lastViewed),
	}

	if v.HasDuration() {
		vv.Duration = formats.Duration(v.Duration)
	}

	if !v.UpdatedAt.IsZero() && !v.UpdatedAt.Equal(v.PublishedAt) {
		vv.Updated = formats.DateTime(v.UpdatedAt)
	}

	return vv
}

func composeForm(state mutation.State) FormState {
	switch s := state.(type) {
	case mutation.Submitting:
		return FormState{Submitting: true}
	case mutation.Succeeded:
		fs := FormState{Message: s.Message}
		if s.RefreshErr != nil {
			fs.Warning = aerr.GetUserMessageOr(s.RefreshErr, defaultFetchError)
		}

		return fs
	case mutation.Failed:
		return FormState{Error: aerr.GetUserMessageOr(s.Err, defaultOpError)}
	default:
		return FormState{}
	}
}
