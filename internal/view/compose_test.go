package view

//
// compose_test.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"errors"
	"strings"
	"testing"
	"time"

	"gitlab.com/kabes/go-ytdash/internal/aerr"
	"gitlab.com/kabes/go-ytdash/internal/assert"
	"gitlab.com/kabes/go-ytdash/internal/common"
	"gitlab.com/kabes/go-ytdash/internal/feed"
	"gitlab.com/kabes/go-ytdash/internal/formats"
	"gitlab.com/kabes/go-ytdash/internal/model"
	"gitlab.com/kabes/go-ytdash/internal/mutation"
	"gitlab.com/kabes/go-ytdash/internal/registry"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func testSubs() []model.Subscription {
	return []model.Subscription{
		{
			ID: "UCa", SourceKey: "yt:channel:UCa", Kind: model.KindChannel, Title: "Chan A",
			VideoCount: 10, NewVideoCount: 2, FetchInterval: 300,
			LastViewedAt:       testNow.Add(-24 * time.Hour),
			LastVideoUpdatedAt: testNow.Add(-3 * time.Hour),
		},
		{
			ID: "PLb", SourceKey: "yt:playlist:PLb", Kind: model.KindPlaylist,
			VideoCount: 1, FetchInterval: 5400,
		},
	}
}

func loadedRegistry(selected string) registry.Snapshot {
	return registry.Snapshot{
		Subscriptions: testSubs(),
		SelectedID:    selected,
		State:         registry.Idle{},
		Loaded:        true,
		LoadedAt:      testNow,
	}
}

func TestComposeOptions(t *testing.T) {
	m := Compose(Input{Registry: loadedRegistry("PLb"), Feed: feed.Snapshot{State: feed.Empty{}}}, testNow)

	assert.Equal(t, m.Options, []Option{
		{ID: "UCa", Label: "Chan A (10 videos, 2 new)"},
		{ID: "PLb", Label: "PLb (1 videos, 0 new)", Selected: true},
	})
	assert.False(t, m.Registry.Loading)
	assert.False(t, m.Registry.Empty)
	assert.Equal(t, m.Registry.Error, "")

	assert.Len(t, m.Subscriptions, 2)
	assert.Equal(t, m.Subscriptions[1].Interval, "1h30m")
	assert.Equal(t, m.Subscriptions[1].Kind, "playlist")
}

func TestComposeRegistryStates(t *testing.T) {
	snap := registry.Snapshot{State: registry.Loading{}}
	m := Compose(Input{Registry: snap}, testNow)
	assert.True(t, m.Registry.Loading)
	assert.False(t, m.Registry.Empty)
	assert.True(t, m.Pending)

	snap = registry.Snapshot{State: registry.Idle{}, Loaded: true}
	m = Compose(Input{Registry: snap}, testNow)
	assert.True(t, m.Registry.Empty)
	assert.False(t, m.Pending)

	// failed reload keep previous list
	snap = loadedRegistry("")
	snap.State = registry.Failed{Err: aerr.ApplyFor(common.ErrFetch, errors.New("connection refused"))}
	m = Compose(Input{Registry: snap}, testNow)
	assert.Equal(t, m.Registry.Error, "Failed to fetch available channels.")
	assert.Len(t, m.Options, 2)
	assert.False(t, m.Registry.Empty)
}

func TestComposeSelectedUnknown(t *testing.T) {
	snap := loadedRegistry("UCgone")
	m := Compose(Input{Registry: snap, Feed: feed.Snapshot{State: feed.Empty{}}}, testNow)

	assert.True(t, m.Selected != nil)
	assert.False(t, m.Selected.Known)
	assert.Equal(t, m.Selected.ID, "UCgone")
	assert.True(t, m.Feed == nil)
}

func TestComposeFeed(t *testing.T) {
	videos := []model.Video{
		{
			ID: "v1", Title: "Newest", PublishedAt: testNow.Add(-2 * time.Hour), Duration: 3725,
			Summary: strings.Repeat("x", 101),
		},
		{ID: "v2", PublishedAt: testNow.Add(-24*time.Hour + time.Second), Duration: model.DurationUnknown},
		{ID: "v3", PublishedAt: testNow.Add(-24*time.Hour - time.Second), Duration: 0, Summary: "short"},
	}

	in := Input{
		Registry: loadedRegistry("UCa"),
		Feed: feed.Snapshot{
			State:  feed.Loaded{Key: "yt:channel:UCa", FetchedAt: testNow},
			Key:    "yt:channel:UCa",
			Videos: videos,
		},
	}

	m := Compose(in, testNow)

	assert.True(t, m.Selected.Known)
	assert.Equal(t, m.Selected.Title, "Chan A")
	assert.Equal(t, m.Selected.LastUpdated, "3h ago")
	assert.Equal(t, m.Selected.FetchInterval, "5m")

	fv := m.Feed
	assert.False(t, fv.Loading)
	assert.False(t, fv.Empty)
	assert.Len(t, fv.Videos, 3)

	v1, v2, v3 := fv.Videos[0], fv.Videos[1], fv.Videos[2]
	assert.Equal(t, v1.Duration, "1:02:05")
	assert.True(t, v1.LongSummary)
	assert.Equal(t, v1.PublishedAgo, "2h ago")
	assert.Equal(t, v1.Published, formats.DateTime(videos[0].PublishedAt))
	assert.True(t, v1.New)

	// published one second after last view is new, one second before is not
	assert.Equal(t, v2.Duration, formats.DurationPlaceholder)
	assert.True(t, v2.New)
	assert.Equal(t, v3.Duration, "0:00")
	assert.False(t, v3.New)
	assert.False(t, v3.LongSummary)
}

func TestComposeFeedNeverViewed(t *testing.T) {
	reg := loadedRegistry("PLb")
	in := Input{
		Registry: reg,
		Feed: feed.Snapshot{
			State:  feed.Loaded{Key: "yt:playlist:PLb"},
			Key:    "yt:playlist:PLb",
			Videos: []model.Video{{ID: "v1", PublishedAt: testNow}},
		},
	}

	m := Compose(in, testNow)
	assert.False(t, m.Feed.Videos[0].New)
}

func TestComposeFeedOtherKey(t *testing.T) {
	// cached videos of other subscription are never shown
	in := Input{
		Registry: loadedRegistry("PLb"),
		Feed: feed.Snapshot{
			State:  feed.Loaded{Key: "yt:channel:UCa"},
			Key:    "yt:channel:UCa",
			Videos: []model.Video{{ID: "v1"}},
		},
	}

	m := Compose(in, testNow)
	assert.Len(t, m.Feed.Videos, 0)
	assert.True(t, m.Feed.Loading)
	assert.False(t, m.Feed.Empty)
}

func TestComposeFeedStates(t *testing.T) {
	in := Input{
		Registry: loadedRegistry("UCa"),
		Feed:     feed.Snapshot{State: feed.Loading{Key: "yt:channel:UCa"}},
	}
	m := Compose(in, testNow)
	assert.True(t, m.Feed.Loading)
	assert.True(t, m.Pending)

	in.Feed = feed.Snapshot{State: feed.Failed{
		Key: "yt:channel:UCa", Err: aerr.ApplyFor(common.ErrFeedLoad, errors.New("boom")),
	}}
	m = Compose(in, testNow)
	assert.False(t, m.Feed.Loading)
	assert.Contains(t, m.Feed.Error, "Failed to fetch videos.")
	assert.False(t, m.Feed.Empty)

	in.Feed = feed.Snapshot{State: feed.Loaded{Key: "yt:channel:UCa"}, Key: "yt:channel:UCa"}
	m = Compose(in, testNow)
	assert.True(t, m.Feed.Empty)
	assert.False(t, m.Pending)
}

func TestComposeForms(t *testing.T) {
	in := Input{
		Registry: loadedRegistry(""),
		Ops: mutation.Snapshot{
			Add: mutation.Failed{Err: common.ErrEmptyURL},
			Updates: map[string]mutation.State{
				"UCa": mutation.Submitting{},
			},
			Deletes: map[string]mutation.State{
				"PLb": mutation.Succeeded{
					Message:    "deleted",
					RefreshErr: aerr.ApplyFor(common.ErrReloadAfterMutation, errors.New("x")),
				},
			},
		},
		EditID: "UCa",
	}

	m := Compose(in, testNow)
	assert.Equal(t, m.AddForm, FormState{Error: "Channel or playlist URL can't be empty."})
	assert.True(t, m.Subscriptions[0].Editing)
	assert.True(t, m.Subscriptions[0].Update.Submitting)
	assert.False(t, m.Subscriptions[1].Editing)
	assert.Equal(t, m.Subscriptions[1].Delete.Message, "deleted")
	assert.Equal(t, m.Subscriptions[1].Delete.Warning, "Change saved, but the subscription list could not be refreshed.")
	assert.True(t, m.Pending)
}
