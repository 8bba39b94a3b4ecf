package model

//
// model_test.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"testing"
	"time"

	"gitlab.com/kabes/go-ytdash/internal/aerr"
	"gitlab.com/kabes/go-ytdash/internal/assert"
	"gitlab.com/kabes/go-ytdash/internal/common"
)

func TestNewSubscription(t *testing.T) {
	sub, err := NewSubscription("yt:channel:UC123")
	assert.NoErr(t, err)
	assert.Equal(t, sub.ID, "UC123")
	assert.Equal(t, sub.SourceKey, "yt:channel:UC123")
	assert.Equal(t, sub.Kind, KindChannel)
	assert.Equal(t, sub.DisplayTitle(), "UC123")

	sub, err = NewSubscription("yt:playlist:PL42")
	assert.NoErr(t, err)
	assert.Equal(t, sub.ID, "PL42")
	assert.Equal(t, sub.Kind, KindPlaylist)
	assert.Equal(t, sub.Kind.String(), "playlist")

	sub.Title = "Playlist"
	assert.Equal(t, sub.DisplayTitle(), "Playlist")

	for _, key := range []string{"", "UC123", "yt:video:abc", "yt:channel:"} {
		_, err := NewSubscription(key)
		assert.ErrSpec(t, err, common.ErrInvalidSourceKey)
	}
}

func TestVideoIsNewSince(t *testing.T) {
	viewed := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	v := Video{PublishedAt: viewed.Add(time.Second)}
	assert.True(t, v.IsNewSince(viewed))

	v = Video{PublishedAt: viewed.Add(-time.Second)}
	assert.False(t, v.IsNewSince(viewed))

	v = Video{PublishedAt: viewed}
	assert.False(t, v.IsNewSince(viewed))

	// never viewed - nothing is new
	assert.False(t, v.IsNewSince(time.Time{}))
}

func TestSortVideosByPublished(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	videos := []Video{
		{ID: "a", PublishedAt: base},
		{ID: "b", PublishedAt: base.Add(2 * time.Hour)},
		{ID: "c", PublishedAt: base.Add(time.Hour)},
		{ID: "d", PublishedAt: base.Add(2 * time.Hour)},
	}

	SortVideosByPublished(videos)

	ids := make([]string, 0, len(videos))
	for _, v := range videos {
		ids = append(ids, v.ID)
	}

	assert.Equal(t, ids, []string{"b", "d", "c", "a"})
}

func TestParseInterval(t *testing.T) {
	tests := []struct {
		input string
		want  int
		err   bool
	}{
		{"300", 300, false},
		{" 120 ", 120, false},
		{"30", MinFetchInterval, false},
		{"0", MinFetchInterval, false},
		{"-5", MinFetchInterval, false},
		{"100000", MaxFetchInterval, false},
		{"99999999999999", MaxFetchInterval, false},
		{"99999999999999999999", MaxFetchInterval, false},
		{"-99999999999999999999", MinFetchInterval, false},
		{"60", 60, false},
		{"86400", 86400, false},
		{"", 0, true},
		{"abc", 0, true},
		{"12.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseInterval(tt.input)
			if tt.err {
				assert.Err(t, err)
				assert.True(t, aerr.HasTag(err, aerr.ValidationError))

				return
			}

			assert.NoErr(t, err)
			assert.Equal(t, got, tt.want)
		})
	}
}

func TestVideoHasDuration(t *testing.T) {
	assert.True(t, (&Video{Duration: 0}).HasDuration())
	assert.True(t, (&Video{Duration: 65}).HasDuration())
	assert.False(t, (&Video{Duration: DurationUnknown}).HasDuration())
}

func TestClampInterval(t *testing.T) {
	assert.Equal(t, ClampInterval(1), MinFetchInterval)
	assert.Equal(t, ClampInterval(3600), 3600)
	assert.Equal(t, ClampInterval(1<<30), MaxFetchInterval)
}
