package formats

//
// formats_test.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"testing"
	"time"

	"gitlab.com/kabes/go-ytdash/internal/assert"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{65, "1:05"},
		{600, "10:00"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
		{36000, "10:00:00"},
		{-1, DurationPlaceholder},
		{-100, DurationPlaceholder},
	}

	for _, tt := range tests {
		assert.Equal(t, Duration(tt.input), tt.want)
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		input time.Time
		want  string
	}{
		{time.Time{}, ""},
		{now, "Just now"},
		{now.Add(-59 * time.Minute), "Just now"},
		{now.Add(time.Hour), "Just now"},
		{now.Add(-time.Hour), "1h ago"},
		{now.Add(-23*time.Hour - 59*time.Minute), "23h ago"},
		{now.Add(-24 * time.Hour), "1d ago"},
		{now.Add(-10 * 24 * time.Hour), "10d ago"},
	}

	for _, tt := range tests {
		assert.Equal(t, RelativeTime(tt.input, now), tt.want)
	}
}

func TestDateTime(t *testing.T) {
	assert.Equal(t, DateTime(time.Time{}), "")

	ts := time.Date(2025, 3, 9, 15, 4, 0, 0, time.Local)
	assert.Equal(t, DateTime(ts), "Mar 9, 2025, 03:04 PM")
}

func TestInterval(t *testing.T) {
	assert.Equal(t, Interval(0), "0s")
	assert.Equal(t, Interval(45), "45s")
	assert.Equal(t, Interval(300), "5m")
	assert.Equal(t, Interval(5400), "1h30m")
	assert.Equal(t, Interval(86400), "1d")
	assert.Equal(t, Interval(90061), "1d1h1m1s")
}

func TestCount(t *testing.T) {
	assert.Equal(t, Count(0, "video"), "0 videos")
	assert.Equal(t, Count(1, "video"), "1 video")
	assert.Equal(t, Count(12, "video"), "12 videos")
}
