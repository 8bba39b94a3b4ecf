// Package formats contains functions that convert values into text shown to user.
package formats

//
// formats.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DurationPlaceholder is shown for videos without known duration.
const DurationPlaceholder = "--:--"

// Duration format seconds as [h:]mm:ss; hours are omitted when zero, minutes are not padded
// when there are no hours.
func Duration(seconds int) string {
	if seconds < 0 {
		return DurationPlaceholder
	}

	hours := seconds / 3600          //nolint:mnd
	minutes := (seconds % 3600) / 60 //nolint:mnd
	secs := seconds % 60             //nolint:mnd

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}

	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// RelativeTime describe how long ago `t` was. Future times are reported as "Just now".
func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}

	diff := now.Sub(t)

	switch {
	case diff < time.Hour:
		return "Just now"
	case diff < 24*time.Hour:
		return strconv.Itoa(int(diff/time.Hour)) + "h ago"
	default:
		return strconv.Itoa(int(diff/(24*time.Hour))) + "d ago"
	}
}

// DateTime format timestamp in local time zone, e.g. "Jan 2, 2006, 03:04 PM".
func DateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Local().Format("Jan 2, 2006, 03:04 PM")
}

// Interval format fetch interval (in seconds) in compact form, e.g. "1h30m".
func Interval(seconds int) string {
	if seconds <= 0 {
		return "0s"
	}

	var b strings.Builder

	parts := []struct {
		size   int
		suffix string
	}{
		{86400, "d"}, //nolint:mnd
		{3600, "h"},  //nolint:mnd
		{60, "m"},    //nolint:mnd
		{1, "s"},
	}

	for _, p := range parts {
		if seconds >= p.size {
			b.WriteString(strconv.Itoa(seconds / p.size))
			b.WriteString(p.suffix)

			seconds %= p.size
		}
	}

	return b.String()
}

// Count format number with proper noun form, e.g. "1 video", "5 videos".
func Count(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}

	return strconv.Itoa(n) + " " + noun + "s"
}
