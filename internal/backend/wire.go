package backend

//
// wire.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"gitlab.com/kabes/go-ytdash/internal/model"
)

// viewedTimeLayout is ISO-8601 accepted by backend (python datetime.fromisoformat).
const viewedTimeLayout = "2006-01-02T15:04:05.000000-07:00"

//nolint:gochecknoglobals
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC1123,
	time.RFC1123Z,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999",
	"2006-01-02 15:04:05.999999-07:00",
}

// wireTime accept timestamps in any format produced by backend. Null or empty value is zero time.
type wireTime struct {
	time.Time
}

func (w *wireTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		w.Time = time.Time{}

		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("timestamp is not a string: %w", err)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		w.Time = time.Time{}

		return nil
	}

	for _, layout := range timeLayouts {
		// naive timestamps are stored by backend in UTC
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			w.Time = t

			return nil
		}
	}

	return fmt.Errorf("unsupported timestamp format %q", value) //nolint:err113
}

//-------------------------------------------------------------

type subscriptionRecord struct {
	ID                 string   `json:"_id"`
	Title              string   `json:"title"`
	Link               string   `json:"link"`
	LastFetch          wireTime `json:"last_fetch"`
	LastVideoUpdate    wireTime `json:"last_video_update"`
	LastViewed         wireTime `json:"last_viewed"`
	NewVids            int      `json:"new_vids"`
	TimeBetweenFetches int      `json:"time_between_fetches"`
	Videos             int      `json:"videos"`
}

// addSubscriptionRecord is response of add-sub; contains error message when url is rejected.
type addSubscriptionRecord struct {
	subscriptionRecord

	Error string `json:"error"`
}

func (s *subscriptionRecord) toModel() (model.Subscription, error) {
	sub, err := model.NewSubscription(s.ID)
	if err != nil {
		return sub, err
	}

	sub.Title = s.Title
	sub.Link = s.Link
	sub.VideoCount = max(s.Videos, 0)
	sub.NewVideoCount = max(s.NewVids, 0)
	sub.FetchInterval = s.TimeBetweenFetches
	sub.LastFetchedAt = s.LastFetch.Time
	sub.LastVideoUpdatedAt = s.LastVideoUpdate.Time
	sub.LastViewedAt = s.LastViewed.Time

	return sub, nil
}

type videoRecord struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	AuthorChannel string   `json:"author_channel"`
	Link          string   `json:"link"`
	Thumbnail     string   `json:"thumbnail"`
	Summary       string   `json:"summary"`
	Published     wireTime `json:"published"`
	Updated       wireTime `json:"updated"`
	Duration      *float64 `json:"duration"`
}

func (v *videoRecord) toModel() model.Video {
	duration := model.DurationUnknown
	if v.Duration != nil && *v.Duration >= 0 && !math.IsInf(*v.Duration, 0) {
		duration = int(*v.Duration)
	}

	return model.Video{
		ID:               v.ID,
		Title:            v.Title,
		Author:           v.Author,
		AuthorChannelURL: v.AuthorChannel,
		Link:             v.Link,
		ThumbnailURL:     v.Thumbnail,
		Summary:          v.Summary,
		PublishedAt:      v.Published.Time,
		UpdatedAt:        v.Updated.Time,
		Duration:         duration,
	}
}

type errorRecord struct {
	Error string `json:"error"`
}
