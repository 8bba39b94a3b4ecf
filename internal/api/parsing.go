//
// parsing.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"gitlab.com/kabes/go-ytdash/internal/model"
)

// intervalValue accept interval given as json number or string.
type intervalValue string

func (i *intervalValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*i = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("unmarshal interval error: %w", err)
		}

		*i = intervalValue(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("unmarshal interval error: %w", err)
		}

		*i = intervalValue(n.String())
	}

	return nil
}

type addSubscriptionRequest struct {
	URL      string        `json:"url"`
	Interval intervalValue `json:"interval"`
}

type updateIntervalRequest struct {
	Interval intervalValue `json:"interval"`
}

//-------------------------------------------------------------

type subscriptionDTO struct {
	ID              string     `json:"id"`
	SourceKey       string     `json:"source_key"`
	Kind            string     `json:"kind"`
	Title           string     `json:"title"`
	Link            string     `json:"link,omitempty"`
	Videos          int        `json:"videos"`
	NewVideos       int        `json:"new_videos"`
	FetchInterval   int        `json:"fetch_interval"`
	LastFetched     *time.Time `json:"last_fetched,omitempty"`
	LastVideoUpdate *time.Time `json:"last_video_update,omitempty"`
	LastViewed      *time.Time `json:"last_viewed,omitempty"`
}

func newSubscriptionDTO(s *model.Subscription) subscriptionDTO {
	return subscriptionDTO{
		ID:              s.ID,
		SourceKey:       s.SourceKey,
		Kind:            s.Kind.String(),
		Title:           s.DisplayTitle(),
		Link:            s.Link,
		Videos:          s.VideoCount,
		NewVideos:       s.NewVideoCount,
		FetchInterval:   s.FetchInterval,
		LastFetched:     optionalTime(s.LastFetchedAt),
		LastVideoUpdate: optionalTime(s.LastVideoUpdatedAt),
		LastViewed:      optionalTime(s.LastViewedAt),
	}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}
