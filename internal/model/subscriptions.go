package model

//
// subscriptions.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/kabes/go-ytdash/internal/common"
)

type SubscriptionKind int

const (
	KindChannel SubscriptionKind = iota + 1
	KindPlaylist
)

const (
	channelKeyPrefix  = "yt:channel:"
	playlistKeyPrefix = "yt:playlist:"
)

func (k SubscriptionKind) String() string {
	switch k {
	case KindChannel:
		return "channel"
	case KindPlaylist:
		return "playlist"
	default:
		return "unknown"
	}
}

//-------------------------------------------------------------

// Subscription is local copy of backend subscription record.
type Subscription struct {
	// ID is SourceKey without type prefix.
	ID string
	// SourceKey is full backend key, e.g. "yt:channel:UC123".
	SourceKey string
	Kind      SubscriptionKind
	Title     string
	// Link to the channel or playlist page; may be empty.
	Link string

	VideoCount    int
	NewVideoCount int
	// FetchInterval in seconds.
	FetchInterval int

	LastFetchedAt      time.Time
	LastVideoUpdatedAt time.Time
	LastViewedAt       time.Time
}

// NewSubscription create subscription for given source key. This is the only place where key is parsed.
func NewSubscription(sourceKey string) (Subscription, error) {
	var (
		kind SubscriptionKind
		id   string
	)

	switch {
	case strings.HasPrefix(sourceKey, channelKeyPrefix):
		kind, id = KindChannel, sourceKey[len(channelKeyPrefix):]
	case strings.HasPrefix(sourceKey, playlistKeyPrefix):
		kind, id = KindPlaylist, sourceKey[len(playlistKeyPrefix):]
	default:
		return Subscription{}, common.ErrInvalidSourceKey.WithMeta("source_key", sourceKey)
	}

	if id == "" {
		return Subscription{}, common.ErrInvalidSourceKey.WithMeta("source_key", sourceKey)
	}

	return Subscription{ID: id, SourceKey: sourceKey, Kind: kind}, nil
}

// DisplayTitle return title or id when title is not available.
func (s *Subscription) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}

	return s.ID
}

func (s *Subscription) MarshalZerologObject(event *zerolog.Event) {
	event.Str(common.LogKeySubID, s.ID).
		Str(common.LogKeySourceKey, s.SourceKey).
		Stringer("kind", s.Kind).
		Int("videos", s.VideoCount).
		Int("new_videos", s.NewVideoCount).
		Int("fetch_interval", s.FetchInterval)
}
