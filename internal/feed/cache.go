// Package feed keep videos of the selected subscription.
package feed

//
// cache.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-ytdash/internal/aerr"
	"gitlab.com/kabes/go-ytdash/internal/backend"
	"gitlab.com/kabes/go-ytdash/internal/common"
	"gitlab.com/kabes/go-ytdash/internal/model"
)

//nolint:gochecknoglobals
var loadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ytdash_feed_loads_total",
		Help: "Number of video list loads.",
	},
	[]string{"result"},
)

// Source provide videos of subscription.
type Source interface {
	ListVideos(ctx context.Context, sourceKey string) ([]model.Video, error)
}

// ViewedMarker is notified after videos are successfully loaded. Implementation must not block.
type ViewedMarker interface {
	MarkViewed(ctx context.Context, sub model.Subscription, at time.Time)
}

// Cache hold videos for one subscription at time. Only result of the most recent request is applied.
type Cache struct {
	source Source

	mu         sync.Mutex
	marker     ViewedMarker
	generation uint64
	state      State
	slotKey    string
	videos     []model.Video
	now        func() time.Time
}

func New(source Source) *Cache {
	return &Cache{
		source: source,
		state:  Empty{},
		now:    time.Now,
	}
}

func NewCacheI(i do.Injector) (*Cache, error) {
	return New(do.MustInvoke[*backend.Client](i)), nil
}

// SetViewedMarker configure receiver of "videos viewed" notifications.
func (c *Cache) SetViewedMarker(marker ViewedMarker) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.marker = marker
}

// Ticket identify one load request. Generation is assigned when the request is issued.
type Ticket struct {
	Sub        model.Subscription
	Generation uint64
}

// Begin register new load request for subscription and invalidate all earlier ones.
// Must be called when request is issued, before fetching start.
func (c *Cache) Begin(sub model.Subscription) Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.state = Loading{Key: sub.SourceKey, Since: c.now()}

	return Ticket{Sub: sub, Generation: c.generation}
}

// LoadFor fetch videos of subscription. When other load is started before this one finish,
// result is dropped and common.ErrSuperseded is returned.
func (c *Cache) LoadFor(ctx context.Context, sub model.Subscription) error {
	return c.Complete(ctx, c.Begin(sub))
}

// Complete fetch videos for request started by Begin. Result is applied only when no other
// request was issued (or cache cleared) in meantime; otherwise common.ErrSuperseded is returned.
func (c *Cache) Complete(ctx context.Context, ticket Ticket) error {
	sub, gen := ticket.Sub, ticket.Generation
	logger := zerolog.Ctx(ctx).With().Str(common.LogKeySourceKey, sub.SourceKey).Logger()

	c.mu.Lock()
	superseded := gen != c.generation
	c.mu.Unlock()

	if superseded {
		loadsTotal.WithLabelValues("stale").Inc()
		logger.Debug().Uint64("generation", gen).Msg("FeedCache: request superseded before start")

		return common.ErrSuperseded
	}

	logger.Debug().Uint64("generation", gen).Msg("FeedCache: load start")

	videos, err := c.source.ListVideos(ctx, sub.SourceKey)

	c.mu.Lock()

	if gen != c.generation {
		c.mu.Unlock()
		loadsTotal.WithLabelValues("stale").Inc()
		logger.Debug().Uint64("generation", gen).Msg("FeedCache: result dropped; superseded")

		return common.ErrSuperseded
	}

	if err != nil {
		ferr := aerr.ApplyFor(common.ErrFeedLoad, err).WithMeta(common.LogKeySourceKey, sub.SourceKey)
		c.state = Failed{Key: sub.SourceKey, Err: ferr}
		c.mu.Unlock()

		loadsTotal.WithLabelValues("error").Inc()
		logger.WithLevel(aerr.LogLevelForError(ferr)).Err(ferr).Msg("FeedCache: load failed")

		return ferr
	}

	model.SortVideosByPublished(videos)

	fetchedAt := c.now()
	c.videos = videos
	c.slotKey = sub.SourceKey
	c.state = Loaded{Key: sub.SourceKey, FetchedAt: fetchedAt}
	marker := c.marker
	c.mu.Unlock()

	loadsTotal.WithLabelValues("ok").Inc()
	logger.Debug().Int("count", len(videos)).Msg("FeedCache: load finished")

	if marker != nil {
		marker.MarkViewed(ctx, sub, fetchedAt)
	}

	return nil
}

// Clear drop cached videos and invalidate all in-flight loads.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.state = Empty{}
	c.slotKey = ""
	c.videos = nil
}

func (c *Cache) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Snapshot is copy of cache content.
type Snapshot struct {
	State State
	// Key is source key of subscription that Videos belong to; may differ from State key
	// when newer load is in progress or failed.
	Key    string
	Videos []model.Video
}

// VideosFor return cached videos when they belong to subscription with given source key.
func (s *Snapshot) VideosFor(sourceKey string) ([]model.Video, bool) {
	if sourceKey == "" || s.Key != sourceKey {
		return nil, false
	}

	return s.Videos, true
}

func (c *Cache) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		State:  c.state,
		Key:    c.slotKey,
		Videos: slices.Clone(c.videos),
	}
}
