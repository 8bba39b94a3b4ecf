package feed

//
// cache_test.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gitlab.com/kabes/go-ytdash/internal/aerr"
	"gitlab.com/kabes/go-ytdash/internal/assert"
	"gitlab.com/kabes/go-ytdash/internal/common"
	"gitlab.com/kabes/go-ytdash/internal/model"
)

const testTimeout = 2 * time.Second

type response struct {
	videos []model.Video
	err    error
}

type fakeSource struct {
	mu       sync.Mutex
	requests []string
	blocking bool
	gates    []chan response
	videos   map[string][]model.Video
	err      error
}

func (f *fakeSource) ListVideos(ctx context.Context, sourceKey string) ([]model.Video, error) {
	f.mu.Lock()
	f.requests = append(f.requests, sourceKey)

	var gate chan response
	if f.blocking {
		gate = make(chan response, 1)
		f.gates = append(f.gates, gate)
	}

	videos, err := f.videos[sourceKey], f.err
	f.mu.Unlock()

	if gate != nil {
		select {
		case r := <-gate:
			return r.videos, r.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return videos, err
}

func (f *fakeSource) respond(n int, r response) {
	f.mu.Lock()
	gate := f.gates[n]
	f.mu.Unlock()

	gate <- r
}

func (f *fakeSource) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.requests)
}

type markCall struct {
	key string
	at  time.Time
}

type fakeMarker struct {
	mu    sync.Mutex
	calls []markCall
}

func (f *fakeMarker) MarkViewed(_ context.Context, sub model.Subscription, at time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, markCall{sub.SourceKey, at})
}

func (f *fakeMarker) Calls() []markCall {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]markCall(nil), f.calls...)
}

func newSub(t *testing.T, key string) model.Subscription {
	t.Helper()

	sub, err := model.NewSubscription(key)
	assert.NoErr(t, err)

	return sub
}

func videoIDs(videos []model.Video) []string {
	res := make([]string, 0, len(videos))
	for _, v := range videos {
		res = append(res, v.ID)
	}

	return res
}

//-------------------------------------------------------------

func TestLoadFor(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	now := base.Add(48 * time.Hour)
	src := &fakeSource{videos: map[string][]model.Video{
		"yt:channel:A": {
			{ID: "v1", PublishedAt: base.Add(time.Hour)},
			{ID: "v2", PublishedAt: base.Add(3 * time.Hour)},
			{ID: "v3", PublishedAt: base},
			{ID: "v4", PublishedAt: base.Add(2 * time.Hour)},
			{ID: "v5", PublishedAt: base.Add(3 * time.Hour)},
		},
	}}
	marker := &fakeMarker{}

	cache := New(src)
	cache.SetViewedMarker(marker)
	cache.now = func() time.Time { return now }

	assert.Equal(t, cache.State(), State(Empty{}))

	sub := newSub(t, "yt:channel:A")
	assert.NoErr(t, cache.LoadFor(context.Background(), sub))

	// fetch keyed by source key
	assert.Equal(t, src.requests, []string{"yt:channel:A"})

	snap := cache.Snapshot()
	assert.Equal(t, snap.State, State(Loaded{Key: "yt:channel:A", FetchedAt: now}))
	assert.Equal(t, snap.Key, "yt:channel:A")
	assert.Equal(t, videoIDs(snap.Videos), []string{"v2", "v5", "v4", "v1", "v3"})

	videos, ok := snap.VideosFor("yt:channel:A")
	assert.True(t, ok)
	assert.Len(t, videos, 5)

	_, ok = snap.VideosFor("yt:channel:B")
	assert.False(t, ok)

	// mark viewed dispatched with load time
	assert.Equal(t, marker.Calls(), []markCall{{"yt:channel:A", now}})
}

func TestLoadForFailure(t *testing.T) {
	src := &fakeSource{videos: map[string][]model.Video{"yt:channel:A": {{ID: "v1"}}}}
	marker := &fakeMarker{}
	cache := New(src)
	cache.SetViewedMarker(marker)

	sub := newSub(t, "yt:channel:A")
	assert.NoErr(t, cache.LoadFor(context.Background(), sub))

	src.mu.Lock()
	src.err = errors.New("timeout")
	src.mu.Unlock()

	err := cache.LoadFor(context.Background(), sub)
	assert.ErrSpec(t, err, common.ErrFeedLoad)
	assert.True(t, aerr.HasTag(err, aerr.FeedLoadError))

	snap := cache.Snapshot()
	state, ok := snap.State.(Failed)
	assert.True(t, ok)
	assert.Equal(t, state.Key, "yt:channel:A")
	// previous content untouched
	assert.Equal(t, videoIDs(snap.Videos), []string{"v1"})
	// no mark viewed for failed load
	assert.Len(t, marker.Calls(), 1)
}

func TestLoadForStaleDiscarded(t *testing.T) {
	// A then B requested; responses arrive in both orders
	for _, order := range [][]int{{0, 1}, {1, 0}} {
		t.Run("", func(t *testing.T) {
			src := &fakeSource{blocking: true}
			marker := &fakeMarker{}
			cache := New(src)
			cache.SetViewedMarker(marker)

			subA, subB := newSub(t, "yt:channel:A"), newSub(t, "yt:channel:B")
			responses := []response{
				{videos: []model.Video{{ID: "a1"}}},
				{videos: []model.Video{{ID: "b1"}}},
			}
			results := make([]error, 2)

			var wg sync.WaitGroup

			for i, sub := range []model.Subscription{subA, subB} {
				wg.Add(1)

				go func() {
					defer wg.Done()

					results[i] = cache.LoadFor(context.Background(), sub)
				}()

				assert.Eventually(t, testTimeout, func() bool { return src.requestCount() == i+1 })
			}

			for _, n := range order {
				src.respond(n, responses[n])
			}

			wg.Wait()

			assert.True(t, errors.Is(results[0], common.ErrSuperseded))
			assert.NoErr(t, results[1])

			snap := cache.Snapshot()
			assert.Equal(t, snap.Key, "yt:channel:B")
			assert.Equal(t, videoIDs(snap.Videos), []string{"b1"})
			assert.Equal(t, snap.State.SourceKey(), "yt:channel:B")

			calls := marker.Calls()
			assert.Len(t, calls, 1)
			assert.Equal(t, calls[0].key, "yt:channel:B")
		})
	}
}

func TestStaleFailureIgnored(t *testing.T) {
	src := &fakeSource{blocking: true}
	cache := New(src)

	var wg sync.WaitGroup

	results := make([]error, 2)

	for i, key := range []string{"yt:channel:A", "yt:channel:B"} {
		wg.Add(1)

		go func() {
			defer wg.Done()

			results[i] = cache.LoadFor(context.Background(), newSub(t, key))
		}()

		assert.Eventually(t, testTimeout, func() bool { return src.requestCount() == i+1 })
	}

	src.respond(1, response{videos: []model.Video{{ID: "b1"}}})
	src.respond(0, response{err: errors.New("failed")})
	wg.Wait()

	assert.True(t, errors.Is(results[0], common.ErrSuperseded))
	assert.NoErr(t, results[1])

	_, ok := cache.State().(Loaded)
	assert.True(t, ok)
}

func TestClear(t *testing.T) {
	src := &fakeSource{blocking: true}
	cache := New(src)

	done := make(chan error, 1)

	go func() {
		done <- cache.LoadFor(context.Background(), newSub(t, "yt:channel:A"))
	}()

	assert.Eventually(t, testTimeout, func() bool { return src.requestCount() == 1 })

	_, ok := cache.State().(Loading)
	assert.True(t, ok)

	// clear while loading - result must be dropped
	cache.Clear()
	src.respond(0, response{videos: []model.Video{{ID: "a1"}}})

	err := <-done
	assert.True(t, errors.Is(err, common.ErrSuperseded))

	snap := cache.Snapshot()
	assert.Equal(t, snap.State, State(Empty{}))
	assert.Equal(t, snap.Key, "")
	assert.Len(t, snap.Videos, 0)
}

func TestCompleteOrderIndependent(t *testing.T) {
	src := &fakeSource{videos: map[string][]model.Video{
		"yt:channel:A": {{ID: "a1"}},
		"yt:channel:B": {{ID: "b1"}},
	}}
	marker := &fakeMarker{}
	cache := New(src)
	cache.SetViewedMarker(marker)

	// requests issued A then B; background tasks run in reverse order
	ticketA := cache.Begin(newSub(t, "yt:channel:A"))
	ticketB := cache.Begin(newSub(t, "yt:channel:B"))

	_, ok := cache.State().(Loading)
	assert.True(t, ok)
	assert.Equal(t, cache.State().SourceKey(), "yt:channel:B")

	assert.NoErr(t, cache.Complete(context.Background(), ticketB))
	assert.ErrSpec(t, cache.Complete(context.Background(), ticketA), common.ErrSuperseded)

	snap := cache.Snapshot()
	assert.Equal(t, snap.Key, "yt:channel:B")
	assert.Equal(t, videoIDs(snap.Videos), []string{"b1"})
	// superseded request never reach source
	assert.Equal(t, src.requests, []string{"yt:channel:B"})

	calls := marker.Calls()
	assert.Len(t, calls, 1)
	assert.Equal(t, calls[0].key, "yt:channel:B")
}

func TestCompleteAfterClear(t *testing.T) {
	src := &fakeSource{videos: map[string][]model.Video{"yt:channel:A": {{ID: "a1"}}}}
	cache := New(src)

	ticket := cache.Begin(newSub(t, "yt:channel:A"))
	cache.Clear()

	assert.ErrSpec(t, cache.Complete(context.Background(), ticket), common.ErrSuperseded)
	assert.Equal(t, cache.State(), State(Empty{}))
	assert.Equal(t, src.requestCount(), 0)
}
