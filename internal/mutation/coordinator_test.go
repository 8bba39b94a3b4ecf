package mutation

//
// coordinator_test.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"sync"
	"testing"
	"time"

	"gitlab.com/kabes/go-ytdash/internal/aerr"
	"gitlab.com/kabes/go-ytdash/internal/assert"
	"gitlab.com/kabes/go-ytdash/internal/backend"
	"gitlab.com/kabes/go-ytdash/internal/backend/backendtest"
	"gitlab.com/kabes/go-ytdash/internal/command"
	"gitlab.com/kabes/go-ytdash/internal/common"
	"gitlab.com/kabes/go-ytdash/internal/config"
	"gitlab.com/kabes/go-ytdash/internal/feed"
	"gitlab.com/kabes/go-ytdash/internal/model"
	"gitlab.com/kabes/go-ytdash/internal/registry"
)

const testTimeout = 2 * time.Second

type testEnv struct {
	fb       *backendtest.Backend
	registry *registry.Registry
	feed     *feed.Cache
	coord    *Coordinator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	fb := backendtest.New()
	t.Cleanup(fb.Close)

	fb.AddSubscription(backendtest.Subscription{ID: "yt:channel:UCa", Title: "A", Videos: 5, NewVids: 2})
	fb.AddSubscription(backendtest.Subscription{ID: "yt:playlist:PLb", Title: "B", Videos: 1})

	client := backend.New(config.NewBackendConf(fb.URL(), 5*time.Second, 0))
	reg := registry.New(client)
	cache := feed.New(client)
	coord := New(client, reg, cache)
	cache.SetViewedMarker(coord)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()

		assert.NoErr(t, coord.Shutdown(ctx))
	})

	assert.NoErr(t, reg.Reload(context.Background()))

	return &testEnv{fb: fb, registry: reg, feed: cache, coord: coord}
}

func subIDs(subs []model.Subscription) []string {
	res := make([]string, 0, len(subs))
	for _, s := range subs {
		res = append(res, s.ID)
	}

	return res
}

//-------------------------------------------------------------

// opState return state of operation on target; Idle when none was recorded.
func opState(c *Coordinator, kind Kind, target string) State {
	snap := c.Snapshot()

	var state State

	switch kind {
	case KindUpdateInterval:
		state = snap.Updates[target]
	case KindDelete:
		state = snap.Deletes[target]
	case KindAdd:
		state = snap.Add
	}

	if state == nil {
		return Idle{}
	}

	return state
}

func TestAdd(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sub, err := env.coord.Add(ctx, &command.AddSubscriptionCmd{
		URL: " https://www.youtube.com/channel/UCc ", Interval: "10",
	})
	assert.NoErr(t, err)
	assert.Equal(t, sub.ID, "UCc")

	// interval clamped before sending
	reqs := env.fb.Requests("/add-sub/")
	assert.Len(t, reqs, 1)
	assert.Equal(t, reqs[0].Form["url"], "https://www.youtube.com/channel/UCc")
	assert.Equal(t, reqs[0].Form["time_between_fetches"], "60")

	// registry reloaded
	assert.Equal(t, subIDs(env.registry.List()), []string{"UCa", "PLb", "UCc"})

	state, ok := env.coord.Snapshot().Add.(Succeeded)
	assert.True(t, ok)
	assert.Contains(t, state.Message, "Channel UCc")
	assert.NoErr(t, state.RefreshErr)
}

func TestAddValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.coord.Add(context.Background(), &command.AddSubscriptionCmd{URL: "  ", Interval: "300"})
	assert.ErrSpec(t, err, common.ErrEmptyURL)
	assert.True(t, aerr.HasTag(err, aerr.ValidationError))

	_, err = env.coord.Add(context.Background(), &command.AddSubscriptionCmd{
		URL: "https://www.youtube.com/channel/UCc", Interval: "soon",
	})
	assert.ErrSpec(t, err, common.ErrInvalidInterval)

	state, ok := env.coord.Snapshot().Add.(Failed)
	assert.True(t, ok)
	assert.ErrSpec(t, state.Err, common.ErrInvalidInterval)

	assert.Len(t, env.fb.Requests("/add-sub/"), 0)
}

func TestAddRejected(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.coord.Add(context.Background(), &command.AddSubscriptionCmd{
		URL: "https://www.youtube.com/channel/UCa", Interval: "300",
	})
	assert.ErrSpec(t, err, common.ErrAdd)
	assert.True(t, aerr.HasTag(err, aerr.AddError))
	// message from backend is presented to user
	assert.Equal(t, aerr.GetUserMessage(err), "Subscription already exists")

	_, err = env.coord.Add(context.Background(), &command.AddSubscriptionCmd{
		URL: "https://www.youtube.com/@handle", Interval: "300",
	})
	assert.ErrSpec(t, err, common.ErrAdd)
	assert.Contains(t, aerr.GetUserMessage(err), "Unsupported url")
}

func TestAddReloadFailed(t *testing.T) {
	env := newTestEnv(t)
	env.fb.FailNext("GET /subs-info", 1)

	_, err := env.coord.Add(context.Background(), &command.AddSubscriptionCmd{
		URL: "https://www.youtube.com/channel/UCc", Interval: "300",
	})
	assert.ErrSpec(t, err, common.ErrReloadAfterMutation)
	assert.True(t, aerr.HasTag(err, aerr.ReloadError))

	// change was saved
	assert.Len(t, env.fb.Subscriptions(), 3)

	state, ok := env.coord.Snapshot().Add.(Succeeded)
	assert.True(t, ok)
	assert.ErrSpec(t, state.RefreshErr, common.ErrReloadAfterMutation)

	// previous list kept
	assert.Equal(t, subIDs(env.registry.List()), []string{"UCa", "PLb"})
}

func TestUpdateInterval(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	assert.NoErr(t, env.coord.UpdateInterval(ctx, &command.UpdateIntervalCmd{ID: "PLb", Interval: "100000"}))

	reqs := env.fb.Requests("/set-time-between-fetches/")
	assert.Len(t, reqs, 1)
	assert.Equal(t, reqs[0].Form["_id"], "yt:playlist:PLb")
	assert.Equal(t, reqs[0].Form["time_between_fetches"], "86400")

	sub, ok := env.registry.Resolve("PLb")
	assert.True(t, ok)
	assert.Equal(t, sub.FetchInterval, 86400)

	_, ok = opState(env.coord, KindUpdateInterval, "PLb").(Succeeded)
	assert.True(t, ok)

	// state of other targets is not affected
	assert.Equal(t, opState(env.coord, KindUpdateInterval, "UCa"), State(Idle{}))
}

func TestUpdateIntervalInvalid(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	err := env.coord.UpdateInterval(ctx, &command.UpdateIntervalCmd{ID: "UCx", Interval: "100"})
	assert.ErrSpec(t, err, common.ErrUnknownSubscription)
	assert.True(t, aerr.HasTag(err, aerr.ValidationError))

	err = env.coord.UpdateInterval(ctx, &command.UpdateIntervalCmd{ID: "UCa", Interval: "x"})
	assert.ErrSpec(t, err, common.ErrInvalidInterval)

	env.fb.FailNext("POST /set-time-between-fetches/", 1)

	err = env.coord.UpdateInterval(ctx, &command.UpdateIntervalCmd{ID: "UCa", Interval: "120"})
	assert.ErrSpec(t, err, common.ErrUpdate)
	assert.True(t, aerr.HasTag(err, aerr.UpdateError))

	_, ok := opState(env.coord, KindUpdateInterval, "UCa").(Failed)
	assert.True(t, ok)

	env.coord.Reset(KindUpdateInterval, "UCa")
	assert.Equal(t, opState(env.coord, KindUpdateInterval, "UCa"), State(Idle{}))
}

func TestDeleteNotConfirmed(t *testing.T) {
	env := newTestEnv(t)

	err := env.coord.Delete(context.Background(), &command.DeleteSubscriptionCmd{ID: "UCa"})
	assert.ErrSpec(t, err, common.ErrDeleteNotConfirmed)
	assert.Len(t, env.fb.Requests("/delete-sub/"), 0)
	assert.Len(t, env.registry.List(), 2)
}

func TestDeleteSelectedWithoutFetch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, ok := env.registry.Select("UCa")
	assert.True(t, ok)

	assert.NoErr(t, env.coord.Delete(ctx, &command.DeleteSubscriptionCmd{ID: "UCa", Confirmed: true}))

	reqs := env.fb.Requests("/delete-sub/")
	assert.Len(t, reqs, 1)
	assert.Equal(t, reqs[0].Method, "DELETE")
	assert.Equal(t, reqs[0].Path, "/delete-sub/yt:channel:UCa")

	assert.Equal(t, env.registry.SelectedID(), "")
	assert.Equal(t, env.feed.State(), feed.State(feed.Empty{}))
	assert.Equal(t, subIDs(env.registry.List()), []string{"PLb"})

	_, ok = opState(env.coord, KindDelete, "UCa").(Succeeded)
	assert.True(t, ok)
}

func TestDeleteOtherKeepSelection(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sub, _ := env.registry.Select("UCa")
	assert.NoErr(t, env.feed.LoadFor(ctx, sub))
	env.coord.Wait()

	assert.NoErr(t, env.coord.Delete(ctx, &command.DeleteSubscriptionCmd{ID: "PLb", Confirmed: true}))
	assert.Equal(t, env.registry.SelectedID(), "UCa")
	assert.Equal(t, env.feed.State().SourceKey(), "yt:channel:UCa")
}

func TestDeleteFailed(t *testing.T) {
	env := newTestEnv(t)
	env.fb.FailNext("DELETE /delete-sub/", 1)

	err := env.coord.Delete(context.Background(), &command.DeleteSubscriptionCmd{ID: "UCa", Confirmed: true})
	assert.ErrSpec(t, err, common.ErrDelete)
	assert.True(t, aerr.HasTag(err, aerr.DeleteError))
	assert.Len(t, env.registry.List(), 2)
}

func TestSelectLoadMarkViewed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.fb.SetVideos("yt:channel:UCa",
		backendtest.Video{ID: "v1", Published: "2025-01-01T10:00:00Z", Duration: backendtest.Duration(65)},
		backendtest.Video{ID: "v2", Published: "2025-01-03T10:00:00Z"},
		backendtest.Video{ID: "v3", Published: "2025-01-02T10:00:00Z"},
		backendtest.Video{ID: "v4", Published: "2025-01-05T10:00:00Z"},
		backendtest.Video{ID: "v5", Published: "2025-01-04T10:00:00Z"},
	)

	start := time.Now()

	sub, ok := env.registry.Select("UCa")
	assert.True(t, ok)
	assert.NoErr(t, env.feed.LoadFor(ctx, sub))

	// fetch keyed by source key of the selected subscription
	assert.Len(t, env.fb.Requests("/vid-from-link/yt:channel:UCa"), 1)

	snap := env.feed.Snapshot()
	videos, ok := snap.VideosFor(sub.SourceKey)
	assert.True(t, ok)

	ids := make([]string, 0, len(videos))
	for _, v := range videos {
		ids = append(ids, v.ID)
	}

	assert.Equal(t, ids, []string{"v4", "v5", "v2", "v3", "v1"})

	env.coord.Wait()

	reqs := env.fb.Requests("/set-viewed/")
	assert.Len(t, reqs, 1)
	assert.Equal(t, reqs[0].Form["_id"], "yt:channel:UCa")

	viewed, err := time.Parse("2006-01-02T15:04:05.999999-07:00", reqs[0].Form["viewed_time"])
	assert.NoErr(t, err)
	assert.False(t, viewed.Before(start.Add(-time.Second)))
	assert.False(t, viewed.After(time.Now()))
}

func TestMarkViewedFailureNotPropagated(t *testing.T) {
	env := newTestEnv(t)
	env.fb.FailNext("POST /set-viewed/", 1)

	sub, _ := env.registry.Select("UCa")
	assert.NoErr(t, env.feed.LoadFor(context.Background(), sub))

	env.coord.Wait()
	assert.Len(t, env.fb.Requests("/set-viewed/"), 1)
}

//-------------------------------------------------------------

// blockingBackend hold every request until released.
type blockingBackend struct {
	release chan struct{}

	mu     sync.Mutex
	viewed []string
	added  int
}

func (b *blockingBackend) AddSubscription(ctx context.Context, _ string, _ int) (model.Subscription, error) {
	b.mu.Lock()
	b.added++
	b.mu.Unlock()

	select {
	case <-b.release:
	case <-ctx.Done():
		return model.Subscription{}, ctx.Err()
	}

	return model.Subscription{}, nil
}

func (b *blockingBackend) SetFetchInterval(context.Context, string, int) error {
	return nil
}

func (b *blockingBackend) DeleteSubscription(context.Context, string) error {
	return nil
}

func (b *blockingBackend) SetViewed(ctx context.Context, key string, _ time.Time) error {
	b.mu.Lock()
	b.viewed = append(b.viewed, key)
	b.mu.Unlock()

	select {
	case <-b.release:
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}

func (b *blockingBackend) counts() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.added, len(b.viewed)
}

type stubRegistry struct {
	mu      sync.Mutex
	reloads int
}

func (s *stubRegistry) Reload(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reloads++

	return nil
}

func (s *stubRegistry) Resolve(id string) (model.Subscription, bool) {
	return model.Subscription{ID: id, SourceKey: "yt:channel:" + id}, true
}

func (s *stubRegistry) SelectedID() string { return "" }
func (s *stubRegistry) ClearSelection()    {}

type stubFeed struct{}

func (stubFeed) Clear() {}

func TestOperationInProgress(t *testing.T) {
	be := &blockingBackend{release: make(chan struct{})}
	coord := New(be, &stubRegistry{}, stubFeed{})
	ctx := context.Background()

	errs := make(chan error, 1)

	go func() {
		_, err := coord.Add(ctx, &command.AddSubscriptionCmd{URL: "https://www.youtube.com/channel/UC1", Interval: "300"})
		errs <- err
	}()

	assert.Eventually(t, testTimeout, func() bool { return InProgress(coord.Snapshot().Add) })

	_, err := coord.Add(ctx, &command.AddSubscriptionCmd{URL: "https://www.youtube.com/channel/UC2", Interval: "300"})
	assert.ErrSpec(t, err, common.ErrOperationInProgress)
	assert.True(t, aerr.HasTag(err, aerr.ConflictError))

	// other kinds are independent
	assert.NoErr(t, coord.UpdateInterval(ctx, &command.UpdateIntervalCmd{ID: "UC1", Interval: "300"}))

	close(be.release)
	assert.NoErr(t, <-errs)

	added, _ := be.counts()
	assert.Equal(t, added, 1)

	_, ok := coord.Snapshot().Add.(Succeeded)
	assert.True(t, ok)
}

func TestMarkViewedDuplicateSkipped(t *testing.T) {
	be := &blockingBackend{release: make(chan struct{})}
	coord := New(be, &stubRegistry{}, stubFeed{})
	ctx := context.Background()

	sub := model.Subscription{ID: "UC1", SourceKey: "yt:channel:UC1"}
	now := time.Now()

	coord.MarkViewed(ctx, sub, now)
	assert.Eventually(t, testTimeout, func() bool { _, n := be.counts(); return n == 1 })

	// second mark for the same subscription while first in flight
	coord.MarkViewed(ctx, sub, now)
	// other subscription is not blocked
	coord.MarkViewed(ctx, model.Subscription{ID: "UC2", SourceKey: "yt:channel:UC2"}, now)
	assert.Eventually(t, testTimeout, func() bool { _, n := be.counts(); return n == 2 })

	close(be.release)

	sctx, cancel := context.WithTimeout(ctx, testTimeout)
	defer cancel()

	assert.NoErr(t, coord.Shutdown(sctx))

	_, n := be.counts()
	assert.Equal(t, n, 2)

	// closed coordinator ignore new requests
	coord.MarkViewed(ctx, sub, now)
	_, n = be.counts()
	assert.Equal(t, n, 2)
}

func TestMarkViewedTimeout(t *testing.T) {
	be := &blockingBackend{release: make(chan struct{})}
	coord := New(be, &stubRegistry{}, stubFeed{})
	coord.markTimeout = 10 * time.Millisecond

	// canceled caller context does not cancel dispatched request before timeout
	ctx, cancel := context.WithCancel(context.Background())
	coord.MarkViewed(ctx, model.Subscription{ID: "UC1", SourceKey: "yt:channel:UC1"}, time.Now())
	cancel()

	sctx, scancel := context.WithTimeout(context.Background(), testTimeout)
	defer scancel()

	assert.NoErr(t, coord.Shutdown(sctx))
}
