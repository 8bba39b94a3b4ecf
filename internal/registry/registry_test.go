package registry

//
// registry_test.go
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

type fakeSource struct {
	mu    sync.Mutex
	subs  []model.Subscription
	err   error
	calls int
	// when blocking, each call wait for response from own channel
	blocking bool
	gates    []chan []model.Subscription
}

func (f *fakeSource) ListSubscriptions(ctx context.Context) ([]model.Subscription, error) {
	f.mu.Lock()
	f.calls++
	subs, err := f.subs, f.err

	var gate chan []model.Subscription
	if f.blocking {
		gate = make(chan []model.Subscription, 1)
		f.gates = append(f.gates, gate)
	}
	f.mu.Unlock()

	if gate != nil {
		select {
		case subs = <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if err != nil {
		return nil, err
	}

	return subs, nil
}

// respond deliver response to n-th call.
func (f *fakeSource) respond(n int, subs ...model.Subscription) {
	f.mu.Lock()
	gate := f.gates[n]
	f.mu.Unlock()

	gate <- subs
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls
}

func newSub(t *testing.T, key, title string) model.Subscription {
	t.Helper()

	sub, err := model.NewSubscription(key)
	assert.NoErr(t, err)

	sub.Title = title

	return sub
}

func ids(subs []model.Subscription) []string {
	res := make([]string, 0, len(subs))
	for _, s := range subs {
		res = append(res, s.ID)
	}

	return res
}

func TestReload(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{subs: []model.Subscription{
		newSub(t, "yt:channel:B", "b"),
		newSub(t, "yt:channel:A", "a"),
		newSub(t, "yt:playlist:C", "c"),
	}}
	reg := New(src)

	snap := reg.Snapshot()
	assert.False(t, snap.Loaded)
	assert.Equal(t, snap.State, State(Idle{}))

	assert.NoErr(t, reg.Reload(ctx))

	// backend order is kept
	assert.Equal(t, ids(reg.List()), []string{"B", "A", "C"})
	assert.Equal(t, reg.State(), State(Idle{}))
	assert.True(t, reg.Snapshot().Loaded)

	sub, ok := reg.Resolve("C")
	assert.True(t, ok)
	assert.Equal(t, sub.SourceKey, "yt:playlist:C")

	_, ok = reg.Resolve("X")
	assert.False(t, ok)

	// idempotent
	first := reg.List()
	assert.NoErr(t, reg.Reload(ctx))
	assert.Equal(t, reg.List(), first)

	// full replace
	src.mu.Lock()
	src.subs = []model.Subscription{newSub(t, "yt:channel:D", "d")}
	src.mu.Unlock()

	assert.NoErr(t, reg.Reload(ctx))
	assert.Equal(t, ids(reg.List()), []string{"D"})
	_, ok = reg.Resolve("A")
	assert.False(t, ok)
}

func TestReloadFailureKeepsPrevious(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{subs: []model.Subscription{newSub(t, "yt:channel:A", "a")}}
	reg := New(src)

	assert.NoErr(t, reg.Reload(ctx))

	src.mu.Lock()
	src.err = errors.New("connection refused")
	src.mu.Unlock()

	err := reg.Reload(ctx)
	assert.ErrSpec(t, err, common.ErrFetch)
	assert.True(t, aerr.HasTag(err, aerr.FetchError))
	assert.Equal(t, aerr.GetUserMessage(err), "Failed to fetch available channels.")

	assert.Equal(t, ids(reg.List()), []string{"A"})

	state, ok := reg.State().(Failed)
	assert.True(t, ok)
	assert.ErrSpec(t, state.Err, common.ErrFetch)

	// recover
	src.mu.Lock()
	src.err = nil
	src.mu.Unlock()

	assert.NoErr(t, reg.Reload(ctx))
	assert.Equal(t, reg.State(), State(Idle{}))
}

func TestReloadDuplicatedID(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{subs: []model.Subscription{newSub(t, "yt:channel:A", "a")}}
	reg := New(src)
	assert.NoErr(t, reg.Reload(ctx))

	src.mu.Lock()
	src.subs = []model.Subscription{newSub(t, "yt:channel:X", "x"), newSub(t, "yt:playlist:X", "x2")}
	src.mu.Unlock()

	err := reg.Reload(ctx)
	assert.ErrSpec(t, err, common.ErrFetch)
	assert.Equal(t, ids(reg.List()), []string{"A"})
}

func TestSelect(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{subs: []model.Subscription{newSub(t, "yt:channel:A", "a"), newSub(t, "yt:channel:B", "b")}}
	reg := New(src)

	// nothing loaded - select ignored
	_, ok := reg.Select("A")
	assert.False(t, ok)
	assert.Equal(t, reg.SelectedID(), "")

	assert.NoErr(t, reg.Reload(ctx))

	sub, ok := reg.Select("B")
	assert.True(t, ok)
	assert.Equal(t, sub.Title, "b")
	assert.Equal(t, reg.SelectedID(), "B")

	// unknown id - no-op
	_, ok = reg.Select("Z")
	assert.False(t, ok)
	assert.Equal(t, reg.SelectedID(), "B")

	// subscription vanished after reload; selection is kept but not resolved
	src.mu.Lock()
	src.subs = []model.Subscription{newSub(t, "yt:channel:A", "a")}
	src.mu.Unlock()

	assert.NoErr(t, reg.Reload(ctx))
	assert.Equal(t, reg.SelectedID(), "B")

	_, ok = reg.Selected()
	assert.False(t, ok)

	snap := reg.Snapshot()
	_, ok = snap.Selected()
	assert.False(t, ok)

	reg.ClearSelection()
	assert.Equal(t, reg.SelectedID(), "")
}

func startReloads(t *testing.T, reg *Registry, src *fakeSource, wg *sync.WaitGroup, count int) {
	t.Helper()

	for i := range count {
		wg.Add(1)

		go func() {
			defer wg.Done()
			assert.NoErr(t, reg.Reload(context.Background()))
		}()

		assert.Eventually(t, testTimeout, func() bool { return src.callCount() == i+1 })
	}
}

func TestReloadOutOfOrder(t *testing.T) {
	src := &fakeSource{blocking: true}
	reg := New(src)

	var wg sync.WaitGroup

	startReloads(t, reg, src, &wg, 2)
	assert.Equal(t, reg.State(), State(Loading{}))

	// newer reload finish first
	src.respond(1, newSub(t, "yt:channel:NEW", "new"))
	assert.Eventually(t, testTimeout, func() bool { return len(reg.List()) == 1 })
	assert.Equal(t, reg.State(), State(Idle{}))

	// older result is dropped
	src.respond(0, newSub(t, "yt:channel:OLD", "old"))
	wg.Wait()

	assert.Equal(t, ids(reg.List()), []string{"NEW"})
	assert.Equal(t, reg.State(), State(Idle{}))
}

func TestReloadInOrder(t *testing.T) {
	src := &fakeSource{blocking: true}
	reg := New(src)

	var wg sync.WaitGroup

	startReloads(t, reg, src, &wg, 2)

	src.respond(0, newSub(t, "yt:channel:OLD", "old"))
	assert.Eventually(t, testTimeout, func() bool { return len(reg.List()) == 1 })
	// second reload still in progress
	assert.Equal(t, reg.State(), State(Loading{}))

	src.respond(1, newSub(t, "yt:channel:NEW", "new"))
	wg.Wait()

	assert.Equal(t, ids(reg.List()), []string{"NEW"})
	assert.Equal(t, reg.State(), State(Idle{}))
}
