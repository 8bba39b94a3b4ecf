// Package registry keep local mirror of subscriptions known by backend and current selection.
package registry

//
// registry.go
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
var reloadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ytdash_registry_reloads_total",
		Help: "Number of subscriptions list reloads.",
	},
	[]string{"result"},
)

// Source provide full list of subscriptions.
type Source interface {
	ListSubscriptions(ctx context.Context) ([]model.Subscription, error)
}

// Registry is safe for concurrent use.
type Registry struct {
	source Source

	mu       sync.Mutex
	subs     []model.Subscription
	index    map[string]int
	selected string
	state    State
	loadedAt time.Time

	// every reload get sequence number; result is applied only when newer than already applied.
	issuedSeq  uint64
	appliedSeq uint64
}

func New(source Source) *Registry {
	return &Registry{
		source: source,
		index:  make(map[string]int),
		state:  Idle{},
	}
}

func NewRegistryI(i do.Injector) (*Registry, error) {
	return New(do.MustInvoke[*backend.Client](i)), nil
}

// Reload fetch full subscription list and replace local copy. On failure previous list is kept
// and FetchError is returned.
func (r *Registry) Reload(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	r.mu.Lock()
	r.issuedSeq++
	seq := r.issuedSeq
	r.state = Loading{}
	r.mu.Unlock()

	logger.Debug().Uint64("seq", seq).Msg("Registry: reload start")

	subs, err := r.source.ListSubscriptions(ctx)
	if err != nil {
		err = aerr.ApplyFor(common.ErrFetch, err)
	}

	var index map[string]int

	if err == nil {
		index, err = buildIndex(subs)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	latest := seq == r.issuedSeq

	if err != nil {
		reloadsTotal.WithLabelValues("error").Inc()
		logger.WithLevel(aerr.LogLevelForError(err)).Err(err).Uint64("seq", seq).Msg("Registry: reload failed")

		if latest {
			r.state = Failed{Err: err}
		}

		return err
	}

	if seq > r.appliedSeq {
		r.subs = subs
		r.index = index
		r.appliedSeq = seq
		r.loadedAt = time.Now()

		reloadsTotal.WithLabelValues("ok").Inc()
		logger.Debug().Uint64("seq", seq).Int("count", len(subs)).Msg("Registry: reload finished")
	} else {
		reloadsTotal.WithLabelValues("stale").Inc()
		logger.Debug().Uint64("seq", seq).Msg("Registry: reload result dropped; newer already applied")
	}

	if latest {
		r.state = Idle{}
	}

	return nil
}

// Select mark subscription as selected. Unknown id is ignored and false is returned.
func (r *Registry) Select(id string) (model.Subscription, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.index[id]
	if !ok {
		return model.Subscription{}, false
	}

	r.selected = id

	return r.subs[idx], true
}

func (r *Registry) ClearSelection() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.selected = ""
}

// SelectedID return selected id; subscription may not exist anymore after reload.
func (r *Registry) SelectedID() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.selected
}

// Selected return selected subscription when it still exists.
func (r *Registry) Selected() (model.Subscription, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.resolve(r.selected)
}

func (r *Registry) Resolve(id string) (model.Subscription, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.resolve(id)
}

// List return subscriptions in backend order.
func (r *Registry) List() []model.Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.subs)
}

func (r *Registry) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.state
}

// Snapshot is consistent copy of registry state.
type Snapshot struct {
	Subscriptions []model.Subscription
	SelectedID    string
	State         State
	// Loaded is true when at least one reload succeeded.
	Loaded   bool
	LoadedAt time.Time
}

// Selected return selected subscription if exists.
func (s *Snapshot) Selected() (model.Subscription, bool) {
	if s.SelectedID == "" {
		return model.Subscription{}, false
	}

	for _, sub := range s.Subscriptions {
		if sub.ID == s.SelectedID {
			return sub, true
		}
	}

	return model.Subscription{}, false
}

func (r *Registry) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Snapshot{
		Subscriptions: slices.Clone(r.subs),
		SelectedID:    r.selected,
		State:         r.state,
		Loaded:        r.appliedSeq > 0,
		LoadedAt:      r.loadedAt,
	}
}

//-------------------------------------------------------------

func (r *Registry) resolve(id string) (model.Subscription, bool) {
	if id == "" {
		return model.Subscription{}, false
	}

	idx, ok := r.index[id]
	if !ok {
		return model.Subscription{}, false
	}

	return r.subs[idx], true
}

func buildIndex(subs []model.Subscription) (map[string]int, error) {
	index := make(map[string]int, len(subs))

	for i, s := range subs {
		if _, exists := index[s.ID]; exists {
			return nil, aerr.ApplyFor(common.ErrFetch, common.ErrInvalidResponse.WithMsg("duplicated subscription id")).
				WithMeta(common.LogKeySubID, s.ID)
		}

		index[s.ID] = i
	}

	return index, nil
}
