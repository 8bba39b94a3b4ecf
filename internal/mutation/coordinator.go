// Package mutation perform changes of subscriptions on backend and keep registry in sync.
package mutation

//
// coordinator.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-ytdash/internal/aerr"
	"gitlab.com/kabes/go-ytdash/internal/backend"
	"gitlab.com/kabes/go-ytdash/internal/command"
	"gitlab.com/kabes/go-ytdash/internal/common"
	"gitlab.com/kabes/go-ytdash/internal/config"
	"gitlab.com/kabes/go-ytdash/internal/feed"
	"gitlab.com/kabes/go-ytdash/internal/model"
	"gitlab.com/kabes/go-ytdash/internal/registry"
)

//nolint:gochecknoglobals
var (
	mutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ytdash_mutations_total",
			Help: "Number of subscription changes.",
		},
		[]string{"kind", "result"},
	)
	markViewedFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ytdash_mark_viewed_failures_total",
			Help: "Number of failed mark-viewed requests.",
		},
	)
)

// Backend perform changes.
type Backend interface {
	AddSubscription(ctx context.Context, link string, interval int) (model.Subscription, error)
	SetFetchInterval(ctx context.Context, sourceKey string, interval int) error
	DeleteSubscription(ctx context.Context, sourceKey string) error
	SetViewed(ctx context.Context, sourceKey string, viewed time.Time) error
}

// Registry is reloaded after each successful change.
type Registry interface {
	Reload(ctx context.Context) error
	Resolve(id string) (model.Subscription, bool)
	SelectedID() string
	ClearSelection()
}

type FeedCache interface {
	Clear()
}

type opKey struct {
	kind   Kind
	target string
}

// Coordinator is safe for concurrent use.
type Coordinator struct {
	backend  Backend
	registry Registry
	feed     FeedCache

	markTimeout time.Duration
	now         func() time.Time

	mu      sync.Mutex
	states  map[opKey]State
	marking map[string]struct{}
	closed  bool
	wg      sync.WaitGroup
}

func New(backend Backend, registry Registry, feed FeedCache) *Coordinator {
	return &Coordinator{
		backend:     backend,
		registry:    registry,
		feed:        feed,
		markTimeout: config.DefaultMarkViewedTimeout,
		now:         time.Now,
		states:      make(map[opKey]State),
		marking:     make(map[string]struct{}),
	}
}

func NewCoordinatorI(i do.Injector) (*Coordinator, error) {
	return New(
		do.MustInvoke[*backend.Client](i),
		do.MustInvoke[*registry.Registry](i),
		do.MustInvoke[*feed.Cache](i),
	), nil
}

// Add create new subscription on backend and reload registry.
func (c *Coordinator) Add(ctx context.Context, cmd *command.AddSubscriptionCmd) (model.Subscription, error) {
	key := opKey{KindAdd, ""}

	opid, err := c.begin(key)
	if err != nil {
		return model.Subscription{}, err
	}

	logger := zerolog.Ctx(ctx).With().Str(common.LogKeyOpID, opid).Str(common.LogKeyOpKind, string(KindAdd)).Logger()
	ctx = logger.WithContext(ctx)

	cmd.Sanitize()

	if err := cmd.Validate(); err != nil {
		return model.Subscription{}, c.fail(ctx, key, err)
	}

	logger.Debug().Str("url", cmd.URL).Int("interval", cmd.FetchInterval()).Msg("Mutation: add subscription")

	sub, err := c.backend.AddSubscription(ctx, cmd.URL, cmd.FetchInterval())
	if err != nil {
		return model.Subscription{}, c.fail(ctx, key, backendError(common.ErrAdd, err))
	}

	msg := "Subscription added."
	if sub.ID != "" {
		msg = fmt.Sprintf("Subscription %q added.", sub.DisplayTitle())
	}

	return sub, c.succeed(ctx, key, msg)
}

// UpdateInterval change fetch interval of subscription and reload registry.
func (c *Coordinator) UpdateInterval(ctx context.Context, cmd *command.UpdateIntervalCmd) error {
	cmd.Sanitize()
	key := opKey{KindUpdateInterval, cmd.ID}

	opid, err := c.begin(key)
	if err != nil {
		return err
	}

	logger := zerolog.Ctx(ctx).With().Str(common.LogKeyOpID, opid).Str(common.LogKeyOpKind, string(KindUpdateInterval)).
		Str(common.LogKeySubID, cmd.ID).Logger()
	ctx = logger.WithContext(ctx)

	if err := cmd.Validate(); err != nil {
		return c.fail(ctx, key, err)
	}

	sub, ok := c.registry.Resolve(cmd.ID)
	if !ok {
		return c.fail(ctx, key, common.ErrUnknownSubscription.WithMeta(common.LogKeySubID, cmd.ID))
	}

	logger.Debug().Int("interval", cmd.FetchInterval()).Msg("Mutation: update interval")

	if err := c.backend.SetFetchInterval(ctx, sub.SourceKey, cmd.FetchInterval()); err != nil {
		return c.fail(ctx, key, backendError(common.ErrUpdate, err))
	}

	return c.succeed(ctx, key, "Fetch interval updated.")
}

// Delete remove subscription from backend. When deleted subscription is selected, selection
// and feed are cleared.
func (c *Coordinator) Delete(ctx context.Context, cmd *command.DeleteSubscriptionCmd) error {
	cmd.Sanitize()
	key := opKey{KindDelete, cmd.ID}

	opid, err := c.begin(key)
	if err != nil {
		return err
	}

	logger := zerolog.Ctx(ctx).With().Str(common.LogKeyOpID, opid).Str(common.LogKeyOpKind, string(KindDelete)).
		Str(common.LogKeySubID, cmd.ID).Logger()
	ctx = logger.WithContext(ctx)

	if err := cmd.Validate(); err != nil {
		return c.fail(ctx, key, err)
	}

	sub, ok := c.registry.Resolve(cmd.ID)
	if !ok {
		return c.fail(ctx, key, common.ErrUnknownSubscription.WithMeta(common.LogKeySubID, cmd.ID))
	}

	logger.Debug().Str(common.LogKeySourceKey, sub.SourceKey).Msg("Mutation: delete subscription")

	if err := c.backend.DeleteSubscription(ctx, sub.SourceKey); err != nil {
		return c.fail(ctx, key, backendError(common.ErrDelete, err))
	}

	if c.registry.SelectedID() == sub.ID {
		logger.Debug().Msg("Mutation: deleted subscription was selected; clearing selection")
		c.registry.ClearSelection()
		c.feed.Clear()
	}

	return c.succeed(ctx, key, fmt.Sprintf("Subscription %q deleted.", sub.DisplayTitle()))
}

// MarkViewed send "viewed" timestamp to backend in background. Errors are only logged.
// Mark for subscription that is already in progress is skipped.
func (c *Coordinator) MarkViewed(ctx context.Context, sub model.Subscription, at time.Time) {
	logger := zerolog.Ctx(ctx).With().Str(common.LogKeySubID, sub.ID).Logger()

	c.mu.Lock()

	if c.closed {
		c.mu.Unlock()
		logger.Debug().Msg("Mutation: coordinator closed; skip mark viewed")

		return
	}

	if _, busy := c.marking[sub.ID]; busy {
		c.mu.Unlock()
		logger.Debug().Msg("Mutation: mark viewed already in progress")

		return
	}

	c.marking[sub.ID] = struct{}{}
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()

		defer func() {
			c.mu.Lock()
			delete(c.marking, sub.ID)
			c.mu.Unlock()
		}()

		mctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.markTimeout)
		defer cancel()

		if err := c.backend.SetViewed(mctx, sub.SourceKey, at); err != nil {
			markViewedFailures.Inc()

			err = aerr.ApplyFor(common.ErrMarkViewed, err)
			logger.Warn().Err(err).Msg("Mutation: mark viewed failed")

			return
		}

		logger.Debug().Time("viewed", at).Msg("Mutation: subscription marked as viewed")
	}()
}

// Reset return resting state of operation to Idle. Operation in progress is not affected.
func (c *Coordinator) Reset(kind Kind, target string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := opKey{kind, target}
	if s, ok := c.states[key]; ok && !InProgress(s) {
		delete(c.states, key)
	}
}

// Snapshot is a copy of all non-idle operation states.
type Snapshot struct {
	Add     State
	Updates map[string]State
	Deletes map[string]State
}

func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Add:     c.states[opKey{KindAdd, ""}],
		Updates: make(map[string]State),
		Deletes: make(map[string]State),
	}

	if snap.Add == nil {
		snap.Add = Idle{}
	}

	for key, state := range c.states {
		switch key.kind {
		case KindUpdateInterval:
			snap.Updates[key.target] = state
		case KindDelete:
			snap.Deletes[key.target] = state
		case KindAdd:
		}
	}

	return snap
}

// Shutdown wait for background mark-viewed requests.
func (c *Coordinator) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	done := make(chan struct{})

	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return aerr.Wrapf(ctx.Err(), "wait for mark viewed requests failed").WithTag(aerr.InternalError)
	}
}

// Wait for in-flight mark-viewed requests without closing coordinator.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}

//-------------------------------------------------------------

func (c *Coordinator) begin(key opKey) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.states[key]; ok && InProgress(s) {
		return "", common.ErrOperationInProgress.WithMeta("kind", key.kind, "target", key.target)
	}

	opid := xid.New().String()
	c.states[key] = Submitting{OpID: opid, Since: c.now()}

	return opid, nil
}

func (c *Coordinator) fail(ctx context.Context, key opKey, err error) error {
	mutationsTotal.WithLabelValues(string(key.kind), "error").Inc()
	zerolog.Ctx(ctx).WithLevel(aerr.LogLevelForError(err)).Err(err).Msg("Mutation: failed")

	c.setState(key, Failed{Err: err, At: c.now()})

	return err
}

// succeed reload registry and set Succeeded state. Reload failure is returned as ErrReloadAfterMutation.
func (c *Coordinator) succeed(ctx context.Context, key opKey, msg string) error {
	logger := zerolog.Ctx(ctx)

	mutationsTotal.WithLabelValues(string(key.kind), "ok").Inc()

	var refreshErr error

	if err := c.registry.Reload(ctx); err != nil {
		refreshErr = aerr.ApplyFor(common.ErrReloadAfterMutation, err)
		logger.Warn().Err(refreshErr).Msg("Mutation: saved but reload failed")
	}

	c.setState(key, Succeeded{Message: msg, At: c.now(), RefreshErr: refreshErr})

	logger.Info().Msg("Mutation: " + msg)

	return refreshErr
}

func (c *Coordinator) setState(key opKey, state State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.states[key] = state
}

// backendError wrap err; message from backend rejection is used as user message.
func backendError(sentinel aerr.AppError, err error) error {
	if msg := backend.RejectionMessage(err); msg != "" {
		return aerr.ApplyFor(sentinel, err, "", msg)
	}

	return aerr.ApplyFor(sentinel, err)
}
