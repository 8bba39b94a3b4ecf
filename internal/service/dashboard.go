//
// dashboard.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-ytdash/internal/aerr"
	"gitlab.com/kabes/go-ytdash/internal/command"
	"gitlab.com/kabes/go-ytdash/internal/common"
	"gitlab.com/kabes/go-ytdash/internal/feed"
	"gitlab.com/kabes/go-ytdash/internal/model"
	"gitlab.com/kabes/go-ytdash/internal/mutation"
	"gitlab.com/kabes/go-ytdash/internal/registry"
	"gitlab.com/kabes/go-ytdash/internal/view"
)

// DashboardSrv connect registry, feed cache and mutations into operations available for user.
type DashboardSrv struct {
	registry  *registry.Registry
	feed      *feed.Cache
	mutations *mutation.Coordinator

	// selectMu keep order of selections and feed requests the same
	selectMu sync.Mutex
	wg       sync.WaitGroup
}

func NewDashboardSrv(i do.Injector) (*DashboardSrv, error) {
	srv := &DashboardSrv{
		registry:  do.MustInvoke[*registry.Registry](i),
		feed:      do.MustInvoke[*feed.Cache](i),
		mutations: do.MustInvoke[*mutation.Coordinator](i),
	}

	srv.feed.SetViewedMarker(srv.mutations)

	return srv, nil
}

// Refresh reload list of subscriptions.
func (d *DashboardSrv) Refresh(ctx context.Context) error {
	//nolint:wrapcheck
	return d.registry.Reload(ctx)
}

// RefreshAsync start reload in background.
func (d *DashboardSrv) RefreshAsync(ctx context.Context) {
	d.background(ctx, "refresh", func(ctx context.Context) error {
		return d.registry.Reload(ctx)
	})
}

// Subscriptions return current list of subscriptions.
func (d *DashboardSrv) Subscriptions() []model.Subscription {
	return d.registry.List()
}

// Select subscription and load its videos. Result of load superseded by newer request is not
// an error.
func (d *DashboardSrv) Select(ctx context.Context, id string) (model.Subscription, error) {
	ticket, err := d.beginSelect(id)
	if err != nil {
		return model.Subscription{}, err
	}

	if err := d.loadFeed(ctx, ticket); err != nil {
		return ticket.Sub, err
	}

	return ticket.Sub, nil
}

// SelectAsync select subscription and start loading videos in background.
func (d *DashboardSrv) SelectAsync(ctx context.Context, id string) error {
	ticket, err := d.beginSelect(id)
	if err != nil {
		return err
	}

	d.background(ctx, "select", func(ctx context.Context) error {
		return d.loadFeed(ctx, ticket)
	})

	return nil
}

// RetryFeedAsync reload videos of selected subscription in background.
func (d *DashboardSrv) RetryFeedAsync(ctx context.Context) error {
	d.selectMu.Lock()

	sub, ok := d.registry.Selected()
	if !ok {
		d.selectMu.Unlock()

		return common.ErrUnknownSubscription.WithUserMsg("No subscription selected.")
	}

	ticket := d.feed.Begin(sub)
	d.selectMu.Unlock()

	d.background(ctx, "retry", func(ctx context.Context) error {
		return d.loadFeed(ctx, ticket)
	})

	return nil
}

// Videos return loaded videos of subscription. Missing or not loaded subscription result
// in empty list.
func (d *DashboardSrv) Videos(sourceKey string) []model.Video {
	snap := d.feed.Snapshot()
	videos, _ := snap.VideosFor(sourceKey)

	return videos
}

func (d *DashboardSrv) AddSubscription(ctx context.Context, cmd *command.AddSubscriptionCmd,
) (model.Subscription, error) {
	//nolint:wrapcheck
	return d.mutations.Add(ctx, cmd)
}

func (d *DashboardSrv) UpdateInterval(ctx context.Context, cmd *command.UpdateIntervalCmd) error {
	//nolint:wrapcheck
	return d.mutations.UpdateInterval(ctx, cmd)
}

func (d *DashboardSrv) DeleteSubscription(ctx context.Context, cmd *command.DeleteSubscriptionCmd) error {
	//nolint:wrapcheck
	return d.mutations.Delete(ctx, cmd)
}

// ResetForm clear resting state of mutation form.
func (d *DashboardSrv) ResetForm(kind mutation.Kind, target string) {
	d.mutations.Reset(kind, target)
}

// View compose current state of dashboard.
func (d *DashboardSrv) View(editID string, now time.Time) view.Model {
	return view.Compose(view.Input{
		Registry: d.registry.Snapshot(),
		Feed:     d.feed.Snapshot(),
		Ops:      d.mutations.Snapshot(),
		EditID:   editID,
	}, now)
}

// Wait for background loads and mark-viewed requests.
func (d *DashboardSrv) Wait() {
	d.wg.Wait()
	d.mutations.Wait()
}

func (d *DashboardSrv) Shutdown(ctx context.Context) error {
	done := make(chan struct{})

	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return aerr.Wrapf(ctx.Err(), "wait for background tasks failed").WithTag(aerr.InternalError)
	}
}

//-------------------------------------------------------------

// beginSelect change selection and issue feed request for it.
func (d *DashboardSrv) beginSelect(id string) (feed.Ticket, error) {
	d.selectMu.Lock()
	defer d.selectMu.Unlock()

	sub, ok := d.registry.Select(id)
	if !ok {
		return feed.Ticket{}, common.ErrUnknownSubscription.WithMeta(common.LogKeySubID, id)
	}

	return d.feed.Begin(sub), nil
}

func (d *DashboardSrv) loadFeed(ctx context.Context, ticket feed.Ticket) error {
	err := d.feed.Complete(ctx, ticket)
	if errors.Is(err, common.ErrSuperseded) {
		zerolog.Ctx(ctx).Debug().Str(common.LogKeySubID, ticket.Sub.ID).Msg("DashboardSrv: feed load superseded")

		return nil
	}

	//nolint:wrapcheck
	return err
}

// background run task detached from request context. Errors are stored in components state
// and only logged here.
func (d *DashboardSrv) background(ctx context.Context, name string, task func(context.Context) error) {
	taskid := xid.New().String()
	logger := zerolog.Ctx(ctx).With().Str(common.LogKeyTaskID, taskid).Str("task", name).Logger()
	ctx = logger.WithContext(context.WithoutCancel(ctx))

	d.wg.Add(1)

	go func() {
		defer d.wg.Done()

		ctx, done := common.NewCtxEventLog(ctx, "ytdash.task", name)
		defer done()

		common.EventLogPrintf(ctx, "task start task_id=%s", taskid)
		logger.Debug().Msg("DashboardSrv: background task start")

		if err := task(ctx); err != nil {
			common.EventLogErrorf(ctx, "task failed: %v", err)
			logger.WithLevel(aerr.LogLevelForError(err)).Err(err).Msg("DashboardSrv: background task failed")

			return
		}

		common.EventLogPrintf(ctx, "task finished task_id=%s", taskid)
		logger.Debug().Msg("DashboardSrv: background task finished")
	}()
}
