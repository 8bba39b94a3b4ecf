package web

//
// dashboard.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-ytdash/internal/aerr"
	"gitlab.com/kabes/go-ytdash/internal/command"
	"gitlab.com/kabes/go-ytdash/internal/common"
	"gitlab.com/kabes/go-ytdash/internal/mutation"
	"gitlab.com/kabes/go-ytdash/internal/server/srvsupport"
	"gitlab.com/kabes/go-ytdash/internal/service"
	"gitlab.com/kabes/go-ytdash/internal/view"
	nt "gitlab.com/kabes/go-ytdash/internal/web/templates"
)

type dashboardPages struct {
	dashboardSrv *service.DashboardSrv
	renderer     *nt.Renderer
	webroot      string
}

func newDashboardPages(i do.Injector) (dashboardPages, error) {
	return dashboardPages{
		dashboardSrv: do.MustInvoke[*service.DashboardSrv](i),
		renderer:     do.MustInvoke[*nt.Renderer](i),
		webroot:      do.MustInvokeNamed[string](i, "server.webroot"),
	}, nil
}

func (d dashboardPages) Routes() *chi.Mux {
	r := chi.NewRouter()
	r.Get(`/`, srvsupport.WrapNamed(d.index, "web_index"))
	r.Post(`/refresh`, srvsupport.WrapNamed(d.refresh, "web_refresh"))
	r.Post(`/select`, srvsupport.WrapNamed(d.selectSub, "web_select"))
	r.Post(`/feed/retry`, srvsupport.WrapNamed(d.retryFeed, "web_feed_retry"))
	r.Post(`/subs`, srvsupport.WrapNamed(d.addSub, "web_subs_add"))
	r.Post(`/subs/{id}/interval`, srvsupport.WrapNamed(d.updateInterval, "web_subs_interval"))
	r.Get(`/subs/{id}/delete`, srvsupport.WrapNamed(d.deleteConfirm, "web_subs_delete_confirm"))
	r.Post(`/subs/{id}/delete`, srvsupport.WrapNamed(d.deleteSub, "web_subs_delete"))

	return r
}

func (d dashboardPages) index(ctx context.Context, w http.ResponseWriter, r *http.Request, logger *zerolog.Logger) {
	_ = ctx
	_ = logger

	model := d.dashboardSrv.View(r.URL.Query().Get("edit"), time.Now())
	draftURL, draftInterval := loadDraft(r)

	d.renderer.WritePage(w, &nt.DashboardPage{
		Model:         model,
		DraftURL:      draftURL,
		DraftInterval: draftInterval,
	}, popFlash(r))
}

func (d dashboardPages) refresh(ctx context.Context, w http.ResponseWriter, r *http.Request, logger *zerolog.Logger) {
	_ = logger

	d.dashboardSrv.RefreshAsync(ctx)
	d.redirectHome(w, r)
}

func (d dashboardPages) selectSub(ctx context.Context, w http.ResponseWriter, r *http.Request, logger *zerolog.Logger) {
	id := r.FormValue("id")

	if id == "" {
		// "choose a channel" entry
		d.redirectHome(w, r)

		return
	}

	if err := d.dashboardSrv.SelectAsync(ctx, id); err != nil {
		logger.WithLevel(aerr.LogLevelForError(err)).Err(err).Str(common.LogKeySubID, id).Msg("select subscription failed")
		flashError(r, logger, err, "Unknown subscription.")
	}

	d.redirectHome(w, r)
}

func (d dashboardPages) retryFeed(ctx context.Context, w http.ResponseWriter, r *http.Request, logger *zerolog.Logger) {
	if err := d.dashboardSrv.RetryFeedAsync(ctx); err != nil {
		logger.WithLevel(aerr.LogLevelForError(err)).Err(err).Msg("retry feed failed")
		flashError(r, logger, err, "No subscription selected.")
	}

	d.redirectHome(w, r)
}

func (d dashboardPages) addSub(ctx context.Context, w http.ResponseWriter, r *http.Request, logger *zerolog.Logger) {
	cmd := command.AddSubscriptionCmd{
		URL:      r.FormValue("url"),
		Interval: r.FormValue("interval"),
	}

	sub, err := d.dashboardSrv.AddSubscription(ctx, &cmd)
	d.dashboardSrv.ResetForm(mutation.KindAdd, "")

	switch {
	case errors.Is(err, common.ErrReloadAfterMutation):
		clearDraft(r)
		setFlash(r, logger, nt.Flash{
			Message: "Subscription added.",
			Warning: aerr.GetUserMessage(err),
		})
	case err != nil:
		logger.WithLevel(aerr.LogLevelForError(err)).Err(err).Msg("add subscription failed")
		storeDraft(r, cmd.URL, cmd.Interval)
		flashError(r, logger, err, "Failed to add subscription.")
	default:
		clearDraft(r)
		setFlash(r, logger, nt.Flash{Message: "Subscription " + sub.DisplayTitle() + " added."})
	}

	d.redirectHome(w, r)
}

func (d dashboardPages) updateInterval(ctx context.Context, w http.ResponseWriter, r *http.Request,
	logger *zerolog.Logger,
) {
	id := chi.URLParam(r, "id")
	cmd := command.UpdateIntervalCmd{ID: id, Interval: r.FormValue("interval")}

	err := d.dashboardSrv.UpdateInterval(ctx, &cmd)

	switch {
	case errors.Is(err, common.ErrReloadAfterMutation):
		d.dashboardSrv.ResetForm(mutation.KindUpdateInterval, id)
		setFlash(r, logger, nt.Flash{Message: "Fetch interval updated.", Warning: aerr.GetUserMessage(err)})
	case err != nil:
		// keep edit mode open; error is presented by form state
		logger.WithLevel(aerr.LogLevelForError(err)).Err(err).Str(common.LogKeySubID, id).Msg("update interval failed")
		srvsupport.Redirect(w, r, d.webroot+"/?edit="+url.QueryEscape(id))

		return
	default:
		d.dashboardSrv.ResetForm(mutation.KindUpdateInterval, id)
		setFlash(r, logger, nt.Flash{Message: "Fetch interval updated."})
	}

	d.redirectHome(w, r)
}

func (d dashboardPages) deleteConfirm(ctx context.Context, w http.ResponseWriter, r *http.Request,
	logger *zerolog.Logger,
) {
	_ = ctx

	id := chi.URLParam(r, "id")

	row, ok := findRow(d.dashboardSrv.View("", time.Now()), id)
	if !ok {
		logger.Debug().Str(common.LogKeySubID, id).Msg("delete confirm for unknown subscription")
		srvsupport.WriteError(w, r, http.StatusNotFound, "Unknown subscription.")

		return
	}

	d.renderer.WritePage(w, &nt.DeleteConfirmPage{Sub: row}, popFlash(r))
}

func (d dashboardPages) deleteSub(ctx context.Context, w http.ResponseWriter, r *http.Request, logger *zerolog.Logger) {
	id := chi.URLParam(r, "id")
	cmd := command.DeleteSubscriptionCmd{ID: id, Confirmed: r.FormValue("confirm") == "yes"}

	err := d.dashboardSrv.DeleteSubscription(ctx, &cmd)
	d.dashboardSrv.ResetForm(mutation.KindDelete, id)

	switch {
	case errors.Is(err, common.ErrReloadAfterMutation):
		setFlash(r, logger, nt.Flash{Message: "Subscription deleted.", Warning: aerr.GetUserMessage(err)})
	case err != nil:
		logger.WithLevel(aerr.LogLevelForError(err)).Err(err).Str(common.LogKeySubID, id).Msg("delete subscription failed")
		flashError(r, logger, err, "Failed to delete subscription.")
	default:
		setFlash(r, logger, nt.Flash{Message: "Subscription deleted."})
	}

	d.redirectHome(w, r)
}

func (d dashboardPages) redirectHome(w http.ResponseWriter, r *http.Request) {
	srvsupport.Redirect(w, r, d.webroot+"/")
}

func findRow(model view.Model, id string) (view.SubscriptionRow, bool) {
	for _, row := range model.Subscriptions {
		if row.ID == id {
			return row, true
		}
	}

	return view.SubscriptionRow{}, false
}
