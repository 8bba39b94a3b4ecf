package api

//
// dashboard.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/rs/zerolog"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-ytdash/internal/aerr"
	"gitlab.com/kabes/go-ytdash/internal/common"
	"gitlab.com/kabes/go-ytdash/internal/server/srvsupport"
	"gitlab.com/kabes/go-ytdash/internal/service"
	"gitlab.com/kabes/go-ytdash/internal/view"
)

type dashboardResource struct {
	dashboardSrv *service.DashboardSrv
}

func newDashboardResource(i do.Injector) (dashboardResource, error) {
	return dashboardResource{
		dashboardSrv: do.MustInvoke[*service.DashboardSrv](i),
	}, nil
}

func (d dashboardResource) Routes() *chi.Mux {
	r := chi.NewRouter()
	r.Get(`/view`, srvsupport.WrapNamed(d.view, "api_view"))
	r.Post(`/refresh`, srvsupport.WrapNamed(d.refresh, "api_refresh"))
	r.Post(`/select/{id}`, srvsupport.WrapNamed(d.selectSub, "api_select"))

	return r
}

func (d dashboardResource) view(ctx context.Context, w http.ResponseWriter, r *http.Request, logger *zerolog.Logger) {
	_ = ctx
	_ = logger

	model := d.dashboardSrv.View(r.URL.Query().Get("edit"), time.Now())

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &model)
}

func (d dashboardResource) refresh(ctx context.Context, w http.ResponseWriter, r *http.Request, logger *zerolog.Logger) {
	if err := d.dashboardSrv.Refresh(ctx); err != nil {
		logger.WithLevel(aerr.LogLevelForError(err)).Err(err).Msg("refresh subscriptions failed")
		checkAndWriteError(w, r, err)

		return
	}

	subs := d.dashboardSrv.Subscriptions()

	res := make([]subscriptionDTO, 0, len(subs))
	for _, s := range subs {
		res = append(res, newSubscriptionDTO(&s))
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &res)
}

type selectResponse struct {
	Subscription subscriptionDTO  `json:"subscription"`
	Videos       []view.VideoView `json:"videos"`
}

func (d dashboardResource) selectSub(ctx context.Context, w http.ResponseWriter, r *http.Request,
	logger *zerolog.Logger,
) {
	id := chi.URLParam(r, "id")

	sub, err := d.dashboardSrv.Select(ctx, id)
	if err != nil {
		logger.WithLevel(aerr.LogLevelForError(err)).Err(err).Str(common.LogKeySubID, id).
			Msg("select subscription failed")
		checkAndWriteError(w, r, err)

		return
	}

	videos := d.dashboardSrv.Videos(sub.SourceKey)
	now := time.Now()

	res := selectResponse{
		Subscription: newSubscriptionDTO(&sub),
		Videos:       make([]view.VideoView, 0, len(videos)),
	}

	for _, v := range videos {
		res.Videos = append(res.Videos, view.NewVideoView(&v, sub.LastViewedAt, now))
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &res)
}
