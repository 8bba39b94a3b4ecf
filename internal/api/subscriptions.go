package api

//
// subscriptions.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/rs/zerolog"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-ytdash/internal/aerr"
	"gitlab.com/kabes/go-ytdash/internal/command"
	"gitlab.com/kabes/go-ytdash/internal/common"
	"gitlab.com/kabes/go-ytdash/internal/mutation"
	"gitlab.com/kabes/go-ytdash/internal/server/srvsupport"
	"gitlab.com/kabes/go-ytdash/internal/service"
)

type subscriptionsResource struct {
	dashboardSrv *service.DashboardSrv
}

func newSubscriptionsResource(i do.Injector) (subscriptionsResource, error) {
	return subscriptionsResource{
		dashboardSrv: do.MustInvoke[*service.DashboardSrv](i),
	}, nil
}

func (s subscriptionsResource) Routes() *chi.Mux {
	r := chi.NewRouter()
	r.Get(`/`, srvsupport.WrapNamed(s.list, "api_subs_list"))
	r.Post(`/`, srvsupport.WrapNamed(s.add, "api_subs_add"))
	r.Put(`/{id}/interval`, srvsupport.WrapNamed(s.updateInterval, "api_subs_interval"))
	r.Delete(`/{id}`, srvsupport.WrapNamed(s.delete, "api_subs_delete"))

	return r
}

func (s subscriptionsResource) list(ctx context.Context, w http.ResponseWriter, r *http.Request,
	logger *zerolog.Logger,
) {
	_ = ctx
	_ = logger

	subs := s.dashboardSrv.Subscriptions()

	res := make([]subscriptionDTO, 0, len(subs))
	for _, sub := range subs {
		res = append(res, newSubscriptionDTO(&sub))
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &res)
}

type addSubscriptionResponse struct {
	Subscription *subscriptionDTO `json:"subscription,omitempty"`
	Warning      string           `json:"warning,omitempty"`
}

func (s subscriptionsResource) add(ctx context.Context, w http.ResponseWriter, r *http.Request,
	logger *zerolog.Logger,
) {
	var req addSubscriptionRequest

	if err := render.DecodeJSON(r.Body, &req); err != nil {
		logger.Debug().Err(err).Msg("parse json body error")
		writeError(w, r, http.StatusBadRequest, "Invalid request.")

		return
	}

	cmd := command.AddSubscriptionCmd{URL: req.URL, Interval: string(req.Interval)}

	sub, err := s.dashboardSrv.AddSubscription(ctx, &cmd)
	// api client is informed by response; form state is not kept
	s.dashboardSrv.ResetForm(mutation.KindAdd, "")

	res := addSubscriptionResponse{}

	switch {
	case errors.Is(err, common.ErrReloadAfterMutation):
		logger.Warn().Err(err).Msg("subscription added but reload failed")

		res.Warning = aerr.GetUserMessage(err)
	case err != nil:
		logger.WithLevel(aerr.LogLevelForError(err)).Err(err).Msg("add subscription failed")
		checkAndWriteError(w, r, err)

		return
	}

	if sub.SourceKey != "" {
		dto := newSubscriptionDTO(&sub)
		res.Subscription = &dto
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, &res)
}

func (s subscriptionsResource) updateInterval(ctx context.Context, w http.ResponseWriter, r *http.Request,
	logger *zerolog.Logger,
) {
	id := chi.URLParam(r, "id")

	var req updateIntervalRequest

	if err := render.DecodeJSON(r.Body, &req); err != nil {
		logger.Debug().Err(err).Msg("parse json body error")
		writeError(w, r, http.StatusBadRequest, "Invalid request.")

		return
	}

	cmd := command.UpdateIntervalCmd{ID: id, Interval: string(req.Interval)}

	err := s.dashboardSrv.UpdateInterval(ctx, &cmd)
	s.dashboardSrv.ResetForm(mutation.KindUpdateInterval, id)

	switch {
	case errors.Is(err, common.ErrReloadAfterMutation):
		logger.Warn().Err(err).Str(common.LogKeySubID, id).Msg("interval updated but reload failed")
		writeOK(w, r, aerr.GetUserMessage(err))
	case err != nil:
		logger.WithLevel(aerr.LogLevelForError(err)).Err(err).Str(common.LogKeySubID, id).
			Msg("update interval failed")
		checkAndWriteError(w, r, err)
	default:
		writeOK(w, r, "")
	}
}

func (s subscriptionsResource) delete(ctx context.Context, w http.ResponseWriter, r *http.Request,
	logger *zerolog.Logger,
) {
	id := chi.URLParam(r, "id")
	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))

	cmd := command.DeleteSubscriptionCmd{ID: id, Confirmed: confirmed}

	err := s.dashboardSrv.DeleteSubscription(ctx, &cmd)
	s.dashboardSrv.ResetForm(mutation.KindDelete, id)

	switch {
	case errors.Is(err, common.ErrReloadAfterMutation):
		logger.Warn().Err(err).Str(common.LogKeySubID, id).Msg("subscription deleted but reload failed")
		writeOK(w, r, aerr.GetUserMessage(err))
	case err != nil:
		logger.WithLevel(aerr.LogLevelForError(err)).Err(err).Str(common.LogKeySubID, id).
			Msg("delete subscription failed")
		checkAndWriteError(w, r, err)
	default:
		writeOK(w, r, "")
	}
}
