package web

//
// flash.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"net/http"

	"gitea.com/go-chi/session"
	"github.com/rs/zerolog"
	"gitlab.com/kabes/go-ytdash/internal/aerr"
	nt "gitlab.com/kabes/go-ytdash/internal/web/templates"
)

const (
	sessFlash         = "flash"
	sessDraftURL      = "draft_url"
	sessDraftInterval = "draft_interval"
)

func setFlash(r *http.Request, logger *zerolog.Logger, flash nt.Flash) {
	sess := session.GetSession(r)
	if sess == nil {
		return
	}

	if err := sess.Set(sessFlash, flash); err != nil {
		logger.Warn().Err(err).Msg("store flash in session failed")
	}
}

// flashError put user message of error as flash.
func flashError(r *http.Request, logger *zerolog.Logger, err error, defaultmsg string) {
	setFlash(r, logger, nt.Flash{Error: aerr.GetUserMessageOr(err, defaultmsg)})
}

// popFlash return and remove flash from session.
func popFlash(r *http.Request) *nt.Flash {
	sess := session.GetSession(r)
	if sess == nil {
		return nil
	}

	flash, ok := sess.Get(sessFlash).(nt.Flash)
	if !ok {
		return nil
	}

	_ = sess.Delete(sessFlash)

	return &flash
}

func storeDraft(r *http.Request, url, interval string) {
	if sess := session.GetSession(r); sess != nil {
		_ = sess.Set(sessDraftURL, url)
		_ = sess.Set(sessDraftInterval, interval)
	}
}

func clearDraft(r *http.Request) {
	if sess := session.GetSession(r); sess != nil {
		_ = sess.Delete(sessDraftURL)
		_ = sess.Delete(sessDraftInterval)
	}
}

func loadDraft(r *http.Request) (string, string) {
	sess := session.GetSession(r)
	if sess == nil {
		return "", ""
	}

	url, _ := sess.Get(sessDraftURL).(string)
	interval, _ := sess.Get(sessDraftInterval).(string)

	return url, interval
}
