package templates

//
// pages.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

//go:generate qtc -dir=.

import (
	"strconv"

	qt "github.com/valyala/quicktemplate"
	"gitlab.com/kabes/go-ytdash/internal/model"
	"gitlab.com/kabes/go-ytdash/internal/view"
)

// Page is rendered inside of the base layout.
type Page interface {
	StreamTitle(qw *qt.Writer)
	StreamBody(qw *qt.Writer, ctx *PageContext)
	// RefreshAfter return number of seconds after which page should be reloaded; 0 disable.
	RefreshAfter() int
}

const stylesheet = `body{font-family:sans-serif;margin:1em auto;max-width:70em}
.error{color:#b00020}.warning{color:#a86400}.message{color:#1b5e20}.pending{color:#555}
.videos{display:grid;grid-template-columns:repeat(auto-fill,minmax(18em,1fr));gap:1em}
.video{border:1px solid #ddd;padding:.5em}.video img{width:100%}
.new{background:#c62828;color:#fff;padding:0 .3em;font-size:.8em}
.duration{float:right;font-size:.8em}table.subs td{padding:.2em .6em}`

// PendingRefreshAfter is reload delay of page while some data is loading.
const PendingRefreshAfter = 2

type DashboardPage struct {
	Model view.Model
	// Draft of add subscription form.
	DraftURL      string
	DraftInterval string
}

func (d *DashboardPage) RefreshAfter() int {
	if d.Model.Pending {
		return PendingRefreshAfter
	}

	return 0
}

func (d *DashboardPage) draftInterval() string {
	if d.DraftInterval == "" {
		return strconv.Itoa(model.DefaultFetchInterval)
	}

	return d.DraftInterval
}

// DeleteConfirmPage ask user to confirm removing subscription.
type DeleteConfirmPage struct {
	Sub view.SubscriptionRow
}

func (d *DeleteConfirmPage) RefreshAfter() int {
	return 0
}
