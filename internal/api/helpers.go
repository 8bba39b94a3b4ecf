// helpers.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
package api

import (
	"net/http"

	"github.com/go-chi/render"
	"gitlab.com/kabes/go-ytdash/internal/aerr"
	"gitlab.com/kabes/go-ytdash/internal/server/srvsupport"
)

type statusResponse struct {
	Status string `json:"status"`
	// Warning is set when change was saved but list of subscriptions was not reloaded.
	Warning string `json:"warning,omitempty"`
}

// checkAndWriteError decode and write error as json to ResponseWriter.
func checkAndWriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := srvsupport.StatusForError(err)

	msg := aerr.GetUserMessage(err)
	if msg == "" || (status == http.StatusInternalServerError && !aerr.HasTag(err, aerr.InternalError)) {
		msg = http.StatusText(status)
	}

	writeError(w, r, status, msg)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	if msg == "" {
		msg = http.StatusText(status)
	}

	render.Status(r, status)
	srvsupport.RenderJSON(w, r, &srvsupport.ErrorResponse{Error: msg})
}

func writeOK(w http.ResponseWriter, r *http.Request, warning string) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &statusResponse{Status: "ok", Warning: warning})
}
