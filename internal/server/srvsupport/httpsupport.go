package srvsupport

//
// httpsupport.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"gitlab.com/kabes/go-ytdash/internal/aerr"
	"gitlab.com/kabes/go-ytdash/internal/common"
)

// Wrap add context and logger to handler.
func Wrap(handler func(ctx context.Context, w http.ResponseWriter, r *http.Request,
	logger *zerolog.Logger),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := hlog.FromRequest(r)
		handler(ctx, w, r, logger)
	}
}

// WrapNamed add context and logger to handler. `name` is put as `handler` in logger context.
func WrapNamed(
	handler func(ctx context.Context, w http.ResponseWriter, r *http.Request, logger *zerolog.Logger),
	name string,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := hlog.FromRequest(r).
			With().Str("handler", name).
			Logger()

		ctx := logger.WithContext(r.Context())
		r = r.WithContext(ctx)

		handler(ctx, w, r, &logger)
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	if msg == "" {
		msg = http.StatusText(code)
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") ||
		strings.Contains(r.Header.Get("Accept"), "application/json") {
		render.Status(r, code)
		RenderJSON(w, r, &ErrorResponse{msg})

		return
	}

	http.Error(w, msg, code)
}

// StatusForError map application error into http status.
func StatusForError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	case errors.Is(err, common.ErrUnknownSubscription):
		return http.StatusNotFound

	case aerr.HasTag(err, aerr.InternalError):
		return http.StatusInternalServerError

	case aerr.HasTag(err, aerr.ValidationError):
		return http.StatusBadRequest

	case aerr.HasTag(err, aerr.ConflictError):
		return http.StatusConflict

	case aerr.HasTag(err, aerr.FetchError), aerr.HasTag(err, aerr.FeedLoadError),
		aerr.HasTag(err, aerr.AddError), aerr.HasTag(err, aerr.UpdateError),
		aerr.HasTag(err, aerr.DeleteError), aerr.HasTag(err, aerr.ReloadError),
		aerr.HasTag(err, aerr.DataError):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// CheckAndWriteError decode and write error to ResponseWriter.
func CheckAndWriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusForError(err)

	msg := aerr.GetUserMessage(err)
	if status == http.StatusInternalServerError && !aerr.HasTag(err, aerr.InternalError) {
		// unknown error; newer show details
		msg = ""
	}

	WriteError(w, r, status, msg)
}
