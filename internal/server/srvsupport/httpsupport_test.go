package srvsupport

//
// httpsupport_test.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gitlab.com/kabes/go-ytdash/internal/aerr"
	"gitlab.com/kabes/go-ytdash/internal/assert"
	"gitlab.com/kabes/go-ytdash/internal/common"
)

func TestStatusForError(t *testing.T) {
	cause := errors.New("cause")

	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{common.ErrEmptyURL, http.StatusBadRequest},
		{common.ErrUnknownSubscription, http.StatusNotFound},
		{common.ErrOperationInProgress, http.StatusConflict},
		{aerr.ApplyFor(common.ErrAdd, cause), http.StatusBadGateway},
		{aerr.ApplyFor(common.ErrFetch, cause), http.StatusBadGateway},
		{aerr.ApplyFor(common.ErrFeedLoad, cause), http.StatusBadGateway},
		{aerr.Wrapf(cause, "internal").WithTag(aerr.InternalError), http.StatusInternalServerError},
		{cause, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		assert.Equal(t, StatusForError(tc.err), tc.want)
	}
}

func TestCheckAndWriteErrorJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/subscriptions", nil)
	r.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	CheckAndWriteError(w, r, aerr.ApplyFor(common.ErrAdd, errors.New("x"), "", "Subscription already exists"))

	assert.Equal(t, w.Code, http.StatusBadGateway)
	assert.Equal(t, w.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, w.Body.String(), "{\"error\":\"Subscription already exists\"}\n")
}

func TestCheckAndWriteErrorHidden(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	CheckAndWriteError(w, r, errors.New("secret details"))

	assert.Equal(t, w.Code, http.StatusInternalServerError)
	assert.Equal(t, w.Body.String(), "Internal Server Error\n")
}
