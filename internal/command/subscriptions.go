package command

//
// subscriptions.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"strings"

	"gitlab.com/kabes/go-ytdash/internal/common"
	"gitlab.com/kabes/go-ytdash/internal/model"
	"gitlab.com/kabes/go-ytdash/internal/validators"
)

// AddSubscriptionCmd hold user input from "add subscription" form.
type AddSubscriptionCmd struct {
	URL      string
	Interval string

	fetchInterval int
}

func (a *AddSubscriptionCmd) Sanitize() {
	a.URL = strings.TrimSpace(a.URL)
	a.Interval = strings.TrimSpace(a.Interval)
}

// Validate check and normalize url and interval.
func (a *AddSubscriptionCmd) Validate() error {
	if a.URL == "" {
		return common.ErrEmptyURL
	}

	surl := validators.SanitizeURL(a.URL)
	if surl == "" {
		return common.ErrInvalidURL.WithMeta("url", a.URL)
	}

	interval, err := model.ParseInterval(a.Interval)
	if err != nil {
		return err
	}

	a.URL = surl
	a.fetchInterval = interval

	return nil
}

// FetchInterval return parsed and clamped interval; valid after Validate.
func (a *AddSubscriptionCmd) FetchInterval() int {
	return a.fetchInterval
}

// ------------------------------------------------------

type UpdateIntervalCmd struct {
	ID       string
	Interval string

	fetchInterval int
}

func (u *UpdateIntervalCmd) Sanitize() {
	u.ID = strings.TrimSpace(u.ID)
	u.Interval = strings.TrimSpace(u.Interval)
}

func (u *UpdateIntervalCmd) Validate() error {
	if !validators.IsValidSubscriptionID(u.ID) {
		return common.ErrUnknownSubscription.WithMeta("id", u.ID)
	}

	interval, err := model.ParseInterval(u.Interval)
	if err != nil {
		return err
	}

	u.fetchInterval = interval

	return nil
}

func (u *UpdateIntervalCmd) FetchInterval() int {
	return u.fetchInterval
}

// ------------------------------------------------------

type DeleteSubscriptionCmd struct {
	ID        string
	Confirmed bool
}

func (d *DeleteSubscriptionCmd) Sanitize() {
	d.ID = strings.TrimSpace(d.ID)
}

func (d *DeleteSubscriptionCmd) Validate() error {
	if !validators.IsValidSubscriptionID(d.ID) {
		return common.ErrUnknownSubscription.WithMeta("id", d.ID)
	}

	if !d.Confirmed {
		return common.ErrDeleteNotConfirmed.WithMeta("id", d.ID)
	}

	return nil
}
