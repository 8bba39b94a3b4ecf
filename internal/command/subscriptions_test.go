package command

//
// subscriptions_test.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"testing"

	"gitlab.com/kabes/go-ytdash/internal/aerr"
	"gitlab.com/kabes/go-ytdash/internal/assert"
	"gitlab.com/kabes/go-ytdash/internal/common"
	"gitlab.com/kabes/go-ytdash/internal/model"
)

func TestAddSubscriptionCmd(t *testing.T) {
	cmd := AddSubscriptionCmd{URL: "  www.youtube.com/channel/UC1 ", Interval: " 30 "}
	cmd.Sanitize()
	assert.NoErr(t, cmd.Validate())
	assert.Equal(t, cmd.URL, "https://www.youtube.com/channel/UC1")
	assert.Equal(t, cmd.FetchInterval(), model.MinFetchInterval)

	cmd = AddSubscriptionCmd{URL: "https://www.youtube.com/channel/UC1", Interval: "600"}
	assert.NoErr(t, cmd.Validate())
	assert.Equal(t, cmd.FetchInterval(), 600)
}

func TestAddSubscriptionCmdInvalid(t *testing.T) {
	tests := []struct {
		cmd  AddSubscriptionCmd
		want error
	}{
		{AddSubscriptionCmd{URL: "", Interval: "300"}, common.ErrEmptyURL},
		{AddSubscriptionCmd{URL: "   ", Interval: "300"}, common.ErrEmptyURL},
		{AddSubscriptionCmd{URL: "ftp://youtube.com/x", Interval: "300"}, common.ErrInvalidURL},
		{AddSubscriptionCmd{URL: "https://youtube.com/channel/UC1", Interval: "abc"}, common.ErrInvalidInterval},
		{AddSubscriptionCmd{URL: "https://youtube.com/channel/UC1", Interval: ""}, common.ErrInvalidInterval},
	}

	for _, tc := range tests {
		tc.cmd.Sanitize()
		err := tc.cmd.Validate()
		assert.ErrSpec(t, err, tc.want)
		assert.True(t, aerr.HasTag(err, aerr.ValidationError))
	}
}

func TestUpdateIntervalCmd(t *testing.T) {
	cmd := UpdateIntervalCmd{ID: " UC1 ", Interval: "999999"}
	cmd.Sanitize()
	assert.NoErr(t, cmd.Validate())
	assert.Equal(t, cmd.FetchInterval(), model.MaxFetchInterval)

	cmd = UpdateIntervalCmd{ID: "UC1", Interval: "1.5"}
	assert.ErrSpec(t, cmd.Validate(), common.ErrInvalidInterval)

	cmd = UpdateIntervalCmd{ID: "", Interval: "100"}
	assert.ErrSpec(t, cmd.Validate(), common.ErrUnknownSubscription)
}

func TestDeleteSubscriptionCmd(t *testing.T) {
	cmd := DeleteSubscriptionCmd{ID: "UC1"}
	assert.ErrSpec(t, cmd.Validate(), common.ErrDeleteNotConfirmed)

	cmd.Confirmed = true
	assert.NoErr(t, cmd.Validate())

	cmd = DeleteSubscriptionCmd{ID: "x/y", Confirmed: true}
	assert.ErrSpec(t, cmd.Validate(), common.ErrUnknownSubscription)
}
