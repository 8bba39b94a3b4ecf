package model

//
// interval.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"errors"
	"strconv"
	"strings"

	"gitlab.com/kabes/go-ytdash/internal/common"
)

const (
	MinFetchInterval     = 60
	MaxFetchInterval     = 86400
	DefaultFetchInterval = 300
)

// ClampInterval bound interval to [MinFetchInterval, MaxFetchInterval].
func ClampInterval(seconds int) int {
	return min(max(seconds, MinFetchInterval), MaxFetchInterval)
}

// ParseInterval parse user-entered interval. Non-numeric value is an error, numeric value is clamped.
func ParseInterval(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, common.ErrInvalidInterval
	}

	// out of range value is returned as max/min int and clamped below
	seconds, err := strconv.ParseInt(value, 10, 0)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, common.ErrInvalidInterval.WithMeta("value", value)
	}

	return ClampInterval(int(seconds)), nil
}
