package config

//
// backend.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/kabes/go-ytdash/internal/aerr"
)

const (
	DefaultBackendURL     = "http://127.0.0.1:4000"
	DefaultBackendTimeout = 30 * time.Second
	// DefaultMarkViewedTimeout limit time of detached mark-viewed requests.
	DefaultMarkViewedTimeout = 15 * time.Second
)

// BackendConf configure connection to the aggregator backend.
type BackendConf struct {
	URL     string
	Timeout time.Duration
	// RateLimit is max number of requests per second; 0 disable limit.
	RateLimit float64
	// RateBurst is max burst of requests when RateLimit is enabled.
	RateBurst int
	// LogRequests enable debug logging of each request.
	LogRequests bool
}

func NewBackendConf(u string, timeout time.Duration, ratelimit float64) BackendConf {
	return BackendConf{
		URL:       strings.TrimSuffix(strings.TrimSpace(u), "/"),
		Timeout:   timeout,
		RateLimit: ratelimit,
		RateBurst: 1,
	}
}

func (c *BackendConf) Validate() error {
	if c.URL == "" {
		return aerr.ErrInvalidConf.WithUserMsg("backend url can't be empty")
	}

	purl, err := url.Parse(c.URL)
	if err != nil {
		return aerr.ApplyFor(aerr.ErrInvalidConf, err).WithUserMsg("invalid backend url %q", c.URL)
	}

	if purl.Scheme != "http" && purl.Scheme != "https" {
		return aerr.ErrInvalidConf.WithUserMsg("backend url must use http or https scheme")
	}

	if c.Timeout < 0 {
		return aerr.ErrInvalidConf.WithUserMsg("backend timeout can't be negative")
	}

	if c.RateLimit < 0 {
		return aerr.ErrInvalidConf.WithUserMsg("backend rate limit can't be negative")
	}

	if c.RateBurst < 1 {
		c.RateBurst = 1
	}

	return nil
}

func (c *BackendConf) MarshalZerologObject(event *zerolog.Event) {
	event.Str("url", c.URL).
		Dur("timeout", c.Timeout).
		Float64("rate_limit", c.RateLimit).
		Int("rate_burst", c.RateBurst)
}
