//
// subscriptions.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

package validators

import (
	"net/url"
	"regexp"
	"strings"
)

// ------------------------------------------------------

// SanitizeURL normalize given channel/playlist url.
// Do not normalize query & path (playlist id is in query); remove user/pass.
// Accept only http/s.
func SanitizeURL(u string) string {
	su := strings.TrimSpace(u)

	if len(su) < 8 { //nolint:mnd
		return ""
	}

	// url without scheme are https
	if !strings.Contains(su, "://") {
		su = "https://" + su
	}

	purl, err := url.Parse(su)
	if err != nil {
		return ""
	}

	// scheme and host are case insensitive
	purl.Scheme = strings.ToLower(purl.Scheme)
	purl.Host = strings.ToLower(purl.Host)
	purl.User = nil

	if purl.Host == "" {
		return ""
	}

	// Normalize empty paths to "/"
	if purl.Path == "" {
		purl.Path = "/"
	}

	// accept only http & https
	if purl.Scheme != "http" && purl.Scheme != "https" {
		return ""
	}

	return purl.String()
}

var reSubscriptionID = regexp.MustCompile(`^[\w-]+$`)

// IsValidSubscriptionID check is id look like youtube channel/playlist id.
func IsValidSubscriptionID(id string) bool {
	return reSubscriptionID.MatchString(id)
}
