package config

//
// version.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"fmt"
	"runtime/debug"
)

// Build information; set by linker flags (-X) on release builds.
var (
	Version   = "dev"
	Revision  = ""
	BuildDate = ""
	BuildUser = ""
	Branch    = ""

	// VersionString is human readable version shown by `--print-version` and on start.
	VersionString = ""
)

func init() { //nolint:gochecknoinits
	VersionString = buildVersionString()
}

func buildVersionString() string {
	if Version != "dev" {
		return fmt.Sprintf("Ver: %s, Rev: %s, Build: %s by %s from %s",
			Version, Revision, BuildDate, BuildUser, Branch)
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version
	}

	var dirty string

	for _, kv := range info.Settings {
		switch kv.Key {
		case "vcs.revision":
			Revision = kv.Value
		case "vcs.time":
			BuildDate = kv.Value
		case "vcs.modified":
			if kv.Value == "true" {
				dirty = " (modified)"
			}
		}
	}

	return fmt.Sprintf("Rev: %s at %s%s", Revision, BuildDate, dirty)
}

// UserAgent identify dashboard in requests to the backend.
func UserAgent() string {
	if Version == "dev" && Revision != "" {
		return "go-ytdash/dev-" + shortRevision(Revision)
	}

	return "go-ytdash/" + Version
}

func shortRevision(rev string) string {
	const size = 8
	if len(rev) > size {
		return rev[:size]
	}

	return rev
}
