package service

// package.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.

import (
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-ytdash/internal/backend"
	"gitlab.com/kabes/go-ytdash/internal/feed"
	"gitlab.com/kabes/go-ytdash/internal/mutation"
	"gitlab.com/kabes/go-ytdash/internal/registry"
)

//nolint:gochecknoglobals
var Package = do.Package(
	do.Lazy(backend.NewClientI),
	do.Lazy(registry.NewRegistryI),
	do.Lazy(feed.NewCacheI),
	do.Lazy(mutation.NewCoordinatorI),
	do.Lazy(NewDashboardSrv),
)
