package cli

//
// feed.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"
	"gitlab.com/kabes/go-ytdash/internal/formats"
	"gitlab.com/kabes/go-ytdash/internal/service"
	"gitlab.com/kabes/go-ytdash/internal/view"
)

func newFeedCmd() *cli.Command {
	return &cli.Command{
		Name:  "feed",
		Usage: "show videos of subscription and mark it as viewed",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "id", Required: true, Usage: "subscription id"},
		},
		Action: wrap(feedCmd),
	}
}

//nolint:forbidigo
func feedCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	dashboardSrv := do.MustInvoke[*service.DashboardSrv](injector)

	if err := dashboardSrv.Refresh(ctx); err != nil {
		return fmt.Errorf("load subscriptions error: %w", err)
	}

	sub, err := dashboardSrv.Select(ctx, clicmd.String("id"))
	if err != nil {
		return fmt.Errorf("load videos error: %w", err)
	}

	// mark-viewed is dispatched in background; let it finish before exit
	defer dashboardSrv.Wait()

	now := time.Now()
	videos := dashboardSrv.Videos(sub.SourceKey)

	fmt.Printf("%s (%s)\n\n", sub.DisplayTitle(), formats.Count(len(videos), "video"))

	for _, v := range videos {
		vv := view.NewVideoView(&v, sub.LastViewedAt, now)

		marker := " "
		if vv.New {
			marker = "*"
		}

		fmt.Printf("%s %-8s %-16s %s\n", marker, vv.Duration, vv.PublishedAgo, vv.Title)

		if vv.Link != "" {
			fmt.Printf("  %s\n", vv.Link)
		}
	}

	return nil
}
