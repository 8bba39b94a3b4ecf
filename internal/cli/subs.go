package cli

//
// subs.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"
	"gitlab.com/kabes/go-ytdash/internal/aerr"
	"gitlab.com/kabes/go-ytdash/internal/command"
	"gitlab.com/kabes/go-ytdash/internal/common"
	"gitlab.com/kabes/go-ytdash/internal/formats"
	"gitlab.com/kabes/go-ytdash/internal/model"
	"gitlab.com/kabes/go-ytdash/internal/service"
	"golang.org/x/term"
)

func newListSubsCmd() *cli.Command {
	return &cli.Command{
		Name:   "list",
		Usage:  "list subscriptions",
		Action: wrap(listSubsCmd),
	}
}

//nolint:forbidigo
func listSubsCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	_ = clicmd

	dashboardSrv := do.MustInvoke[*service.DashboardSrv](injector)

	if err := dashboardSrv.Refresh(ctx); err != nil {
		return fmt.Errorf("load subscriptions error: %w", err)
	}

	subs := dashboardSrv.Subscriptions()

	fmt.Printf("%-30s | %-8s | %-40s | %-8s | %-8s | %s\n", "ID", "Kind", "Title", "Videos", "New", "Interval")
	fmt.Println(strings.Repeat("-", 120))

	for _, s := range subs {
		fmt.Printf("%-30s | %-8s | %-40s | %-8d | %-8d | %s\n",
			s.ID, s.Kind, s.DisplayTitle(), s.VideoCount, s.NewVideoCount, formats.Interval(s.FetchInterval))
	}

	fmt.Printf("\nTotal: %d\n", len(subs))

	return nil
}

//---------------------------------------------------------------------

func newAddSubCmd() *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "add channel or playlist subscription",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "url", Required: true, Aliases: []string{"u"}, Usage: "channel or playlist url"},
			&cli.StringFlag{
				Name:    "interval",
				Value:   strconv.Itoa(model.DefaultFetchInterval),
				Aliases: []string{"i"},
				Usage:   "fetch interval in seconds",
			},
		},
		Action: wrap(addSubCmd),
	}
}

//nolint:forbidigo
func addSubCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	dashboardSrv := do.MustInvoke[*service.DashboardSrv](injector)

	cmd := command.AddSubscriptionCmd{
		URL:      clicmd.String("url"),
		Interval: clicmd.String("interval"),
	}

	sub, err := dashboardSrv.AddSubscription(ctx, &cmd)
	if err != nil && !errors.Is(err, common.ErrReloadAfterMutation) {
		return fmt.Errorf("add subscription error: %w", err)
	}

	if sub.ID != "" {
		fmt.Printf("Subscription %q added; id=%s\n", sub.DisplayTitle(), sub.ID)
	} else {
		fmt.Println("Subscription added")
	}

	printReloadWarning(err)

	return nil
}

//---------------------------------------------------------------------

func newSetIntervalCmd() *cli.Command {
	return &cli.Command{
		Name:  "set-interval",
		Usage: "change fetch interval of subscription",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "id", Required: true, Usage: "subscription id"},
			&cli.StringFlag{Name: "interval", Required: true, Aliases: []string{"i"}, Usage: "fetch interval in seconds"},
		},
		Action: wrap(setIntervalCmd),
	}
}

//nolint:forbidigo
func setIntervalCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	dashboardSrv := do.MustInvoke[*service.DashboardSrv](injector)

	if err := dashboardSrv.Refresh(ctx); err != nil {
		return fmt.Errorf("load subscriptions error: %w", err)
	}

	cmd := command.UpdateIntervalCmd{
		ID:       clicmd.String("id"),
		Interval: clicmd.String("interval"),
	}

	err := dashboardSrv.UpdateInterval(ctx, &cmd)
	if err != nil && !errors.Is(err, common.ErrReloadAfterMutation) {
		return fmt.Errorf("update interval error: %w", err)
	}

	fmt.Printf("Fetch interval of %q updated\n", cmd.ID)
	printReloadWarning(err)

	return nil
}

//---------------------------------------------------------------------

func newDeleteSubCmd() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "delete subscription",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "id", Required: true, Usage: "subscription id"},
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "do not ask for confirmation"},
		},
		Action: wrap(deleteSubCmd),
	}
}

//nolint:forbidigo
func deleteSubCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	dashboardSrv := do.MustInvoke[*service.DashboardSrv](injector)

	if err := dashboardSrv.Refresh(ctx); err != nil {
		return fmt.Errorf("load subscriptions error: %w", err)
	}

	id := strings.TrimSpace(clicmd.String("id"))
	confirmed := clicmd.Bool("yes")

	if !confirmed {
		sub, ok := findSubscription(dashboardSrv.Subscriptions(), id)
		if !ok {
			return common.ErrUnknownSubscription.WithMeta(common.LogKeySubID, id)
		}

		var err error

		confirmed, err = askConfirmation(fmt.Sprintf("Delete subscription %q?", sub.DisplayTitle()))
		if err != nil {
			return err
		}
	}

	cmd := command.DeleteSubscriptionCmd{ID: id, Confirmed: confirmed}

	err := dashboardSrv.DeleteSubscription(ctx, &cmd)
	if err != nil && !errors.Is(err, common.ErrReloadAfterMutation) {
		return fmt.Errorf("delete subscription error: %w", err)
	}

	fmt.Printf("Subscription %q deleted\n", id)
	printReloadWarning(err)

	return nil
}

//---------------------------------------------------------------------

func findSubscription(subs []model.Subscription, id string) (model.Subscription, bool) {
	for _, s := range subs {
		if s.ID == id {
			return s, true
		}
	}

	return model.Subscription{}, false
}

// askConfirmation ask user on terminal; without terminal deleting require --yes flag.
//
//nolint:forbidigo
func askConfirmation(question string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) { //nolint:gosec
		return false, nil
	}

	fmt.Print(question + " [y/N]: ")

	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, aerr.Wrapf(err, "read answer error")
	}

	answer = strings.ToLower(strings.TrimSpace(answer))

	return answer == "y" || answer == "yes", nil
}

//nolint:forbidigo
func printReloadWarning(err error) {
	if err != nil {
		fmt.Printf("Warning: %s\n", aerr.GetUserMessageOr(err, "subscriptions list not refreshed"))
	}
}
