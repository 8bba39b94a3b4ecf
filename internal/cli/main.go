package cli

//
// main.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//
import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"gitlab.com/kabes/go-ytdash/internal/aerr"
	"gitlab.com/kabes/go-ytdash/internal/config"
)

//nolint:forbidigo
func Main() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "print-version",
		Aliases: []string{"V"},
		Usage:   "Print version.",
	}

	cli := &cli.Command{
		Name:    "go-ytdash",
		Usage:   "dashboard for youtube subscriptions aggregator",
		Version: config.VersionString,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "backend.url",
				Value:   config.DefaultBackendURL,
				Usage:   "Aggregator backend base url",
				Aliases: []string{"B"},
				Sources: cli.EnvVars("YTDASH_BACKEND_URL"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.DurationFlag{
				Name:    "backend.timeout",
				Value:   config.DefaultBackendTimeout,
				Usage:   "Timeout of single request to backend",
				Sources: cli.EnvVars("YTDASH_BACKEND_TIMEOUT"),
			},
			&cli.FloatFlag{
				Name:    "backend.rate",
				Value:   0,
				Usage:   "Max number of requests per second send to backend; 0 disable limit",
				Sources: cli.EnvVars("YTDASH_BACKEND_RATE"),
			},
			&cli.StringFlag{
				Name:    "log.level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("YTDASH_LOGLEVEL"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.StringFlag{
				Name:    "log.format",
				Value:   "console",
				Usage:   "Log format (console, logfmt, json, journald, syslog)",
				Sources: cli.EnvVars("YTDASH_LOGFORMAT"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.StringFlag{Name: "debug", Usage: "Debug flags", Sources: cli.EnvVars("YTDASH_DEBUG")},
		},
		Commands: []*cli.Command{
			newStartServerCmd(),
			subsSubCmd(),
			newFeedCmd(),
		},
	}

	if err := cli.Run(context.Background(), os.Args); err != nil {
		if h := aerr.GetUserMessage(err); h != "" {
			fmt.Printf("Error: %s\n", h)
		} else {
			fmt.Printf("Error: %s\n", err.Error())
		}

		if cli.String("log.level") == "debug" {
			fmt.Printf("Error: %#+v\n", err)
		}

		os.Exit(1)
	}
}

func subsSubCmd() *cli.Command {
	return &cli.Command{
		Name:  "subs",
		Usage: "manage subscriptions",
		Commands: []*cli.Command{
			newListSubsCmd(),
			newAddSubCmd(),
			newSetIntervalCmd(),
			newDeleteSubCmd(),
		},
	}
}
