package cli

//
// common.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"
	"gitlab.com/kabes/go-ytdash/internal/aerr"
	"gitlab.com/kabes/go-ytdash/internal/config"
	"gitlab.com/kabes/go-ytdash/internal/service"
)

const shutdownTimeout = 10 * time.Second

func wrap(
	cmdfunc func(ctx context.Context, clicmd *cli.Command, i do.Injector) error,
) func(ctx context.Context, clicmd *cli.Command) error {
	return func(ctx context.Context, clicmd *cli.Command) error {
		if err := initializeLogger(clicmd.String("log.level"), clicmd.String("log.format")); err != nil {
			return err
		}

		ctx = log.Logger.WithContext(ctx)

		debugFlags := config.NewDebugFlags(clicmd.String("debug"))

		backendConf := config.NewBackendConf(clicmd.String("backend.url"), clicmd.Duration("backend.timeout"),
			clicmd.Float("backend.rate"))
		backendConf.LogRequests = debugFlags.HasFlag(config.DebugBackend)

		if err := backendConf.Validate(); err != nil {
			return aerr.Wrapf(err, "invalid backend configuration")
		}

		log.Ctx(ctx).Debug().Object("backend", &backendConf).Msg("backend configured")

		injector := createInjector(ctx, debugFlags)
		do.ProvideValue(injector, backendConf)

		defer shutdownInjector(ctx, injector)

		return cmdfunc(ctx, clicmd, injector)
	}
}

func createInjector(ctx context.Context, debugFlags config.DebugFlags) do.Injector {
	if !debugFlags.HasFlag(config.DebugDo) {
		return do.New(service.Package)
	}

	logger := log.Ctx(ctx)

	return do.NewWithOpts(&do.InjectorOpts{
		Logf: func(format string, args ...any) {
			logger.Debug().Msgf("DI: "+format, args...)
		},
	}, service.Package)
}

func shutdownInjector(ctx context.Context, injector do.Injector) {
	logger := log.Ctx(ctx)

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if report := injector.ShutdownWithContext(ctx); report != nil && !report.Succeed {
		logger.Error().Msgf("shutdown services failed: %s", report.Error())
	}
}

// enableDoDebug dump registered services and dependencies between them.
func enableDoDebug(ctx context.Context, injector do.Injector) {
	logger := log.Ctx(ctx)
	logger.Debug().Msgf("Available services: %v", injector.ListProvidedServices())

	explanation := do.ExplainInjector(injector)
	logger.Debug().Msgf("DI: %s", explanation.String())
}
