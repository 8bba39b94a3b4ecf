package cli

//
// serve.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//
import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/Merovius/systemd"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"
	"gitlab.com/kabes/go-ytdash/internal/aerr"
	ytapi "gitlab.com/kabes/go-ytdash/internal/api"
	"gitlab.com/kabes/go-ytdash/internal/common"
	"gitlab.com/kabes/go-ytdash/internal/config"
	"gitlab.com/kabes/go-ytdash/internal/server"
	"gitlab.com/kabes/go-ytdash/internal/service"
	ytweb "gitlab.com/kabes/go-ytdash/internal/web"
)

func newStartServerCmd() *cli.Command { //nolint:funlen
	return &cli.Command{
		Name:  "serve",
		Usage: "start server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "address",
				Value:   ":8080",
				Usage:   "listen address",
				Aliases: []string{"a"},
				Sources: cli.EnvVars("YTDASH_SERVER_ADDRESS"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.StringFlag{
				Name:    "web-root",
				Value:   "/",
				Usage:   "path root",
				Aliases: []string{"w"},
				Sources: cli.EnvVars("YTDASH_SERVER_WEBROOT"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.BoolFlag{
				Name:    "enable-metrics",
				Usage:   "enable prometheus metrics (/metrics endpoint)",
				Sources: cli.EnvVars("YTDASH_SERVER_METRICS"),
			},
			&cli.StringFlag{
				Name:      "cert",
				Usage:     "tls certificate file",
				Sources:   cli.EnvVars("YTDASH_SERVER_CERT"),
				Config:    cli.StringConfig{TrimSpace: true},
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:      "key",
				Usage:     "tls key file",
				Sources:   cli.EnvVars("YTDASH_SERVER_KEY"),
				Config:    cli.StringConfig{TrimSpace: true},
				TakesFile: true,
			},
			&cli.BoolFlag{
				Name:    "secure-cookie",
				Usage:   "use secure (https only) cookie",
				Sources: cli.EnvVars("YTDASH_SERVER_SECURE_COOKIE"),
			},
			&cli.DurationFlag{
				Name:    "refresh-interval",
				Usage:   "Enable background reload of subscriptions list in given intervals.",
				Sources: cli.EnvVars("YTDASH_SERVER_REFRESH_INTERVAL"),
				Value:   0,
			},
			&cli.StringFlag{
				Name:    "mgmt-address",
				Value:   "",
				Usage:   "listen address for management endpoints; empty disable management; may be the same as main 'address'",
				Aliases: []string{"m"},
				Sources: cli.EnvVars("YTDASH_MGMT_SERVER_ADDRESS"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.StringFlag{
				Name:    "mgmt-access-list",
				Value:   "",
				Usage:   "list of ip or networks separated by ',' allowed to connected to mgmt endpoints.",
				Sources: cli.EnvVars("YTDASH_MGMT_SERVER_ACCESS_LIST"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
		},
		Action: wrap(startServerCmd),
	}
}

func startServerCmd(ctx context.Context, clicmd *cli.Command, rootInjector do.Injector) error {
	injector := rootInjector.Scope("server",
		ytweb.Package,
		ytapi.Package,
		server.Package,
	)

	serverConf := config.ServerConf{
		MainServer: config.ListenConf{
			Address:      clicmd.String("address"),
			WebRoot:      clicmd.String("web-root"),
			TLSKey:       clicmd.String("key"),
			TLSCert:      clicmd.String("cert"),
			CookieSecure: clicmd.Bool("secure-cookie"),
		},
		MgmtServer: config.ListenConf{
			Address: clicmd.String("mgmt-address"),
			// mgmt not use for now tls/webroot/cookie
		},
		DebugFlags:      config.NewDebugFlags(clicmd.String("debug")),
		EnableMetrics:   clicmd.Bool("enable-metrics"),
		MgmtAccessList:  clicmd.String("mgmt-access-list"),
		RefreshInterval: clicmd.Duration("refresh-interval"),
	}

	if err := serverConf.Validate(); err != nil {
		return aerr.Wrapf(err, "server config validation failed")
	}

	do.ProvideNamedValue(injector, "server.webroot", serverConf.MainServer.WebRoot)
	do.ProvideValue(injector, &serverConf)

	if serverConf.DebugFlags.HasFlag(config.DebugDo) {
		enableDoDebug(ctx, injector.RootScope())
	}

	s := Server{}

	return s.start(ctx, injector, &serverConf)
}

type Server struct{}

func (s *Server) start(ctx context.Context, injector do.Injector, cfg *config.ServerConf) error {
	logger := log.Ctx(ctx)
	logger.Log().Msgf("Starting go-ytdash (%s)...", config.VersionString)
	logger.Debug().Msgf("Server: debug_flags=%q", cfg.DebugFlags)

	s.startSystemdWatchdog(logger)

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	dashboardSrv := do.MustInvoke[*service.DashboardSrv](injector)
	// first load of subscriptions; page show loading state until finished
	dashboardSrv.RefreshAsync(ctx)

	srv := do.MustInvoke[*server.Server](injector)
	if err := srv.Start(ctx); err != nil {
		logger.Fatal().Err(err).Msgf("start server failed error=%q", err)

		return aerr.New("failed start server")
	}

	if cfg.SeparateMgmtEnabled() {
		msrv := do.MustInvoke[*server.MgmtServer](injector)
		if err := msrv.Start(ctx); err != nil {
			logger.Fatal().Err(err).Msgf("start mgmt server failed error=%q", err)

			return aerr.New("failed start mgmt server")
		}
	}

	if cfg.RefreshInterval > 0 {
		go s.refreshTask(ctx, dashboardSrv, cfg.RefreshInterval)
	}

	systemd.NotifyReady()           //nolint:errcheck
	systemd.NotifyStatus("running") //nolint:errcheck

	<-ctx.Done()

	systemd.NotifyStatus("stopped") //nolint:errcheck

	return nil
}

func (*Server) startSystemdWatchdog(logger *zerolog.Logger) {
	if ok, dur, err := systemd.AutoWatchdog(); ok {
		logger.Info().Msgf("Systemd: autowatchdog started; duration=%s", dur)
	} else if err != nil {
		logger.Warn().Err(err).Msgf("Systemd: autowatchdog start error=%q", err)
	}
}

// refreshTask periodically reload list of subscriptions so counters of new videos stay current.
func (s *Server) refreshTask(ctx context.Context, dashboardSrv *service.DashboardSrv, interval time.Duration) {
	logger := log.Ctx(ctx)
	logger.Info().Msgf("Refresher: start background subscriptions refresh; interval=%s", interval)

	eventlog := common.NewEventLog("subscriptions refresh", "worker")
	defer eventlog.Close()

	ctx = common.ContextWithEventLog(ctx, eventlog)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		taskid := xid.New()
		llog := logger.With().Str(common.LogKeyTaskID, taskid.String()).Logger()
		eventlog.Printf("start refresh task_id=%s", taskid.String())

		tctx := llog.WithContext(hlog.CtxWithID(ctx, taskid))
		if err := dashboardSrv.Refresh(tctx); err != nil {
			llog.WithLevel(aerr.LogLevelForError(err)).Err(err).Msgf("Refresher: refresh subscriptions error=%q", err)
			eventlog.Errorf("refresh error task_id=%s error=%q", taskid.String(), err)
		} else {
			eventlog.Printf("refresh finished task_id=%s", taskid.String())
		}
	}
}
