package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"compliancedesk/internal/platform/httpserver"
	"compliancedesk/internal/platform/metrics"
	"compliancedesk/internal/reminder"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the reminder scheduler",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := root.cfg
			if addr != "" {
				cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, cfg, appOptions{withMetrics: true, withBrokers: true})
			if err != nil {
				return err
			}
			defer a.Close()

			srv := httpserver.New(cfg.Server.Addr, newRouter(a, metrics.New()))

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return httpserver.Run(gctx, srv, cfg.Server.ShutdownTimeout, a.logger)
			})
			if cfg.Reminder.Enabled {
				sched, err := reminder.NewScheduler(cfg.Reminder.Schedule, a.reminders, a.logger)
				if err != nil {
					return err
				}
				g.Go(func() error { return sched.Run(gctx) })
			}

			a.logger.Info("compliancedesk started", "addr", cfg.Server.Addr, "reminders", cfg.Reminder.Enabled)
			if err := g.Wait(); err != nil && err != context.Canceled {
				a.logger.Error("server stopped with error", "error", err)
				return err
			}
			a.logger.Info("compliancedesk stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}
