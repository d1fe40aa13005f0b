package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/classbind/internal/config"
	"github.com/vango-dev/classbind/pkg/scheduler"
	"github.com/vango-dev/classbind/pkg/server"
)

// serveCmd runs the patch-streaming server with a demo binding per
// session, cycling a small set of classes so the stream is observable
// without a host application.
func serveCmd() *cobra.Command {
	var configPath string
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the class patch streaming server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: cfg.SlogLevel(),
			}))
			slog.SetDefault(logger)

			srv := server.NewServer(&server.ServerConfig{
				Addr:             cfg.Addr,
				CycleInterval:    cfg.CycleInterval(),
				MetricsNamespace: cfg.MetricsNamespace,
				Logger:           logger,
			})
			srv.OnSession(demoSession)

			ctx, stop := signal.NotifyContext(context.Background(),
				os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.Start(ctx)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to classbind.json")
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (overrides config)")
	return cmd
}

// loadConfig resolves the configuration: an explicit path must exist, the
// implicit classbind.json in the working directory is optional.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return config.Default(), nil
	}
	return config.Load(wd)
}

// demoSession wires one demo binding that alternates between two class
// states every second.
func demoSession(sess *server.Session) {
	sess.Bind("demo-box")
	sess.Do(func(sched *scheduler.Scheduler) {
		sched.SetInitialClasses("demo-box", "card shadow")
	})

	go func() {
		state := map[string]bool{"active": true, "muted": false}
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		for range ticker.C {
			next := map[string]bool{
				"active": !state["active"],
				"muted":  !state["muted"],
			}
			state = next
			if !sess.Do(func(sched *scheduler.Scheduler) {
				sched.SetSpec("demo-box", next)
			}) {
				return
			}
		}
	}()
}
