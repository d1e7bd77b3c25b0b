package main

import (
	"context"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	irc "github.com/Travis-Britz/ircd"
	"github.com/Travis-Britz/ircd/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "ircd",
		Short: "A small concurrent IRC server",
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML/JSON/TOML config file")

	var debugWire bool
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Listen for client connections until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(context.Background(), cfgFile, debugWire)
		},
	}
	serve.Flags().BoolVar(&debugWire, "debug-wire", false, "tee raw connection bytes to stderr")
	root.AddCommand(serve)
	return root
}

func run(ctx context.Context, cfgFile string, debugWire bool) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	log := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	srvCtx, err := cfg.ServerContext(time.Now())
	if err != nil {
		return err
	}

	disp := irc.NewDispatcher(srvCtx, log, prometheus.DefaultRegisterer, cfg.InboundQueue)

	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return err
	}
	log.WithField("addr", cfg.ListenAddr).Info("listening")

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	stopWatch := make(chan struct{})
	defer close(stopWatch)
	go func() {
		err := config.WatchMotd(cfg, log, stopWatch, func(lines []string) {
			disp.Inbound() <- irc.Message{Cmd: irc.ReloadMotd{Lines: lines}}
		})
		if err != nil {
			log.WithError(err).Warn("motd watcher stopped")
		}
	}()

	var wireLog io.Writer
	if debugWire {
		wireLog = os.Stderr
	}
	return irc.Serve(ctx, ln, disp, log, wireLog)
}
