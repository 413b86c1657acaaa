// Package main is the taxi-zebra command line: it pushes time entries to
// Zebra and exposes the zebra sub-commands.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"taxi-zebra/internal/app"
	"taxi-zebra/internal/apperr"
	"taxi-zebra/internal/config"
	"taxi-zebra/internal/logger"
)

var version = "dev"

// env is what every sub-command runs against. It is filled by the root
// command before a sub-command runs.
type env struct {
	configPath string
	verbose    bool
	noColor    bool

	log *slog.Logger
	cfg *config.Config
	app *app.App
}

func (e *env) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(e.configPath)
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.log = logger.New(cmd.ErrOrStderr(), cfg.Environment, e.verbose)
	slog.SetDefault(e.log)

	if e.noColor {
		color.NoColor = true
	}
	e.app, err = app.New(cmd.Context(), e.log, cfg, app.Options{
		In:      cmd.InOrStdin(),
		Out:     cmd.OutOrStdout(),
		NoColor: e.noColor,
		Version: version,
	})
	return err
}

func (e *env) teardown() {
	if e.app == nil {
		return
	}
	if err := e.app.Close(); err != nil {
		e.log.Warn("could not close projects database", slog.String("error", err.Error()))
	}
	e.app = nil
}

func rootCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "taxi-zebra",
		Short:         "Zebra backend for the Taxi time tracking tool",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&e.configPath, "config", "c", config.DefaultPath(), "config file path")
	cmd.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "enable verbose logging")
	cmd.PersistentFlags().BoolVar(&e.noColor, "no-color", false, "disable coloured output")

	cmd.AddCommand(zebraCommand(e))
	return cmd
}

func main() {
	// Context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e := &env{}
	err := rootCommand(e).ExecuteContext(ctx)
	if err != nil {
		e.teardown()
		fmt.Fprintln(os.Stderr, color.RedString(apperr.UserMessage(err)))
		if e.log != nil {
			e.log.Debug("command failed", slog.String("error", err.Error()))
		}
		stop()
		os.Exit(1)
	}
}
