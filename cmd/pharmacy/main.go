package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/light-bringer/pharmacy-pos/internal/config"
	"github.com/light-bringer/pharmacy-pos/internal/pkg/clock"
	"github.com/light-bringer/pharmacy-pos/internal/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(clock.NewRealClock(), os.Stdout).RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err))
		stop()
		os.Exit(1)
	}
}

// runner carries the state shared by every command of one invocation.
type runner struct {
	clock  clock.Clock
	cfg    config.Config
	logger *zap.Logger
	opts   *services.ServiceOptions
}

func newApp(clk clock.Clock, out io.Writer) *cli.App {
	r := &runner{clock: clk}
	return &cli.App{
		Name:      "pharmacy",
		Usage:     "pharmacy point of sale: catalog, checkout and sales ledger",
		Writer:    out,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "load settings from a dotenv `FILE`",
			},
			&cli.StringFlag{
				Name:  "data-dir",
				Usage: "directory holding the data files (overrides PHARMACY_DATA_DIR)",
			},
		},
		Before:   r.before,
		After:    r.after,
		Commands: r.commands(),
	}
}

func (r *runner) before(c *cli.Context) error {
	if dir := c.String("data-dir"); dir != "" {
		if err := os.Setenv("PHARMACY_DATA_DIR", dir); err != nil {
			return err
		}
	}

	var envFiles []string
	if f := c.String("env-file"); f != "" {
		envFiles = append(envFiles, f)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return err
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return err
	}

	r.cfg = cfg
	r.logger = logger
	return nil
}

func (r *runner) after(c *cli.Context) error {
	if r.opts != nil {
		r.opts.Close()
	} else if r.logger != nil {
		_ = r.logger.Sync()
	}
	return nil
}

// services wires the application on first use.
func (r *runner) services(ctx context.Context) (*services.ServiceOptions, error) {
	if r.opts != nil {
		return r.opts, nil
	}
	opts, err := services.NewServiceOptions(ctx, r.cfg, r.logger, r.clock)
	if err != nil {
		return nil, err
	}
	r.opts = opts
	return opts, nil
}
