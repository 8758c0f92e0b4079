package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"courtside/internal/api"
	"courtside/internal/config"
	"courtside/internal/eventbus"
	"courtside/internal/loader"
	"courtside/internal/logger"
	"courtside/internal/metrics"
	"courtside/internal/ui"
	"courtside/internal/ui/commands"
)

// Version is set at build time
var Version = "0.1.0"

type rootOptions struct {
	configFile  string
	server      string
	query       string
	offset      int
	timeout     time.Duration
	metricsAddr string
	logFile     string
	logLevel    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "courtside",
		Short: "Terminal client for the NBA prediction server",
		Long: `courtside browses players and teams of the NBA prediction server and
asks it for game and player predictions.

Players are listed a page at a time; press m to load the next page.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default: ~/.config/courtside/config.toml)")
	flags.StringVarP(&opts.server, "server", "s", "", "base URL of the prediction server")
	flags.StringVarP(&opts.query, "query", "q", "", "initial players search query")
	flags.IntVar(&opts.offset, "offset", 0, "players shown before the first load more")
	flags.DurationVar(&opts.timeout, "timeout", 0, "per-request timeout")
	flags.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")
	flags.StringVar(&opts.logFile, "log-file", "", `log file, "stderr" or "discard" (default: courtside.log next to the config)`)
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug|info|warn|error)")

	_ = cmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// loadConfig reads the config file and applies the flags the user set
func loadConfig(cmd *cobra.Command, opts *rootOptions, bus eventbus.EventBus) (*config.Config, error) {
	svc := config.NewConfigServiceWithBus(bus, opts.configFile)
	cfg, err := svc.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("server") {
		cfg.ServerURL = opts.server
	}
	if flags.Changed("query") {
		cfg.InitialQuery = opts.query
	}
	if flags.Changed("offset") {
		cfg.InitialOffset = opts.offset
	}
	if flags.Changed("timeout") {
		cfg.RequestTimeout = config.Duration{Duration: opts.timeout}
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr = opts.metricsAddr
	}
	if flags.Changed("log-file") && opts.logFile != "" {
		cfg.Log.File = opts.logFile
		// paths from the command line are relative to the working directory
		if opts.logFile != "stderr" && opts.logFile != "discard" {
			if abs, err := filepath.Abs(opts.logFile); err == nil {
				cfg.Log.File = abs
			}
		}
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	cfg.Log.File = cfg.LogPath(svc.Path())

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, opts *rootOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus := eventbus.New(nil)
	defer bus.Close()

	cfg, err := loadConfig(cmd, opts, bus)
	if err != nil {
		return err
	}

	log, closer, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.File,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	log.Info("starting courtside", "version", Version, "server", cfg.ServerURL, "timeout", cfg.Timeout())

	client := api.NewClient(api.ClientConfig{
		BaseURL: cfg.ServerURL,
		Timeout: cfg.Timeout(),
		Logger:  log,
	})

	m := metrics.New(true)
	logSink := logger.NewSink(log)
	busSink := loader.NewBusSink(bus)

	// The first page stands in for the rows the web page renders up front
	seedCtx, cancelSeed := context.WithTimeout(ctx, cfg.Timeout())
	seed, seedErr := commands.SeedPlayers(seedCtx, client, cfg.InitialQuery, cfg.InitialOffset)
	cancelSeed()
	if seedErr != nil {
		logSink.LogFailure(commands.ViewPlayers, seedErr)
		m.LogFailure(commands.ViewPlayers, seedErr)
		seed = nil
	}

	exec, err := commands.NewExecutor(ctx, commands.Options{
		Source:    client,
		Bus:       bus,
		Sink:      loader.MultiSink{logSink, busSink, m},
		Observers: []loader.Observer{busSink, m},
		Timeout:   cfg.Timeout(),
		Seed:      seed,
		Query:     cfg.InitialQuery,
	})
	if err != nil {
		return err
	}
	defer exec.Detach()

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	g, gctx := errgroup.WithContext(runCtx)

	model := ui.NewModel(cfg, exec, log)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(gctx))
	model.SetProgram(p)

	forward := func(e eventbus.DomainEvent) { p.Send(ui.EventMsg{Event: e}) }
	for _, t := range []eventbus.EventType{
		eventbus.EventLoadFailed,
		eventbus.EventListExhausted,
		eventbus.EventPredictionReady,
	} {
		unsubscribe := bus.Subscribe(t, forward)
		defer unsubscribe()
	}
	if seedErr != nil {
		bus.Publish(eventbus.LoadFailedEvent{View: commands.ViewPlayers, Err: seedErr})
	}

	g.Go(func() error {
		// the metrics server lives as long as the UI
		defer cancelRun()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})

	if cfg.MetricsAddr != "" {
		g.Go(func() error {
			if err := m.Serve(gctx, cfg.MetricsAddr, log); err != nil {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("courtside exited with error", "error", err)
		return err
	}
	log.Info("courtside exited", slog.Int("failures", model.State().FailureCount))
	return nil
}
