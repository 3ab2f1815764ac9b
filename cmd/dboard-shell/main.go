// Command dboard-shell inspects and drives the daughterboards of a host rig.
//
// The rig is described by a YAML file naming each slot and the IDs its
// EEPROMs report. Without -config a single slot "A" holding a Basic RX and
// Basic TX pair is assumed.
//
// Usage:
//
//	dboard-shell [flags]
//
// Flags:
//
//	-config string     Rig configuration file path
//	-log-level string  Log level: debug, info, warn, error (overrides config)
//	-trace string      Append property trace events to this file (overrides config)
//	-exec string       Run ';'-separated commands and exit
//
// Examples:
//
//	# Interactive shell over the default rig
//	dboard-shell
//
//	# Two-slot rig with tracing
//	dboard-shell -config rig.yaml -trace rig.dtrace
//
//	# One-shot read
//	dboard-shell -exec "get rx/AB/frequency-range"
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sdrhost/dboard-go/cmd/dboard-shell/interactive"
	"github.com/sdrhost/dboard-go/pkg/config"
	"github.com/sdrhost/dboard-go/pkg/dboard"
	"github.com/sdrhost/dboard-go/pkg/dboard/basic"
	"github.com/sdrhost/dboard-go/pkg/inspect"
	"github.com/sdrhost/dboard-go/pkg/manager"
	"github.com/sdrhost/dboard-go/pkg/trace"
)

// Flags holds the command-line settings.
type Flags struct {
	ConfigFile string
	LogLevel   string
	TraceFile  string
	Exec       string
}

var flags Flags

func init() {
	flag.StringVar(&flags.ConfigFile, "config", "", "Rig configuration file path")
	flag.StringVar(&flags.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.StringVar(&flags.TraceFile, "trace", "", "Append property trace events to this file")
	flag.StringVar(&flags.Exec, "exec", "", "Run ';'-separated commands and exit")
}

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var tracers []trace.Logger
	if cfg.TraceFile != "" {
		fileLogger, err := trace.NewFileLogger(cfg.TraceFile)
		if err != nil {
			logger.Error("failed to open trace file", "path", cfg.TraceFile, "error", err)
			os.Exit(1)
		}
		defer fileLogger.Close()
		tracers = append(tracers, fileLogger)
		logger.Info("property tracing enabled", "path", cfg.TraceFile)
	}
	tracers = append(tracers, trace.NewSlogAdapter(logger))

	inspector, err := buildSlots(cfg, logger, trace.NewMultiLogger(tracers...))
	if err != nil {
		logger.Error("failed to set up slots", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if flags.Exec != "" {
		runExec(ctx, inspector)
		return
	}

	sh, err := interactive.New(inspector)
	if err != nil {
		logger.Error("failed to start shell", "error", err)
		os.Exit(1)
	}

	// Stop on SIGTERM; readline handles ^C itself.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	sh.Run(ctx, cancel)
}

// loadConfig reads the rig file (or the default rig) and applies flag
// overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if flags.ConfigFile != "" {
		loaded, err := config.Load(flags.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flags.LogLevel != "" {
		cfg.LogLevel = flags.LogLevel
	}
	if flags.TraceFile != "" {
		cfg.TraceFile = flags.TraceFile
	}
	return cfg, cfg.Validate()
}

// buildSlots creates one manager per configured slot over a registry
// holding the built-in boards.
func buildSlots(cfg *config.Config, logger *slog.Logger, tracer trace.Logger) (*inspect.Inspector, error) {
	reg := dboard.NewRegistry()
	if err := basic.Register(reg); err != nil {
		return nil, err
	}

	managers := make([]*manager.Manager, 0, len(cfg.Slots))
	for _, slot := range cfg.Slots {
		rxID, txID, err := slot.IDs()
		if err != nil {
			return nil, err
		}
		m, err := manager.New(reg, rxID, txID, manager.Config{
			Slot:   slot.Name,
			Trace:  tracer,
			Logger: logger,
		})
		if err != nil {
			return nil, fmt.Errorf("slot %s: %w", slot.Name, err)
		}
		managers = append(managers, m)
	}
	return inspect.NewInspector(managers...), nil
}

func runExec(ctx context.Context, inspector *inspect.Inspector) {
	sh := interactive.NewBatch(inspector, os.Stdout)
	for _, line := range strings.Split(flags.Exec, ";") {
		if !sh.Execute(ctx, line) {
			return
		}
	}
}
