// Command rema builds, updates and inspects detector response matrices.
//
// Usage:
//
//	rema build  -l library.txt -s edep -o rema.db
//	rema update --old-library old.txt -m rema.db -l new.txt -s edep -o rema_new.db
//	rema rebin  -m rema.db -o rema_10keV.db
//	rema info   rema.db
//	rema combine -o total.txt fit.txt simulation.txt spectrum.txt
//
// Settings are read from an optional YAML file (--config) and REMA_*
// environment variables; command-line flags take precedence.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-rema/internal/config"
)

// app carries the state shared by all subcommands after flag parsing.
type app struct {
	cfg *config.Config
	log *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	var (
		configPath string
		verbose    bool
		bins       int
		binning    int
		workers    int
	)

	rootCmd := &cobra.Command{
		Use:   "rema",
		Short: "Response matrix toolkit",
		Long: `rema assembles detector response matrices from libraries of
mono-energetic simulations, merges new simulations into existing matrices
and combines statistical uncertainties.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("bins") {
				cfg.Bins = bins
			}
			if flags.Changed("binning") {
				cfg.Binning = binning
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if verbose {
				cfg.LogLevel = "debug"
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			log, err := newLogger(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.cfg = cfg
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML configuration file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log every bin decision")
	pf.IntVar(&bins, "bins", 0, "number of bins per matrix axis (default from config: 12000)")
	pf.IntVarP(&binning, "binning", "b", 0, "rebinning factor (default from config: 10)")
	pf.IntVarP(&workers, "workers", "j", 0, "number of bins processed concurrently")

	rootCmd.AddCommand(
		newBuildCmd(a),
		newUpdateCmd(a),
		newRebinCmd(a),
		newInfoCmd(a),
		newCombineCmd(a),
	)
	return rootCmd
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// spectrumName resolves the spectrum flag against the configured default.
func (a *app) spectrumName(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if a.cfg.Spectrum != "" {
		return a.cfg.Spectrum, nil
	}
	return "", fmt.Errorf("no spectrum name given (use --spectrum or set spectrum in the config)")
}
