package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/hooke/internal/config"
	"github.com/alexiusacademia/hooke/internal/version"
)

var (
	configPath string
	verbose    bool

	cfg    = config.DefaultConfig()
	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "hooke"})
)

var rootCmd = &cobra.Command{
	Use:   "hooke",
	Short: "Spring constant and work calculator (Hooke's Law)",
	Long: `hooke - Hooke's Law Spring Calculator

A CLI tool for ideal linear springs (F = kx).

This tool helps you:
  - Solve for the spring constant k from a force and a displacement
  - Compute the work done stretching or compressing a spring
  - Plot the force-displacement line in the terminal or to an image
  - Export sampled curves to CSV or Excel and print PDF reports`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   hooke v%-49s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Hooke's Law Spring Calculator                           ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Spring constant from force and displacement (k = F/x)")
		fmt.Fprintln(out, "    • Work done between two displacements (W = ½k(x2² − x1²))")
		fmt.Fprintln(out, "    • Force-displacement plots (terminal, PNG, SVG, PDF)")
		fmt.Fprintln(out, "    • CSV / Excel export and PDF calculation reports")
		fmt.Fprintln(out, "    • Interactive form with a live plot")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'hooke --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (YAML), defaults to $"+config.EnvConfigPath)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(log.WarnLevel)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	c, path, err := config.Resolve(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config file not found: %s", path)
		}
		return err
	}
	if path != "" {
		logger.Debug("loaded config", "path", path, "points", c.Points, "precision", c.Precision)
	}
	cfg = c
	return nil
}

// setOutput points the command tree at w; used by tests
func setOutput(w io.Writer) {
	rootCmd.SetOut(w)
	rootCmd.SetErr(w)
}
