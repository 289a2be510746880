package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-ricrob/keypadsolver/internal/config"
	"github.com/go-ricrob/keypadsolver/internal/solver"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func readCodes(r io.Reader) ([]string, error) {
	var codes []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			codes = append(codes, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return codes, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func solve(cmd *cobra.Command, args []string, cfgPath string) error {
	cfg, err := config.Load(cfgPath, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	codes, err := readCodes(in)
	if err != nil {
		return fmt.Errorf("read codes: %w", err)
	}

	total, err := solver.Solve(cmd.Context(), codes, cfg.Depth, append(cfg.Options(), solver.WithLogger(logger))...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), total)
	return nil
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "keypadsolver [file]",
		Short: "Minimum human presses to type codes through a chain of keypad robots",
		Long: `keypadsolver reads one numeric keypad code per line (from file or stdin)
and prints the sum of code value times minimum number of presses.

Configuration is read from --config, KEYPADSOLVER_* environment variables and flags.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(cmd, args, cfgPath)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "config file (yaml, toml or json)")
	cmd.Flags().Int("depth", 2, "number of directional keypad robots in the chain")
	cmd.Flags().Int("workers", 0, "number of codes solved concurrently (default: number of CPUs)")
	cmd.Flags().Int("partitions", solver.DefaultPartitions, "number of memo partitions")
	cmd.Flags().Bool("debug", false, "enable debug logging")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "keypadsolver:", err)
		os.Exit(1)
	}
}
