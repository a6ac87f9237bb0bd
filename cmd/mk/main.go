package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	mk "github.com/deosjr/microkanren"
	"github.com/deosjr/microkanren/internal/config"
	"github.com/deosjr/microkanren/internal/relations"
)

var (
	// Global flags
	verbose    bool
	configPath string
	results    int

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mk",
	Short: "Run example relations on the microkanren core",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		zcfg := zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("failed to parse log level: %w", err)
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the example queries",
	Args:  cobra.NoArgs,
	RunE:  listExamples,
}

var runCmd = &cobra.Command{
	Use:   "run [example]",
	Short: "Run one example query and print its results",
	Long: `Runs an example query and prints the value of the query variable
in each result state.

Example:
  mk run appendo
  mk run fives -n 3`,
	Args: cobra.ExactArgs(1),
	RunE: runExample,
}

var batchCmd = &cobra.Command{
	Use:   "batch [example...]",
	Short: "Run several example queries concurrently",
	Long: `Runs the named example queries, or every finite example when none
are named, on a pool of workers.`,
	RunE: runBatch,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().IntVarP(&results, "results", "n", 0, "Results to take per query (default from config, -1 for all)")
	rootCmd.AddCommand(listCmd, runCmd, batchCmd)
}

func listExamples(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, e := range relations.Examples() {
		suffix := ""
		if e.Infinite {
			suffix = " (infinite)"
		}
		fmt.Fprintf(out, "%-10s %s%s\n", e.Name, e.Description, suffix)
	}
	return nil
}

func runExample(cmd *cobra.Command, args []string) error {
	e, ok := relations.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown example %q", args[0])
	}
	n := resultCount()
	if e.Infinite && n < 0 {
		return fmt.Errorf("example %q is infinite; pass a positive result count", e.Name)
	}
	logger.Info("Running example", zap.String("example", e.Name), zap.Int("results", n))

	opts := append(cfg.SearchOptions(), mk.WithLogger(logger))
	states, err := mk.RunContext(commandContext(cmd), n, e.Goal(), opts...)
	printStates(cmd.OutOrStdout(), e.Name, states)
	if err != nil {
		return fmt.Errorf("example %s: %w", e.Name, err)
	}
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	var examples []relations.Example
	if len(args) == 0 {
		for _, e := range relations.Examples() {
			if !e.Infinite {
				examples = append(examples, e)
			}
		}
	}
	for _, name := range args {
		e, ok := relations.Lookup(name)
		if !ok {
			return fmt.Errorf("unknown example %q", name)
		}
		examples = append(examples, e)
	}

	n := resultCount()
	queries := make([]mk.Query, len(examples))
	for i, e := range examples {
		if e.Infinite && n < 0 {
			return fmt.Errorf("example %q is infinite; pass a positive result count", e.Name)
		}
		queries[i] = mk.Query{ID: e.Name, N: n, Goal: e.Goal()}
	}
	logger.Info("Running batch", zap.Int("queries", len(queries)), zap.Int("workers", cfg.Batch.Workers))

	opts := append(cfg.SearchOptions(), mk.WithLogger(logger))
	var errs []error
	for _, r := range mk.RunBatch(commandContext(cmd), queries, opts...) {
		printStates(cmd.OutOrStdout(), r.ID, r.States)
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("example %s: %w", r.ID, r.Err))
		}
	}
	return errors.Join(errs...)
}

func resultCount() int {
	if results != 0 {
		return results
	}
	return cfg.Search.DefaultResults
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func printStates(w io.Writer, name string, states []mk.State) {
	fmt.Fprintf(w, "%s: %d result(s)\n", name, len(states))
	for _, st := range states {
		fmt.Fprintf(w, "  %v\n", st.Sub.WalkStar(mk.Var(0)))
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
