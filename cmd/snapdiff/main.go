package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"snapdiff/internal/compare"
	"snapdiff/internal/config"
	"snapdiff/internal/tree"
	"snapdiff/internal/watch"
)

var (
	configPath   string
	includeFlags []string
	intervalFlag time.Duration
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "snapdiff",
	Short:         "Content-addressed directory snapshots and diffs",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "snapdiff.yaml", "Config file path")
	rootCmd.PersistentFlags().StringArrayVar(&includeFlags, "include", nil, "File whitelist glob (repeatable, overrides config)")
	watchCmd.Flags().DurationVar(&intervalFlag, "interval", 0, "Poll interval (overrides config)")

	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(watchCmd)
}

// loadInclude merges the config whitelist with --include overrides.
func loadInclude() (*config.Config, []string, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	include := cfg.Include
	if len(includeFlags) > 0 {
		include = includeFlags
	}
	return cfg, include, nil
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <directory> [output.json]",
	Short: "Capture a snapshot of a directory and save it as JSON",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, include, err := loadInclude()
		if err != nil {
			return err
		}

		snap, err := tree.Build(args[0], include)
		if err != nil {
			return err
		}

		outputPath := cfg.OutputFile
		if len(args) == 2 {
			outputPath = args[1]
		}
		if outputPath == "" {
			outputPath = snap.Root.Rev + ".json"
		}

		if dir := filepath.Dir(outputPath); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
		}

		if err := tree.Save(snap, outputPath); err != nil {
			return err
		}

		fmt.Printf("Snapshot saved\n")
		fmt.Printf("  Root:   %s\n", snap.Path)
		fmt.Printf("  Rev:    %s\n", snap.Root.Rev)
		fmt.Printf("  Output: %s\n", outputPath)
		return nil
	},
}

var diffCmd = &cobra.Command{
	Use:   "diff <snapshot.json> <directory>",
	Short: "Compare a saved snapshot against the current directory state",
	Long: "Compare a saved snapshot against a fresh snapshot of the directory.\n" +
		"Exits 1 when changes are detected, 0 when the tree is unchanged.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		old, err := tree.Load(args[0])
		if err != nil {
			return err
		}

		include := old.Include
		if len(includeFlags) > 0 {
			include = includeFlags
		}

		next, err := tree.Build(args[1], include)
		if err != nil {
			return err
		}

		result := compare.Compare(old.Root, next.Root)
		fmt.Println(compare.FormatReport(result, next.Path))

		if compare.HasChanges(result) {
			os.Exit(1)
		}
		return nil
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch <directory>...",
	Short: "Poll directories and print changed files until interrupted",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, include, err := loadInclude()
		if err != nil {
			return err
		}

		interval := intervalFlag
		if interval <= 0 {
			interval = cfg.Interval()
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		statuses := tree.Statuses(tree.Added, tree.Modified, tree.Removed)

		g, ctx := errgroup.WithContext(ctx)
		for _, dir := range args {
			dir := dir
			g.Go(func() error {
				return watch.Run(ctx, watch.Config{
					Path:     dir,
					Include:  include,
					Interval: interval,
					Statuses: statuses,
					OnChange: func(n *tree.Node, parent string) {
						fmt.Printf("%s %s\n", marker(n.Status), filepath.Join(parent, n.Name))
					},
				})
			})
		}

		if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func marker(s tree.Status) string {
	switch s {
	case tree.Added:
		return "+"
	case tree.Removed:
		return "-"
	case tree.Modified:
		return "~"
	}
	return " "
}
