// Package cli holds the gradestats command tree and the interactive menu.
package cli

import (
	"errors"
	"fmt"
	"os"

	service "github.com/okian/gradestats/internal/app"
	"github.com/okian/gradestats/internal/config"
	"github.com/okian/gradestats/internal/domain/model"
	"github.com/spf13/cobra"
)

// Version and Commit are set at build time through -ldflags.
var (
	Version = "dev"
	Commit  = "none"
)

// SessionFactory creates a fresh session for one command run.
type SessionFactory func() *service.Service

// NewRootCmd builds the command tree. Without a subcommand the interactive
// menu is started.
func NewRootCmd(cfg *config.Config, newSession SessionFactory) *cobra.Command {
	var preload string

	root := &cobra.Command{
		Use:     "gradestats",
		Version: Version,
		Short:   "Collect scores and compute their statistics",
		Long: `gradestats records scores between 0.0 and 10.0, computes their mean,
highest, lowest and population standard deviation, sorts them, and keeps
them in a plain text file with one score per line.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, cfg, newSession(), preload)
		},
	}
	root.Flags().StringVarP(&preload, "file", "f", "", "score file to load before showing the menu")

	root.AddCommand(
		newShellCmd(cfg, newSession),
		newStatsCmd(newSession),
		newShowCmd(newSession),
		newAddCmd(newSession),
		newSortCmd(newSession),
		newVersionCmd(),
	)
	return root
}

func newShellCmd(cfg *config.Config, newSession SessionFactory) *cobra.Command {
	var preload string
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, cfg, newSession(), preload)
		},
	}
	cmd.Flags().StringVarP(&preload, "file", "f", "", "score file to load before showing the menu")
	return cmd
}

func runShell(cmd *cobra.Command, cfg *config.Config, svc *service.Service, preload string) error {
	ctx := cmd.Context()
	if preload != "" {
		n, err := svc.Load(ctx, preload)
		if err != nil {
			return errors.New(describe(err))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Loaded from '%s'. Total scores: %d\n", preload, n)
	}
	return NewMenu(svc, cmd.InOrStdin(), cmd.OutOrStdout(), cfg.DataFile).Run(ctx)
}

func newStatsCmd(newSession SessionFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE",
		Short: "Print statistics of a score file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newSession()
			if _, err := svc.Load(cmd.Context(), args[0]); err != nil {
				return errors.New(describe(err))
			}
			writeSummary(cmd.OutOrStdout(), svc.Statistics(cmd.Context()))
			return nil
		},
	}
}

func newShowCmd(newSession SessionFactory) *cobra.Command {
	var sorted bool
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "List the scores of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newSession()
			if _, err := svc.Load(cmd.Context(), args[0]); err != nil {
				return errors.New(describe(err))
			}
			if sorted {
				// An empty file has nothing to sort and lists as empty.
				_ = svc.Sort(cmd.Context())
			}
			writeEntries(cmd.OutOrStdout(), svc)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&sorted, "sorted", "s", false, "list in ascending order without changing the file")
	return cmd
}

func newAddCmd(newSession SessionFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "add FILE SCORE...",
		Short: "Append scores to a file, creating it if needed",
		Long: `Append scores to a file, creating it if needed. Every score is checked
before anything is written: a single invalid value leaves the file untouched.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			values := make([]float64, 0, len(args)-1)
			for _, arg := range args[1:] {
				v, err := parseScore(arg)
				if err != nil {
					return fmt.Errorf("invalid input %q: not a number", arg)
				}
				if err := model.Validate(v); err != nil {
					return errors.New(describe(err))
				}
				values = append(values, v)
			}

			svc := newSession()
			if _, err := svc.Load(ctx, path); err != nil && !errors.Is(err, os.ErrNotExist) {
				return errors.New(describe(err))
			}
			for _, v := range values {
				if err := svc.AddScore(ctx, v); err != nil {
					return errors.New(describe(err))
				}
			}

			if err := svc.Save(ctx, path); err != nil {
				return errors.New(describe(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d scores to '%s'. Total: %d\n", len(values), path, svc.Count())
			return nil
		},
	}
}

func newSortCmd(newSession SessionFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "sort FILE",
		Short: "Sort a score file in ascending order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc := newSession()
			if _, err := svc.Load(ctx, args[0]); err != nil {
				return errors.New(describe(err))
			}
			if err := svc.Sort(ctx); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No scores to sort.")
				return nil
			}
			if err := svc.Save(ctx, args[0]); err != nil {
				return errors.New(describe(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sorted %d scores in '%s'.\n", svc.Count(), args[0])
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gradestats %s (%s)\n", Version, Commit)
		},
	}
}
