package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/conneroisu/bintree/internal/bst"
	"github.com/conneroisu/bintree/internal/config"
	"github.com/conneroisu/bintree/internal/logging"
	"github.com/conneroisu/bintree/internal/render"
	"github.com/conneroisu/bintree/internal/script"
	"github.com/conneroisu/bintree/internal/watcher"
)

var runCmd = &cobra.Command{
	Use:     "run <script.yml>",
	Aliases: []string{"r"},
	Short:   "Apply an operation script to a tree",
	Long: `Seed a tree and apply the operations listed in a YAML script, printing the
outcome of every step followed by the final tree.

Script format:
  seed: [4, 2, 6, 1, 3, 5, 7]
  ops:
    - {op: find, value: 5}
    - {op: remove, value: 2}
    - {op: insert, value: 9}
    - {op: min}
    - {op: check}
    - {op: clear}

Failed steps (unknown operations, missing values, broken ordering) make the
command exit non-zero. Removing a value that is not present is reported but
is not a failure.

Examples:
  bintree run ops.yml                # Apply once
  bintree run ops.yml -o tree        # Draw the final tree
  bintree run ops.yml --watch        # Re-apply on every save`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

var (
	runFlags *StandardFlags
	runWatch bool
)

func init() {
	rootCmd.AddCommand(runCmd)

	runFlags = AddStandardFlags(runCmd, "output", "quiet")
	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false, "Re-apply the script whenever the file changes")
}

func runScript(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := args[0]
	logger := cfg.Logger()
	format := runFlags.ResolveFormat(cfg.Output.Format)
	out := cmd.OutOrStdout()

	replay := func(ctx context.Context) error {
		s, err := script.Load(path)
		if err != nil {
			return err
		}
		report, err := script.Run(ctx, bst.NewTree(), s, logger)
		if err != nil {
			return err
		}
		if err := printReport(out, report, format, runFlags.Quiet); err != nil {
			return err
		}
		return report.Err()
	}

	if !runWatch {
		return replay(cmd.Context())
	}

	return watchScript(cmd.Context(), cfg, path, logger, out, replay)
}

func watchScript(ctx context.Context, cfg *config.Config, path string, logger logging.Logger, out io.Writer, replay func(context.Context) error) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	fw, err := watcher.NewFileWatcher(cfg.Watch.Debounce, logger)
	if err != nil {
		return err
	}
	defer fw.Stop()

	if err := fw.AddFile(path); err != nil {
		return err
	}

	fw.AddHandler(func(events []watcher.ChangeEvent) error {
		fmt.Fprintf(out, "\n--- %s %s ---\n", path, events[len(events)-1].Type)
		return replay(ctx)
	})

	if err := replay(ctx); err != nil {
		logger.Warn(ctx, err, "Script replay failed", "path", path)
	}

	if err := fw.Start(ctx); err != nil {
		return err
	}
	logger.Info(ctx, "Watching script for changes", "path", path, "debounce", cfg.Watch.Debounce.String())

	<-ctx.Done()
	return nil
}

func printReport(w io.Writer, report *script.Report, format string, quiet bool) error {
	if !quiet && len(report.Results) > 0 {
		title := cases.Title(language.English)

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "STEP\tOP\tVALUE\tOUTCOME\tTREE")
		for _, r := range report.Results {
			value := "-"
			if r.Value != nil {
				value = strconv.Itoa(*r.Value)
			}
			outcome := r.Outcome
			if r.Failed {
				outcome = "FAILED: " + outcome
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", r.Index, title.String(r.Op), value, outcome, render.Values(r.Values))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	return render.Render(w, report.Root, format)
}
