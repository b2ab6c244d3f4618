package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhamidi/snek/codebase"
	"github.com/dhamidi/snek/project"
)

func newCheckCmd() *cobra.Command {
	var watch bool
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "check [directory]",
		Short: "Report syntax errors in every source file of a project",
		Long: `Report syntax errors in every source file of a project.

Each error is printed as file:line:col: message. The command fails when
any file has an error. With --watch it keeps running and checks again
whenever a source file changes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			proj, err := project.LoadFrom(dir)
			if err != nil {
				return fmt.Errorf("load project: %w", err)
			}
			c := codebase.New(proj)

			if watch {
				return runWatch(cmd, c, interval)
			}

			if err := c.ScanAll(); err != nil {
				return fmt.Errorf("scan project: %w", err)
			}
			if n := report(cmd.OutOrStdout(), c); n > 0 {
				return fmt.Errorf("%d of %d files have syntax errors", n, len(c.Files()))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "check again whenever a source file changes")
	cmd.Flags().DurationVar(&interval, "interval", codebase.DefaultPollInterval, "poll interval for --watch")

	return cmd
}

func runWatch(cmd *cobra.Command, c *codebase.Codebase, interval time.Duration) error {
	out := cmd.OutOrStdout()
	styles := newReportStyles(out)
	w := codebase.NewFileWatcher(c, interval)
	w.OnChange = func(changed, removed []string) {
		n := report(out, c)
		summary := fmt.Sprintf("-- %s: %d files, %d with errors", time.Now().Format(time.TimeOnly), len(c.Files()), n)
		fmt.Fprintln(out, styles.summary.Render(summary))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	log.Infof("watching %s", c.RootDir())
	w.Scan()
	w.Start()
	<-ctx.Done()
	w.Stop()
	return nil
}

// report prints the diagnostics of c and returns how many there were.
func report(out io.Writer, c *codebase.Codebase) int {
	styles := newReportStyles(out)
	diags := c.Diagnostics()
	for _, d := range diags {
		location := d.Path
		if d.Pos.IsValid() {
			location = d.Pos.String()
		}
		fmt.Fprintf(out, "%s: %s\n", styles.location.Render(location), styles.message.Render(d.Message))
	}
	return len(diags)
}
