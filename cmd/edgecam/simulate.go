package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/edgecam/scenario"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	passStyle   = cellStyle.Foreground(lipgloss.Color("10"))
	failStyle   = cellStyle.Foreground(lipgloss.Color("9"))
)

func newSimulateCmd(a *app) *cobra.Command {
	var (
		files   []string
		workers int
		trace   string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run scripted camera scenarios headless",
		Long: `Run YAML camera scenarios against the configured camera and report the
final state of each. Without --file the bundled reference scenarios run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd.Flags(), nil); err != nil {
				return err
			}

			scs := scenario.Builtin()
			if len(files) > 0 {
				var err error
				if scs, err = scenario.LoadFiles(a.fs, files...); err != nil {
					return err
				}
			}

			results, err := scenario.RunAll(cmd.Context(), a.cfg.CameraSettings(), scs, workers, a.log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, resultTable(results))
			if trace != "" {
				for _, r := range results {
					if r.Name == trace {
						fmt.Fprintln(out, traceTable(r))
					}
				}
			}

			var failed int
			for _, r := range results {
				if !r.Passed() {
					failed++
					for _, f := range r.Failures {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", r.Name, f)
					}
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d scenarios failed", failed, len(results))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringSliceVarP(&files, "file", "f", nil, "scenario files (repeatable)")
	f.IntVarP(&workers, "workers", "w", 0, "max concurrent scenarios, 0 runs all at once")
	f.StringVar(&trace, "trace", "", "print the per-frame trace of the named scenario")
	return cmd
}

func resultTable(results []*scenario.Result) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("SCENARIO", "FRAMES", "STATUS", "TEAM", "RESOLVED", "POSITION", "ZOOM", "CLAMPS", "RESULT")

	for _, r := range results {
		verdict := "ok"
		if !r.Passed() {
			verdict = "FAIL"
		}
		resolved := "-"
		if r.ResolvedFrame >= 0 {
			resolved = strconv.FormatInt(r.ResolvedFrame, 10)
		}
		p := r.Final.Position
		t.Row(
			r.Name,
			strconv.Itoa(len(r.Frames)),
			r.Status.String(),
			r.Team.String(),
			resolved,
			fmt.Sprintf("%.2f, %.2f, %.2f", p.X, p.Y, p.Z),
			fmt.Sprintf("%.2f", r.Final.Zoom()),
			strconv.Itoa(r.Clamps),
			verdict,
		)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		if col == 8 && row >= 0 && row < len(results) {
			if results[row].Passed() {
				return passStyle
			}
			return failStyle
		}
		return cellStyle
	})
	return t.String()
}

func traceTable(r *scenario.Result) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("FRAME", "X", "Z", "ZOOM", "PLACEMENT", "FLAGS")
	for _, f := range r.Frames {
		flags := ""
		if f.Placed {
			flags += "P"
		}
		if f.Clamped {
			flags += "C"
		}
		if f.Zoomed {
			flags += "Z"
		}
		t.Row(
			strconv.FormatInt(f.N, 10),
			fmt.Sprintf("%.2f", f.Position.X),
			fmt.Sprintf("%.2f", f.Position.Z),
			fmt.Sprintf("%.2f", f.Zoom),
			f.Status.String(),
			flags,
		)
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		return cellStyle
	})
	return t.String()
}
