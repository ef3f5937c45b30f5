package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svw.info/renban/internal/domain"
	"svw.info/renban/internal/parser"
	"svw.info/renban/internal/ports"
	"svw.info/renban/internal/solver"
	"svw.info/renban/internal/trace"
)

func newSolveCommand() *cobra.Command {
	var (
		progress  bool
		tracePath string
	)
	cmd := &cobra.Command{
		Use:   "solve <puzzle-file>",
		Short: "Solve a puzzle file (plain text or YAML) and print the grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd)
			def, err := parser.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("read puzzle: %w", err)
			}

			var tracers trace.Multi
			if progress {
				tracers = append(tracers, trace.NewProgress(log))
			}
			if tracePath != "" {
				f, err := os.Create(tracePath)
				if err != nil {
					return fmt.Errorf("open trace file: %w", err)
				}
				defer f.Close()
				tracers = append(tracers, &trace.Dumper{W: f})
			}

			eng := solver.NewEngine()
			var t ports.Tracer
			if len(tracers) > 0 {
				t = tracers
			}
			grid, st, err := eng.WithTracer(t).Solve(cmd.Context(), def)
			if err != nil {
				if errors.Is(err, domain.ErrUnsolvable) {
					log.Info("search exhausted", "nodes", st.Nodes, "dur", st.Duration)
				}
				return err
			}
			log.Info("solved", "nodes", st.Nodes, "maxDepth", st.MaxDepth, "dur", st.Duration)
			fmt.Fprint(cmd.OutOrStdout(), grid.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&progress, "progress", false, "log depth milestones while searching")
	cmd.Flags().StringVar(&tracePath, "trace", "", "write per-node grid dumps to this file")
	return cmd
}
