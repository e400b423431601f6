package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"movegraph/internal/bootstrap"
	"movegraph/internal/repository"
	movesetuc "movegraph/internal/usecase/moveset"
)

func newCheckCmd(opts *options) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Report range and reference problems in a moveset file",
		Long: `Loads a moveset file (MOVESET_PATH by default) and lists out-of-range values,
references to unknown moves and one-sided parent/child links. Problems are
warnings; only an unreadable or malformed file fails the command. With
--strict, a node carrying a field outside the MoveNode schema counts as
malformed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bootstrap.Setup(opts.envFile)
			if err != nil {
				return fmt.Errorf("setup configuration: %w", err)
			}

			path := cfg.MovesetPath
			if len(args) == 1 {
				path = args[0]
			}

			report, err := movesetuc.NewMovesetUseCase(repository.NewFileMovesetStore(path)).Check(cmd.Context(), strict)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range report.Problems {
				fmt.Fprintln(out, "warning:", p)
			}
			fmt.Fprintf(out, "%s: %d moves, %d edges, %d problems\n", path, report.Moves, report.Edges, len(report.Problems))
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "reject nodes with fields outside the MoveNode schema")
	return cmd
}
