package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// newRootCmd wires the cobra/pflag flag table of spec.md §6.3 onto cfg and
// runs the pipeline through run(cfg, logger) on Execute.
func newRootCmd(logger zerolog.Logger) *cobra.Command {
	cfg := &config{}

	cmd := &cobra.Command{
		Use:           "wsp3d <input-mesh>",
		Short:         "Weighted shortest paths over a tetrahedral mesh via a Steiner-graph approximation",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.InputMesh = args[0]
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cfg, logger)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&cfg.StartVertex, "start-vertex", "s", -1, "source vertex index; -1 picks at random")
	flags.IntVarP(&cfg.TerminationVertex, "termination-vertex", "t", -1, "target vertex index; -1 picks at random")
	flags.IntVarP(&cfg.RandomSTVertices, "random-s-t-vertices", "r", 0, "number of random query pairs to run instead of a single query")
	flags.Float64VarP(&cfg.SpannerStretch, "spanner-stretch", "x", 0.0, ">= 0 selects the spanner/interval scheme; < 0 selects surface-only")
	flags.Float64VarP(&cfg.Yardstick, "yardstick", "y", 0.0, "edge-subdivision interval; 0 disables subdivision")
	flags.BoolVarP(&cfg.WriteMeshVTK, "write-mesh-vtk", "m", false, "emit mesh.vtk")
	flags.BoolVarP(&cfg.WriteSteinerGraphVTK, "write-steiner-graph-vtk", "g", false, "emit steiner_graph.vtk")
	flags.BoolVarP(&cfg.UseRandomCellWeights, "use-random-cellweights", "u", false, "override cell weights with a uniform random draw")

	cmd.AddCommand(newCuboidCmd())
	return cmd
}
