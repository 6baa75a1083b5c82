package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wsp3d/wsp3d/cuboid"
)

// newCuboidCmd exposes the hex-grid tetgen fixture generator (package
// cuboid) as "wsp3d cuboid <basename> --nx N --ny N --nz N", writing
// <basename>.node and <basename>.ele.
func newCuboidCmd() *cobra.Command {
	var nx, ny, nz int

	cmd := &cobra.Command{
		Use:           "cuboid <basename>",
		Short:         "Generate a tetgen .node/.ele test fixture: an nx x ny x nz grid of unit cubes, Kuhn-triangulated into tetrahedra",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			basename := args[0]
			if err := cuboid.WriteFiles(basename+".node", basename+".ele", nx, ny, nz); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s.node and %s.ele (%d cells)\n", basename, basename, nx*ny*nz*6)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&nx, "nx", 1, "number of unit cubes along x")
	flags.IntVar(&ny, "ny", 1, "number of unit cubes along y")
	flags.IntVar(&nz, "nz", 1, "number of unit cubes along z")
	return cmd
}
