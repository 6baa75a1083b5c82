// Command wsp3d computes weighted shortest paths through a tetrahedral
// mesh via a Steiner-graph spanner approximation, following the pipeline
// meshio -> mesh -> steiner -> solver -> result -> harness -> vtkio.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/wsp3d/wsp3d/meshio"
	"github.com/wsp3d/wsp3d/result"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cmd := newRootCmd(logger)
	if err := cmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("wsp3d failed")
		if errors.Is(err, ErrConfigError) {
			fmt.Fprint(os.Stderr, cmd.UsageString())
		}
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps a run() error onto spec.md §7's exit codes: 0 is
// unreachable here (Execute only returns a non-nil error on failure), 1 for
// config/parse errors, 2 for an unreachable target in single-query mode.
func exitCodeFor(err error) int {
	if errors.Is(err, result.ErrUnreachable) {
		return 2
	}
	var parseErr *meshio.ErrInputParse
	if errors.As(err, &parseErr) {
		return 1
	}
	if errors.Is(err, ErrConfigError) {
		return 1
	}
	return 1
}
