package main

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/wsp3d/wsp3d/harness"
	"github.com/wsp3d/wsp3d/internal/randutil"
	"github.com/wsp3d/wsp3d/mesh"
	"github.com/wsp3d/wsp3d/meshio"
	"github.com/wsp3d/wsp3d/result"
	"github.com/wsp3d/wsp3d/solver"
	"github.com/wsp3d/wsp3d/steiner"
	"github.com/wsp3d/wsp3d/vtkio"
	"github.com/wsp3d/wsp3d/wspgraph"
)

// run executes one CLI invocation end to end: load, weight, build the
// Steiner graph, optionally dump mesh/graph VTK, then either a random
// batch (cfg.RandomSTVertices > 0) or a single query.
func run(cfg *config, logger zerolog.Logger) error {
	m, err := meshio.ReadTetgen(cfg.InputMesh+".node", cfg.InputMesh+".ele")
	if err != nil {
		return err
	}

	if cfg.UseRandomCellWeights {
		m.Apply(mesh.WithRandomCellWeights(randutil.New(nil), 1, 1000))
	}
	if err := mesh.DeriveWeights(m); err != nil {
		return err
	}

	g, err := steiner.Build(m, steinerConfig(cfg))
	if err != nil {
		return err
	}
	logger.Info().
		Int("vertices", m.NumVertices()).
		Int("cells", m.NumCells()).
		Int("graph_nodes", g.NumNodes()).
		Int("graph_edges", g.NumEdges()).
		Msg("mesh and steiner graph built")

	if cfg.WriteMeshVTK {
		if err := vtkio.WriteMeshFile("mesh.vtk", m); err != nil {
			logger.Error().Err(err).Msg("writing mesh.vtk")
		}
	}
	if cfg.WriteSteinerGraphVTK {
		if err := vtkio.WriteSteinerGraphFile("steiner_graph.vtk", g); err != nil {
			logger.Error().Err(err).Msg("writing steiner_graph.vtk")
		}
	}

	rng := randutil.New(nil)

	if cfg.RandomSTVertices > 0 {
		return runBatch(cfg, g, m, rng, logger)
	}
	return runSingleQuery(cfg, g, m, rng, logger)
}

// steinerConfig maps spec.md's (-x, -y) pair onto a steiner.Config: a
// negative stretch selects the surface-only scheme; a non-negative stretch
// selects the spanner/interval scheme, with a non-positive yardstick
// widened to +Inf so "0 = no subdivision" degrades to a single segment per
// edge instead of tripping steiner.Config's positive-yardstick invariant.
func steinerConfig(cfg *config) steiner.Config {
	if cfg.SpannerStretch < 0 {
		return steiner.Config{Mode: steiner.ModeSurfaceOnly}
	}
	yardstick := cfg.Yardstick
	if yardstick <= 0 {
		yardstick = math.Inf(1)
	}
	return steiner.Config{Mode: steiner.ModeSpannerInterval, Stretch: cfg.SpannerStretch, Yardstick: yardstick}
}

// runBatch runs cfg.RandomSTVertices random queries and appends one row for
// the whole batch to distances.csv via harness.CSVSink (§6.4: append
// semantics, flushed and closed exactly once per invocation).
func runBatch(cfg *config, g *wspgraph.Graph, m *mesh.Mesh, rng *rand.Rand, logger zerolog.Logger) error {
	sink, err := harness.NewCSVSink("distances.csv")
	if err != nil {
		return err
	}
	defer sink.Close()

	h := harness.New(g, m, sink)
	stats, err := h.RandomBatch(cfg.RandomSTVertices, rng, cfg.SpannerStretch, cfg.Yardstick)
	if err != nil {
		return err
	}

	if stats.StretchViolations > 0 {
		logger.Error().Int("count", stats.StretchViolations).Msg("stretch violations: approximation ratio below 1.0")
	}
	logger.Info().
		Int("count", stats.Count).
		Int("unreachable", stats.Unreachable).
		Float64("min_ratio", stats.MinRatio).
		Float64("max_ratio", stats.MaxRatio).
		Float64("avg_ratio", stats.AvgRatio).
		Msg("random batch complete")
	return nil
}

// runSingleQuery resolves start/termination vertices (random if -1), runs
// one query, and — per spec.md §6.2 — emits wsp_tree.vtk,
// wsp_path_s{s}_t{t}.vtk and wsp_path_cells_s{s}_t{t}.vtk for single-query
// mode. An unreachable target is logged and returned so main can select
// exit code 2; in that case only wsp_tree.vtk is written. A stretch violation is logged as an error but does not abort
// the run: the path it produced is still written out. VTK side outputs
// that fail to write are logged and skipped,
// never fatal to the run (§7's IoOpen/IoWrite recovery policy).
func runSingleQuery(cfg *config, g *wspgraph.Graph, m *mesh.Mesh, rng *rand.Rand, logger zerolog.Logger) error {
	h := harness.New(g, m, harness.NopSink{})

	sv, tv := cfg.StartVertex, cfg.TerminationVertex
	if sv < 0 {
		sv = rng.Intn(m.NumVertices())
	}
	if tv < 0 {
		tv = rng.Intn(m.NumVertices())
	}

	sNode, err := h.VertexNode(sv)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfigError, err)
	}
	tNode, err := h.VertexNode(tv)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfigError, err)
	}

	path, queryErr := h.SingleQuery(sNode, tNode)
	if queryErr != nil && !errors.Is(queryErr, result.ErrUnreachable) && !errors.Is(queryErr, result.ErrStretchViolation) {
		return queryErr
	}
	if errors.Is(queryErr, result.ErrStretchViolation) {
		logger.Error().Int("source", sv).Int("target", tv).Float64("ratio", path.Ratio).Msg("stretch violation: approximation ratio below 1.0")
	}

	solved, err := solver.Run(g, sNode)
	if err != nil {
		logger.Error().Err(err).Msg("computing full shortest-path tree")
	} else {
		if err := vtkio.WriteShortestPathTreeFile("wsp_tree.vtk", g, sNode, solved); err != nil {
			logger.Error().Err(err).Msg("writing wsp_tree.vtk")
		}
	}

	if errors.Is(queryErr, result.ErrUnreachable) {
		logger.Warn().Int("source", sv).Int("target", tv).Msg("target unreachable")
		return queryErr
	}

	logger.Info().
		Int("source", sv).
		Int("target", tv).
		Float64("distance", path.Distance).
		Int("hops", path.Hops).
		Float64("ratio", path.Ratio).
		Msg("query complete")

	if solved != nil {
		pathFile := fmt.Sprintf("wsp_path_s%d_t%d.vtk", sv, tv)
		if err := vtkio.WriteShortestPathFromToFile(pathFile, g, sNode, tNode, solved); err != nil {
			logger.Error().Err(err).Msg("writing shortest-path vtk")
		}
	}
	cellsFile := fmt.Sprintf("wsp_path_cells_s%d_t%d.vtk", sv, tv)
	if err := vtkio.WriteShortestPathCellsFile(cellsFile, m, path); err != nil {
		logger.Error().Err(err).Msg("writing shortest-path-cells vtk")
	}
	return nil
}
