package vtkio

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/wsp3d/wsp3d/mesh"
	"github.com/wsp3d/wsp3d/result"
	"github.com/wsp3d/wsp3d/solver"
	"github.com/wsp3d/wsp3d/wspgraph"
)

// WriteShortestPathTree writes every node of g, with one line-segment cell
// per node connecting it to its predecessor (the source connects to
// itself), and each node's finalized distance as POINT_DATA. An
// unreachable node's distance is written as "-0".
func WriteShortestPathTree(w io.Writer, g *wspgraph.Graph, source int, solved *solver.Result) error {
	nn := g.NumNodes()

	sNode, err := g.Node(source)
	if err != nil {
		return err
	}
	if err := writeLines(w,
		"# vtk DataFile Version 2.0",
		fmt.Sprintf("shortest paths tree with root node %d", sNode.Anchor.Vertex),
		"ASCII",
		"DATASET UNSTRUCTURED_GRID",
	); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "POINTS %d double\n", nn); err != nil {
		return fmt.Errorf("%w: %v", ErrIoWrite, err)
	}
	for id := 0; id < nn; id++ {
		n, err := g.Node(id)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%g %g %g \n", n.Point.X, n.Point.Y, n.Point.Z); err != nil {
			return fmt.Errorf("%w: %v", ErrIoWrite, err)
		}
	}

	if _, err := fmt.Fprintf(w, "CELLS %d %d\n", nn, 3*nn); err != nil {
		return fmt.Errorf("%w: %v", ErrIoWrite, err)
	}
	for id := 0; id < nn; id++ {
		pred := solved.Pred[id]
		if pred == -1 {
			pred = id // root (or unreached node): degenerate self-segment, as the original does
		}
		if _, err := fmt.Fprintf(w, "2 %d %d\n", id, pred); err != nil {
			return fmt.Errorf("%w: %v", ErrIoWrite, err)
		}
	}

	if _, err := fmt.Fprintf(w, "CELL_TYPES %d\n", nn); err != nil {
		return fmt.Errorf("%w: %v", ErrIoWrite, err)
	}
	for i := 0; i < nn; i++ {
		if _, err := io.WriteString(w, "3\n"); err != nil {
			return fmt.Errorf("%w: %v", ErrIoWrite, err)
		}
	}

	if err := writeLines(w,
		fmt.Sprintf("POINT_DATA %d", nn),
		"SCALARS distance double 1",
		"LOOKUP_TABLE default",
	); err != nil {
		return err
	}
	for id := 0; id < nn; id++ {
		if err := writeDistance(w, solved.Dist[id]); err != nil {
			return err
		}
	}
	return nil
}

// WriteShortestPathTreeFile opens path (truncating it) and calls WriteShortestPathTree.
func WriteShortestPathTreeFile(filePath string, g *wspgraph.Graph, source int, solved *solver.Result) error {
	f, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIoOpen, filePath, err)
	}
	defer f.Close()
	return WriteShortestPathTree(f, g, source, solved)
}

// WriteShortestPathFromTo writes every node of g as POINTS (so distance can
// be overlaid on the full graph) but only the hop-count edges along the
// s->t path as CELLS.
func WriteShortestPathFromTo(w io.Writer, g *wspgraph.Graph, s, t int, solved *solver.Result) error {
	nn := g.NumNodes()
	hops := pathHops(solved, s, t)

	sNode, err := g.Node(s)
	if err != nil {
		return err
	}
	tNode, err := g.Node(t)
	if err != nil {
		return err
	}
	if err := writeLines(w,
		"# vtk DataFile Version 2.0",
		fmt.Sprintf("shortest path from %d to %d", sNode.Anchor.Vertex, tNode.Anchor.Vertex),
		"ASCII",
		"DATASET UNSTRUCTURED_GRID",
	); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "POINTS %d double\n", nn); err != nil {
		return fmt.Errorf("%w: %v", ErrIoWrite, err)
	}
	for id := 0; id < nn; id++ {
		n, err := g.Node(id)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%g %g %g \n", n.Point.X, n.Point.Y, n.Point.Z); err != nil {
			return fmt.Errorf("%w: %v", ErrIoWrite, err)
		}
	}

	if _, err := fmt.Fprintf(w, "CELLS %d %d\n", hops, 3*hops); err != nil {
		return fmt.Errorf("%w: %v", ErrIoWrite, err)
	}
	for r := t; r != s; {
		pred := solved.Pred[r]
		if _, err := fmt.Fprintf(w, "2 %d %d\n", r, pred); err != nil {
			return fmt.Errorf("%w: %v", ErrIoWrite, err)
		}
		r = pred
	}

	if _, err := fmt.Fprintf(w, "CELL_TYPES %d\n", hops); err != nil {
		return fmt.Errorf("%w: %v", ErrIoWrite, err)
	}
	for i := 0; i < hops; i++ {
		if _, err := io.WriteString(w, "3\n"); err != nil {
			return fmt.Errorf("%w: %v", ErrIoWrite, err)
		}
	}

	if err := writeLines(w,
		fmt.Sprintf("POINT_DATA %d", nn),
		"SCALARS distance double 1",
		"LOOKUP_TABLE default",
	); err != nil {
		return err
	}
	for id := 0; id < nn; id++ {
		if err := writeDistance(w, solved.Dist[id]); err != nil {
			return err
		}
	}
	return nil
}

// WriteShortestPathFromToFile opens path (truncating it) and calls WriteShortestPathFromTo.
func WriteShortestPathFromToFile(filePath string, g *wspgraph.Graph, s, t int, solved *solver.Result) error {
	f, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIoOpen, filePath, err)
	}
	defer f.Close()
	return WriteShortestPathFromTo(f, g, s, t, solved)
}

// WriteShortestPathCells writes, as tetrahedra (cell type 10), every mesh
// cell path.Cells names, with each cell's weight as CELL_DATA.
func WriteShortestPathCells(w io.Writer, m *mesh.Mesh, path *result.Path) error {
	nv := m.NumVertices()
	nc := len(path.Cells)

	if err := writeLines(w,
		"# vtk DataFile Version 2.0",
		fmt.Sprintf("cells along shortest path from %d to %d", path.Source, path.Target),
		"ASCII",
		"DATASET UNSTRUCTURED_GRID",
	); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "POINTS %d double\n", nv); err != nil {
		return fmt.Errorf("%w: %v", ErrIoWrite, err)
	}
	for vh := 0; vh < nv; vh++ {
		p, err := m.VertexPoint(mesh.VertexHandle(vh))
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%g %g %g \n", p.X, p.Y, p.Z); err != nil {
			return fmt.Errorf("%w: %v", ErrIoWrite, err)
		}
	}

	if _, err := fmt.Fprintf(w, "CELLS %d %d\n", nc, 5*nc); err != nil {
		return fmt.Errorf("%w: %v", ErrIoWrite, err)
	}
	for _, ch := range path.Cells {
		cell, err := m.Cell(mesh.CellHandle(ch))
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "4 %d %d %d %d \n", cell.Vertices[0], cell.Vertices[1], cell.Vertices[2], cell.Vertices[3]); err != nil {
			return fmt.Errorf("%w: %v", ErrIoWrite, err)
		}
	}

	if _, err := fmt.Fprintf(w, "CELL_TYPES %d\n", nc); err != nil {
		return fmt.Errorf("%w: %v", ErrIoWrite, err)
	}
	for i := 0; i < nc; i++ {
		if _, err := io.WriteString(w, "10\n"); err != nil {
			return fmt.Errorf("%w: %v", ErrIoWrite, err)
		}
	}

	if err := writeLines(w,
		fmt.Sprintf("CELL_DATA %d", nc),
		"SCALARS cellweight double 1",
		"LOOKUP_TABLE default",
	); err != nil {
		return err
	}
	for _, ch := range path.Cells {
		weight, err := m.CellWeight(mesh.CellHandle(ch))
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%g\n", weight); err != nil {
			return fmt.Errorf("%w: %v", ErrIoWrite, err)
		}
	}
	return nil
}

// WriteShortestPathCellsFile opens path (truncating it) and calls WriteShortestPathCells.
func WriteShortestPathCellsFile(filePath string, m *mesh.Mesh, path *result.Path) error {
	f, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIoOpen, filePath, err)
	}
	defer f.Close()
	return WriteShortestPathCells(f, m, path)
}

func pathHops(solved *solver.Result, s, t int) int {
	h := 0
	for r := t; r != s; {
		r = solved.Pred[r]
		h++
	}
	return h
}

// writeDistance writes d, substituting the literal "-0" for +Inf: ParaView
// cannot parse an IEEE infinity token, but -0 is visually distinguishable
// from a genuine zero distance.
func writeDistance(w io.Writer, d float64) error {
	if math.IsInf(d, 1) {
		_, err := io.WriteString(w, "-0\n")
		if err != nil {
			return fmt.Errorf("%w: %v", ErrIoWrite, err)
		}
		return nil
	}
	if _, err := fmt.Fprintf(w, "%g\n", d); err != nil {
		return fmt.Errorf("%w: %v", ErrIoWrite, err)
	}
	return nil
}
