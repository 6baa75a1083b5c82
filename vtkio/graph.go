package vtkio

import (
	"fmt"
	"io"
	"os"

	"github.com/wsp3d/wsp3d/wspgraph"
)

// WriteSteinerGraph writes every node and edge of g to w as a VTK legacy
// ASCII UNSTRUCTURED_GRID of line segments (cell type 3), with each edge's
// stored weight (after duplicate (u,v) pairs were collapsed to their
// minimum by wspgraph.Graph.AddEdge) as CELL_DATA.
func WriteSteinerGraph(w io.Writer, g *wspgraph.Graph) error {
	nn := g.NumNodes()
	ne := g.NumEdges()

	if err := writeLines(w,
		"# vtk DataFile Version 2.0",
		"steiner graph",
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

	if _, err := fmt.Fprintf(w, "CELLS %d %d\n", ne, 3*ne); err != nil {
		return fmt.Errorf("%w: %v", ErrIoWrite, err)
	}
	for eidx := 0; eidx < ne; eidx++ {
		e, err := g.Edge(eidx)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "2 %d %d\n", e.U, e.V); err != nil {
			return fmt.Errorf("%w: %v", ErrIoWrite, err)
		}
	}

	if _, err := fmt.Fprintf(w, "CELL_TYPES %d\n", ne); err != nil {
		return fmt.Errorf("%w: %v", ErrIoWrite, err)
	}
	for i := 0; i < ne; i++ {
		if _, err := io.WriteString(w, "3\n"); err != nil {
			return fmt.Errorf("%w: %v", ErrIoWrite, err)
		}
	}

	if err := writeLines(w,
		fmt.Sprintf("CELL_DATA %d", ne),
		"SCALARS edge_weight double 1",
		"LOOKUP_TABLE default",
	); err != nil {
		return err
	}
	for eidx := 0; eidx < ne; eidx++ {
		e, err := g.Edge(eidx)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%g\n", e.Weight); err != nil {
			return fmt.Errorf("%w: %v", ErrIoWrite, err)
		}
	}
	return nil
}

// WriteSteinerGraphFile opens path (truncating it) and calls WriteSteinerGraph.
func WriteSteinerGraphFile(path string, g *wspgraph.Graph) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIoOpen, path, err)
	}
	defer f.Close()
	return WriteSteinerGraph(f, g)
}
