package vtkio

import (
	"fmt"
	"io"
	"os"

	"github.com/wsp3d/wsp3d/mesh"
)

// WriteMesh writes every vertex, cell and cell_weight of m to w as a VTK
// legacy ASCII UNSTRUCTURED_GRID of tetrahedra (cell type 10).
func WriteMesh(w io.Writer, m *mesh.Mesh) error {
	nv := m.NumVertices()
	nc := m.NumCells()

	if err := writeLines(w,
		"# vtk DataFile Version 2.0",
		"tetrahedralization",
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
	for ch := 0; ch < nc; ch++ {
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
	for ch := 0; ch < nc; ch++ {
		if _, err := io.WriteString(w, "10\n"); err != nil {
			return fmt.Errorf("%w: %v", ErrIoWrite, err)
		}
	}

	if err := writeLines(w,
		fmt.Sprintf("CELL_DATA %d", nc),
		"SCALARS weight double 1",
		"LOOKUP_TABLE default",
	); err != nil {
		return err
	}
	for ch := 0; ch < nc; ch++ {
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

// WriteMeshFile opens path (truncating it) and calls WriteMesh.
func WriteMeshFile(path string, m *mesh.Mesh) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIoOpen, path, err)
	}
	defer f.Close()
	return WriteMesh(f, m)
}

func writeLines(w io.Writer, lines ...string) error {
	for _, l := range lines {
		if _, err := io.WriteString(w, l+"\n"); err != nil {
			return fmt.Errorf("%w: %v", ErrIoWrite, err)
		}
	}
	return nil
}
