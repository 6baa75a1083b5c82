package cuboid

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/wsp3d/wsp3d/mesh"
)

// kuhnPerms enumerates the 6 permutations of the unit-step sequence
// (ex, ey, ez) that the Kuhn (Freudenthal) triangulation walks from a unit
// cube's (0,0,0) corner to its (1,1,1) corner; each permutation names one
// of the cube's 6 tetrahedra.
var kuhnPerms = [6][3][3]int{
	{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	{{1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}},
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}},
}

// corner returns the grid index of the cube-local corner (i+dx, j+dy, k+dz)
// given the per-axis vertex counts (nx+1, ny+1, nz+1).
func corner(i, j, k, dx, dy, dz, nx, ny int) int {
	x, y, z := i+dx, j+dy, k+dz
	return x + y*(nx+1) + z*(nx+1)*(ny+1)
}

// Points returns the (nx+1)*(ny+1)*(nz+1) unit-spaced lattice points of an
// nx x ny x nz block, in row-major (x fastest, then y, then z) order.
func Points(nx, ny, nz int) []r3.Vec {
	pts := make([]r3.Vec, 0, (nx+1)*(ny+1)*(nz+1))
	for z := 0; z <= nz; z++ {
		for y := 0; y <= ny; y++ {
			for x := 0; x <= nx; x++ {
				pts = append(pts, r3.Vec{X: float64(x), Y: float64(y), Z: float64(z)})
			}
		}
	}
	return pts
}

// Cells splits every unit cube of an nx x ny x nz block into 6 tetrahedra
// via the Kuhn (Freudenthal) triangulation, returning each tet as 4 indices
// into the Points(nx, ny, nz) lattice.
func Cells(nx, ny, nz int) [][4]mesh.VertexHandle {
	cells := make([][4]mesh.VertexHandle, 0, nx*ny*nz*6)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				c000 := corner(i, j, k, 0, 0, 0, nx, ny)
				c111 := corner(i, j, k, 1, 1, 1, nx, ny)
				for _, perm := range kuhnPerms {
					a := corner(i, j, k, perm[0][0], perm[0][1], perm[0][2], nx, ny)
					ab := corner(i, j, k,
						perm[0][0]+perm[1][0], perm[0][1]+perm[1][1], perm[0][2]+perm[1][2],
						nx, ny)
					cells = append(cells, [4]mesh.VertexHandle{
						mesh.VertexHandle(c000),
						mesh.VertexHandle(a),
						mesh.VertexHandle(ab),
						mesh.VertexHandle(c111),
					})
				}
			}
		}
	}
	return cells
}

// Build assembles an nx x ny x nz cuboid directly into a *mesh.Mesh, every
// cell defaulting to weight 1.0; callers wanting random or constant
// weights apply a mesh.Option afterwards, before mesh.DeriveWeights.
func Build(nx, ny, nz int) (*mesh.Mesh, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, fmt.Errorf("%w: dimensions must be positive, got %dx%dx%d", ErrBadDimensions, nx, ny, nz)
	}
	return mesh.Build(Points(nx, ny, nz), Cells(nx, ny, nz), nil)
}

// WriteNode writes the lattice points of an nx x ny x nz block to w as a
// tetgen .node file: header "<npoints> 3 0 0", one 1-based "<idx> x y z"
// line per point, and a trailing comment line.
func WriteNode(w io.Writer, nx, ny, nz int) error {
	pts := Points(nx, ny, nz)
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d 3 0 0\n", len(pts)); err != nil {
		return fmt.Errorf("%w: %v", ErrIoWrite, err)
	}
	for i, p := range pts {
		if _, err := fmt.Fprintf(bw, "%d %g %g %g\n", i+1, p.X, p.Y, p.Z); err != nil {
			return fmt.Errorf("%w: %v", ErrIoWrite, err)
		}
	}
	if _, err := fmt.Fprintln(bw, "# node file generated by cuboid"); err != nil {
		return fmt.Errorf("%w: %v", ErrIoWrite, err)
	}
	return bw.Flush()
}

// WriteEle writes the Kuhn-triangulated cells of an nx x ny x nz block to w
// as a tetgen .ele file: header "<ntets> 4 0", one 1-based
// "<idx> v0 v1 v2 v3" line per tetrahedron, no attribute column.
func WriteEle(w io.Writer, nx, ny, nz int) error {
	cells := Cells(nx, ny, nz)
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d 4 0\n", len(cells)); err != nil {
		return fmt.Errorf("%w: %v", ErrIoWrite, err)
	}
	for i, c := range cells {
		if _, err := fmt.Fprintf(bw, "%d %d %d %d %d\n", i+1, c[0]+1, c[1]+1, c[2]+1, c[3]+1); err != nil {
			return fmt.Errorf("%w: %v", ErrIoWrite, err)
		}
	}
	return bw.Flush()
}

// WriteFiles writes nodePath and elePath for an nx x ny x nz block, creating
// or truncating each.
func WriteFiles(nodePath, elePath string, nx, ny, nz int) error {
	nf, err := os.OpenFile(nodePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIoOpen, nodePath, err)
	}
	defer nf.Close()
	if err := WriteNode(nf, nx, ny, nz); err != nil {
		return err
	}

	ef, err := os.OpenFile(elePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIoOpen, elePath, err)
	}
	defer ef.Close()
	return WriteEle(ef, nx, ny, nz)
}
