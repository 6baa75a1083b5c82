package meshio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/wsp3d/wsp3d/mesh"
)

// ReadTetgen loads a tetrahedral mesh from a tetgen .node file and its
// companion .ele file, deriving cell weights from the .ele file's
// attribute column when present (one attribute: the cell weight).
func ReadTetgen(nodePath, elePath string) (*mesh.Mesh, error) {
	points, firstIndex, err := readNodeFile(nodePath)
	if err != nil {
		return nil, err
	}
	cells, weights, err := readEleFile(elePath, firstIndex)
	if err != nil {
		return nil, err
	}
	return mesh.Build(points, cells, weights)
}

// readNodeFile parses a tetgen .node file: a header line "<npoints> 3
// <nattrs> <nmarkers>" followed by one "<idx> x y z ..." line per point.
// Lines beginning with # are comments; blank lines are skipped. Returns
// the points (in file order) and the index tetgen used for its first
// point (0 or 1), needed to normalize .ele indices the same way.
func readNodeFile(path string) ([]r3.Vec, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("meshio: opening %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	nextDataLine := func() ([]string, bool) {
		for scanner.Scan() {
			lineNo++
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			return strings.Fields(line), true
		}
		return nil, false
	}

	header, ok := nextDataLine()
	if !ok {
		return nil, 0, &ErrInputParse{File: path, Line: lineNo, Err: fmt.Errorf("empty .node file")}
	}
	npoints, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, 0, &ErrInputParse{File: path, Line: lineNo, Err: fmt.Errorf("bad point count %q: %w", header[0], err)}
	}

	points := make([]r3.Vec, npoints)
	firstIndex := 0
	for i := 0; i < npoints; i++ {
		fields, ok := nextDataLine()
		if !ok {
			return nil, 0, &ErrInputParse{File: path, Line: lineNo, Err: fmt.Errorf("expected %d points, found %d", npoints, i)}
		}
		if len(fields) < 4 {
			return nil, 0, &ErrInputParse{File: path, Line: lineNo, Err: fmt.Errorf("point line has %d fields, want >= 4", len(fields))}
		}
		idx, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, 0, &ErrInputParse{File: path, Line: lineNo, Err: fmt.Errorf("bad point index %q: %w", fields[0], err)}
		}
		if i == 0 {
			firstIndex = idx
		}
		x, errX := strconv.ParseFloat(fields[1], 64)
		y, errY := strconv.ParseFloat(fields[2], 64)
		z, errZ := strconv.ParseFloat(fields[3], 64)
		if errX != nil || errY != nil || errZ != nil {
			return nil, 0, &ErrInputParse{File: path, Line: lineNo, Err: fmt.Errorf("bad coordinates on point %d", idx)}
		}
		points[i] = r3.Vec{X: x, Y: y, Z: z}
	}

	if err := scanner.Err(); err != nil {
		return nil, 0, &ErrInputParse{File: path, Line: lineNo, Err: err}
	}
	return points, firstIndex, nil
}

// readEleFile parses a tetgen .ele file: a header line "<ntets> 4 <nattrs>"
// followed by one "<idx> v0 v1 v2 v3 [weight]" line per tetrahedron.
// firstIndex normalizes vertex references the same way readNodeFile
// determined its own point numbering started. If the header declares one
// attribute, it is read as that cell's weight; weights is nil otherwise.
func readEleFile(path string, firstIndex int) ([][4]mesh.VertexHandle, []float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("meshio: opening %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	nextDataLine := func() ([]string, bool) {
		for scanner.Scan() {
			lineNo++
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			return strings.Fields(line), true
		}
		return nil, false
	}

	header, ok := nextDataLine()
	if !ok {
		return nil, nil, &ErrInputParse{File: path, Line: lineNo, Err: fmt.Errorf("empty .ele file")}
	}
	ntets, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, nil, &ErrInputParse{File: path, Line: lineNo, Err: fmt.Errorf("bad tet count %q: %w", header[0], err)}
	}
	nattrs := 0
	if len(header) >= 3 {
		nattrs, _ = strconv.Atoi(header[2])
	}

	cells := make([][4]mesh.VertexHandle, ntets)
	var weights []float64
	if nattrs > 0 {
		weights = make([]float64, ntets)
	}

	for i := 0; i < ntets; i++ {
		fields, ok := nextDataLine()
		if !ok {
			return nil, nil, &ErrInputParse{File: path, Line: lineNo, Err: fmt.Errorf("expected %d tets, found %d", ntets, i)}
		}
		if len(fields) < 5 {
			return nil, nil, &ErrInputParse{File: path, Line: lineNo, Err: fmt.Errorf("tet line has %d fields, want >= 5", len(fields))}
		}
		var cell [4]mesh.VertexHandle
		for j := 0; j < 4; j++ {
			v, err := strconv.Atoi(fields[1+j])
			if err != nil {
				return nil, nil, &ErrInputParse{File: path, Line: lineNo, Err: fmt.Errorf("bad vertex index %q: %w", fields[1+j], err)}
			}
			cell[j] = mesh.VertexHandle(v - firstIndex)
		}
		cells[i] = cell

		if nattrs > 0 {
			if len(fields) < 6 {
				return nil, nil, &ErrInputParse{File: path, Line: lineNo, Err: fmt.Errorf("tet line declares an attribute but has no value")}
			}
			w, err := strconv.ParseFloat(fields[5], 64)
			if err != nil {
				return nil, nil, &ErrInputParse{File: path, Line: lineNo, Err: fmt.Errorf("bad weight attribute %q: %w", fields[5], err)}
			}
			weights[i] = w
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, &ErrInputParse{File: path, Line: lineNo, Err: err}
	}
	return cells, weights, nil
}
