// Package vtkio writes VTK legacy ASCII files (DATASET UNSTRUCTURED_GRID)
// for the five artifact kinds the CLI can dump: the input mesh, the
// Steiner graph, a shortest-path tree rooted at one source, a single
// source-to-target path, and the mesh cells a path traverses.
//
// Every Write* function takes an io.Writer; Write*File wrappers open the
// named file with os.O_TRUNC and close it via defer, matching the
// original's std::ofstream(filename, std::ios::trunc) pairing of an
// ostream-based writer with a filename-based convenience wrapper.
//
// Cell type 10 (VTK_TETRA) is used for mesh/cell output, type 3
// (VTK_LINE) for graph/path edges. An unreachable node's distance is
// written as the literal "-0" rather than an IEEE infinity, since
// ParaView cannot parse "inf" — matching the original exactly.
package vtkio
