// Command wsp3d (package documentation for the module root) computes
// weighted shortest paths through a tetrahedral subdivision of 3D space.
//
// A mesh of tetrahedra, each carrying a cost-per-unit-length weight, is
// approximated by a Steiner graph: a finite set of nodes placed on mesh
// vertices, edges and faces, pairwise-connected within each cell. Dijkstra
// over that graph yields a path whose length is within a configurable
// stretch factor of the true weighted geodesic.
//
// The pipeline is split across packages, one per pipeline stage:
//
//	mesh/    — the tetrahedral mesh and its derived face/edge weights
//	steiner/ — Steiner-graph construction (barycentric, surface-only, spanner/interval)
//	wspgraph/ — the integer-indexed weighted graph the Steiner placer builds
//	solver/  — Dijkstra over a wspgraph.Graph
//	result/  — path reconstruction and approximation-ratio accounting
//	harness/ — single-query and random-batch query drivers
//	meshio/  — tetgen .node/.ele input
//	vtkio/   — VTK legacy ASCII output
//	cuboid/  — synthetic hex-grid test fixtures
//	cmd/wsp3d/ — the CLI tying the above together
package wsp3d
