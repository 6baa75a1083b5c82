// Package cuboid generates tetgen-format test fixtures: an nx x ny x nz
// grid of unit cubes, each split into 6 tetrahedra via the Kuhn
// (Freudenthal) triangulation, so that meshio.ReadTetgen can load them
// back exactly as it would load a real tetgen mesh.
//
// This is a simplification of the original's build_cuboid, which emitted
// true hexahedral cells via OpenVolumeMesh's HexahedralMesh kernel; this
// package targets the tetrahedral mesh.Mesh model directly instead of
// requiring a separate hex-to-tet conversion step, and intentionally
// does not carry over build_cuboid's experimental, commented-out spatial
// filters ("front face only", "weight >= 4").
package cuboid
