// Package steiner implements the SteinerPlacer: it turns a mesh.Mesh into a
// wspgraph.Graph whose nodes approximate every point from which a shortest
// path could plausibly depart or arrive, and whose edges approximate
// straight-line travel through each cell's interior.
//
// Three placement strategies share one Scheme interface, selected by
// Config.Mode:
//
//   - ModeBarycentric adds one node at each face's centroid, in addition to
//     the mesh's own vertices.
//   - ModeSurfaceOnly is the same, restricted to boundary faces — the
//     graph is smaller, trading accuracy on fully interior queries for
//     faster construction.
//   - ModeSpannerInterval (the primary, most accurate strategy) additionally
//     subdivides long edges into uniformly spaced interior nodes and offsets
//     each face's centroid node toward one of its vertices by a geometric
//     ratio derived from Config.Stretch, so that no straight segment across
//     a cell is forced to detour further than the configured stretch factor
//     from the true geodesic.
//
// Every strategy follows the same two-phase shape: register one node per
// qualifying mesh feature (deduplicating coincident points within
// Config.DedupTolerance), then, for every cell, connect every pair of
// nodes anchored to that cell with an edge weighted by cell_weight times
// Euclidean distance. Zero-length edges are skipped; a repeated (u,v) pair
// across cells is collapsed to its cheapest weight by wspgraph.Graph.AddEdge
// itself.
package steiner
