// Package result implements the ResultExtractor: turning a solver.Result
// into a usable answer for one (source, target) query — the node sequence,
// hop count, approximation ratio against the straight-line distance, and
// the set of mesh cells the path actually passes through.
//
// Cell recovery mirrors the original's cells_from_graph_nodes: every node
// on the path contributes cells depending on what it is anchored to — a
// vertex node contributes its whole cell star, an edge node the cells
// around that edge, a face node the ≤2 cells on either side.
package result
