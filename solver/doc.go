// Package solver computes single-source shortest paths over a wspgraph.Graph
// using Dijkstra's algorithm: process vertices in order of increasing
// distance via a min-heap, relaxing outgoing edges as each is finalized.
//
// Complexity:
//   - Time:  O((V + E) log V), one heap extraction per node and up to one
//     heap push per edge relaxation (lazy decrease-key).
//   - Space: O(V + E).
//
// The graph is assumed undirected with non-negative weights, matching
// wspgraph.Graph's own invariants; Run re-validates this defensively.
package solver
