// Package wspgraph implements the Steiner graph: a small, integer-indexed
// undirected weighted multigraph built over a mesh (package mesh), with one
// node per Steiner point and one edge per connection the placement strategy
// (package steiner) decided to add.
//
// Nodes and edges are addressed by small integers, mirroring mesh's handle
// style, rather than by the string-keyed adjacency list core.Graph uses:
// a Steiner graph can carry tens of thousands of nodes, and the solver
// (package solver) indexes distance/predecessor arrays directly by node id.
package wspgraph
