// Package mesh implements the weighted tetrahedral mesh data model: an
// arena-indexed store of vertices, edges, faces and cells with bottom-up
// incidences, plus the weight-propagation rules that derive face and edge
// weights from per-cell weights.
//
// Mesh entities are addressed by small integer handles (VertexHandle,
// EdgeHandle, FaceHandle, CellHandle), never by pointer, so that the
// Steiner graph built on top of a Mesh (see package steiner) can reference
// mesh features by index without holding an owning pointer in either
// direction — two arenas, cross-referenced by handle.
//
// A Mesh is built once via Build and is treated as immutable afterwards;
// DeriveWeights must run exactly once, in the strict order cells → faces →
// edges, before any query that depends on face_weight or edge_weight.
package mesh
