// Package harness wires mesh, steiner, solver and result together into the
// two query modes the CLI (package cmd/wsp3d) exposes: a single (s,t)
// query, and a random batch of k queries over the mesh's own vertices with
// an approximation-ratio histogram, matching the original's two
// "num_random_s_t_vertices > 0" code paths.
package harness
