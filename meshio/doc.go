// Package meshio reads tetgen-format mesh files (.node / .ele) into a
// mesh.Mesh. Tetgen numbers its first vertex either 0 or 1 depending on
// how it was invoked; ReadTetgen detects which by inspecting the first
// data line of the .node file and normalizes every index to 0-based before
// calling mesh.Build.
package meshio
