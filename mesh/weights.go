package mesh

import (
	"fmt"
	"math"
)

// CellWeight returns the cost-per-unit-length multiplier of a cell.
func (m *Mesh) CellWeight(c CellHandle) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if int(c) < 0 || int(c) >= len(m.cellWeight) {
		return 0, fmt.Errorf("%w: %d", ErrCellHandle, c)
	}
	return m.cellWeight[c], nil
}

// FaceWeight returns the derived face weight. Returns ErrWeightsNotDerived
// if DeriveWeights has not yet run.
func (m *Mesh) FaceWeight(f FaceHandle) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.faceWeight == nil {
		return 0, ErrWeightsNotDerived
	}
	if int(f) < 0 || int(f) >= len(m.faceWeight) {
		return 0, fmt.Errorf("%w: %d", ErrFaceHandle, f)
	}
	return m.faceWeight[f], nil
}

// EdgeWeight returns the derived edge weight. Returns ErrWeightsNotDerived
// if DeriveWeights has not yet run.
func (m *Mesh) EdgeWeight(e EdgeHandle) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.edgeWeight == nil {
		return 0, ErrWeightsNotDerived
	}
	if int(e) < 0 || int(e) >= len(m.edgeWeight) {
		return 0, fmt.Errorf("%w: %d", ErrEdgeHandle, e)
	}
	return m.edgeWeight[e], nil
}

// DeriveWeights implements the WeightPropagator: face_weight[f] = min of
// the (≤2) incident cell weights, with +∞ standing in for a missing
// (boundary) side; edge_weight[e] = min cell_weight over every cell
// incident to e. Must run after cell weights are final (construction, or
// an override such as WithRandomCellWeights) and before any face/edge
// weight query. Faces are derived before edges, matching spec §3's
// required write order (cells → faces → edges).
func DeriveWeights(m *Mesh) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.faceWeight = make([]float64, len(m.faces))
	for fh, face := range m.faces {
		w0, w1 := math.Inf(1), math.Inf(1)
		if face.Cells[0] != InvalidCell {
			w0 = m.cellWeight[face.Cells[0]]
		}
		if face.Cells[1] != InvalidCell {
			w1 = m.cellWeight[face.Cells[1]]
		}
		m.faceWeight[fh] = math.Min(w0, w1)
	}

	m.edgeWeight = make([]float64, len(m.edges))
	for eh, cells := range m.edgeCells {
		w := math.Inf(1)
		for _, c := range cells {
			w = math.Min(w, m.cellWeight[c])
		}
		m.edgeWeight[eh] = w
	}

	return nil
}
