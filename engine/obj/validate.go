package obj

import (
	"errors"
	"fmt"
)

// Errors returned by Check and Triangulate
var (
	ErrFaceTooSmall       = errors.New("face has fewer than 3 vertices")
	ErrIndexCountMismatch = errors.New("face index count does not match face vertex counts")
	ErrPositionOutOfRange = errors.New("position index out of range")
	ErrTexCoordOutOfRange = errors.New("texture coordinate index out of range")
	ErrNormalOutOfRange   = errors.New("normal index out of range")
)

// Validate reports whether every face of m has at least 3 vertices and every index references an
// existing element. It never modifies m.
//
// Parameters:
//   - m: the mesh to check
//
// Returns:
//   - bool: true if the mesh is valid
func Validate(m *Mesh) bool {
	return Check(m) == nil
}

// Check validates m like Validate and describes the first problem found.
// The returned error wraps one of ErrFaceTooSmall, ErrIndexCountMismatch, ErrPositionOutOfRange,
// ErrTexCoordOutOfRange or ErrNormalOutOfRange.
// Texture coordinate and normal indices must be NoIndex or within range. A relative index that
// resolved below the first element is rejected rather than passed through, which is stricter than
// checking only the upper bound.
//
// Parameters:
//   - m: the mesh to check
//
// Returns:
//   - error: nil if the mesh is valid
func Check(m *Mesh) error {
	total := 0
	for face, n := range m.FaceVertexCounts.Data() {
		if n < 3 {
			return fmt.Errorf("face %d has %d vertices: %w", face, n, ErrFaceTooSmall)
		}
		total += int(n)
	}

	if total*3 != m.FaceIndices.Len() {
		return fmt.Errorf("%d face-vertices but %d indices: %w", total, m.FaceIndices.Len(), ErrIndexCountMismatch)
	}

	positions := int32(m.PositionCount())
	texcoords := int32(m.TexCoordCount())
	normals := int32(m.NormalCount())

	indices := m.FaceIndices.Data()
	for i := 0; i < len(indices); i += 3 {
		vi, vti, vni := indices[i], indices[i+1], indices[i+2]

		if vi < 0 || vi >= positions {
			return fmt.Errorf("face-vertex %d references position %d of %d: %w", i/3, vi, positions, ErrPositionOutOfRange)
		}
		if vti < NoIndex || vti >= texcoords {
			return fmt.Errorf("face-vertex %d references texture coordinate %d of %d: %w", i/3, vti, texcoords, ErrTexCoordOutOfRange)
		}
		if vni < NoIndex || vni >= normals {
			return fmt.Errorf("face-vertex %d references normal %d of %d: %w", i/3, vni, normals, ErrNormalOutOfRange)
		}
	}

	return nil
}
