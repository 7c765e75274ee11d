package obj

import "fmt"

// Triangulate rewrites every face of m as a fan of triangles around the face's first vertex.
// A face with n vertices becomes n-2 triangles (v0, v[i+1], v[i+2]); vertex order is preserved and
// geometry is not inspected, so concave or non-planar faces may triangulate poorly.
// Attribute buffers are left untouched. Triangulating an all-triangle mesh changes nothing.
//
// Faces with fewer than 3 vertices violate the precondition: Triangulate then returns an error
// wrapping ErrFaceTooSmall and leaves m unmodified. Run Check first to catch every other problem.
//
// Parameters:
//   - m: the mesh to triangulate in place
//
// Returns:
//   - error: error if a face has fewer than 3 vertices or the face data is inconsistent
func Triangulate(m *Mesh) error {
	triangles := 0
	vertices := 0
	for face, n := range m.FaceVertexCounts.Data() {
		if n < 3 {
			return fmt.Errorf("face %d has %d vertices: %w", face, n, ErrFaceTooSmall)
		}
		triangles += int(n) - 2
		vertices += int(n)
	}

	src := m.FaceIndices.Data()
	if vertices*3 != len(src) {
		return fmt.Errorf("%d face-vertices but %d indices: %w", vertices, len(src), ErrIndexCountMismatch)
	}

	dst := make([]int32, 0, triangles*9)
	read := 0
	for _, n := range m.FaceVertexCounts.Data() {
		first := src[read : read+3]
		for i := 0; i+2 < int(n); i++ {
			dst = append(dst, first...)
			dst = append(dst, src[read+(i+1)*3:read+(i+3)*3]...)
		}
		read += int(n) * 3
	}

	counts := make([]uint32, triangles)
	for i := range counts {
		counts[i] = 3
	}

	m.FaceIndices.replace(dst)
	m.FaceVertexCounts.replace(counts)
	return nil
}
