package obj

// Mesh is the flat result of parsing an OBJ stream.
// Vertex attributes are stored as float triples and faces as one vertex count per face
// plus one (position, texcoord, normal) index triple per face-vertex.
//
// Parsing only ever appends to a Mesh. Triangulate replaces FaceVertexCounts and FaceIndices
// and leaves the attribute buffers untouched.
type Mesh struct {
	// Positions holds x, y, z triples from "v" lines.
	Positions Buffer[float32]

	// TexCoords holds u, v, w triples from "vt" lines.
	TexCoords Buffer[float32]

	// Normals holds x, y, z triples from "vn" lines.
	Normals Buffer[float32]

	// FaceVertexCounts holds the number of face-vertices of each face, in file order.
	FaceVertexCounts Buffer[uint32]

	// FaceIndices holds one (position, texcoord, normal) triple per face-vertex.
	// Each entry is a zero-based index into the matching attribute buffer or NoIndex.
	FaceIndices Buffer[int32]
}

// NewMesh creates an empty Mesh.
//
// Returns:
//   - *Mesh: an empty mesh ready to be parsed into
func NewMesh() *Mesh {
	return &Mesh{}
}

// PositionCount returns the number of positions (triples) in the mesh.
func (m *Mesh) PositionCount() int {
	return m.Positions.Len() / 3
}

// TexCoordCount returns the number of texture coordinates (triples) in the mesh.
func (m *Mesh) TexCoordCount() int {
	return m.TexCoords.Len() / 3
}

// NormalCount returns the number of normals (triples) in the mesh.
func (m *Mesh) NormalCount() int {
	return m.Normals.Len() / 3
}

// FaceCount returns the number of faces in the mesh.
func (m *Mesh) FaceCount() int {
	return m.FaceVertexCounts.Len()
}

// FaceVertexTotal returns the number of face-vertex triples stored in FaceIndices.
func (m *Mesh) FaceVertexTotal() int {
	return m.FaceIndices.Len() / 3
}

// Position returns the position at index i.
//
// Parameters:
//   - i: zero-based position index
//
// Returns:
//   - [3]float32: the x, y, z components
func (m *Mesh) Position(i int) [3]float32 {
	p := m.Positions.Data()[i*3 : i*3+3]
	return [3]float32{p[0], p[1], p[2]}
}

// TexCoord returns the texture coordinate at index i.
//
// Parameters:
//   - i: zero-based texture coordinate index
//
// Returns:
//   - [3]float32: the u, v, w components
func (m *Mesh) TexCoord(i int) [3]float32 {
	t := m.TexCoords.Data()[i*3 : i*3+3]
	return [3]float32{t[0], t[1], t[2]}
}

// Normal returns the normal at index i.
//
// Parameters:
//   - i: zero-based normal index
//
// Returns:
//   - [3]float32: the x, y, z components
func (m *Mesh) Normal(i int) [3]float32 {
	n := m.Normals.Data()[i*3 : i*3+3]
	return [3]float32{n[0], n[1], n[2]}
}

// FaceVertex returns the i-th face-vertex triple of FaceIndices.
//
// Parameters:
//   - i: zero-based face-vertex index across all faces
//
// Returns:
//   - FaceVertex: the resolved indices
func (m *Mesh) FaceVertex(i int) FaceVertex {
	f := m.FaceIndices.Data()[i*3 : i*3+3]
	return FaceVertex{Position: f[0], TexCoord: f[1], Normal: f[2]}
}

// Faces calls fn for each face with the face number and the face's vertices.
// The vertices slice is reused between calls. Iteration stops when fn returns false.
// Faces whose recorded count overruns FaceIndices end the iteration.
//
// Parameters:
//   - fn: callback receiving the face number and its face-vertices
func (m *Mesh) Faces(fn func(face int, vertices []FaceVertex) bool) {
	var vertices []FaceVertex
	read := 0
	total := m.FaceVertexTotal()

	for face, n := range m.FaceVertexCounts.Data() {
		if read+int(n) > total {
			return
		}

		vertices = vertices[:0]
		for k := 0; k < int(n); k++ {
			vertices = append(vertices, m.FaceVertex(read+k))
		}
		read += int(n)

		if !fn(face, vertices) {
			return
		}
	}
}
