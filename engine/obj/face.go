package obj

// NoIndex marks a face-vertex attribute that the face does not reference.
const NoIndex int32 = -1

// FaceVertex is one resolved vertex reference of a face.
// Each field is a zero-based index into the matching Mesh buffer (counted in triples), or NoIndex.
type FaceVertex struct {
	// Position indexes Mesh.Positions.
	Position int32

	// TexCoord indexes Mesh.TexCoords, or NoIndex when the token omitted it.
	TexCoord int32

	// Normal indexes Mesh.Normals, or NoIndex when the token omitted it.
	Normal int32
}

// HasTexCoord reports whether the face-vertex references a texture coordinate.
func (fv FaceVertex) HasTexCoord() bool {
	return fv.TexCoord != NoIndex
}

// HasNormal reports whether the face-vertex references a normal.
func (fv FaceVertex) HasNormal() bool {
	return fv.Normal != NoIndex
}

// parseFaceVertex reads one vi[/vti][/vni] token starting at line[i].
// Omitted components are returned as 0, which OBJ never uses as a real index.
//
// Parameters:
//   - line: the face line being lexed
//   - i: the cursor offset into line
//
// Returns:
//   - int: the offset of the first byte after the token
//   - int32: the raw position index
//   - int32: the raw texture coordinate index, 0 when absent
//   - int32: the raw normal index, 0 when absent
func parseFaceVertex(line []byte, i int) (next int, vi, vti, vni int32) {
	i = skipBlanks(line, i)

	vi, i = parseInt(line, i)

	if i >= len(line) || line[i] != '/' {
		return i, vi, 0, 0
	}
	i++

	// vi//vni
	if i >= len(line) || line[i] != '/' {
		vti, i = parseInt(line, i)
	}

	if i >= len(line) || line[i] != '/' {
		return i, vi, vti, 0
	}
	i++

	vni, i = parseInt(line, i)
	return i, vi, vti, vni
}

// fixupIndex converts a raw OBJ index into a zero-based one.
// Positive indices are 1-based, negative indices count back from count, and 0 maps to NoIndex.
//
// Parameters:
//   - index: the raw index read from the file
//   - count: the number of elements of that kind parsed so far
//
// Returns:
//   - int32: the resolved zero-based index or NoIndex
func fixupIndex(index int32, count int) int32 {
	switch {
	case index > 0:
		return index - 1
	case index < 0:
		return int32(count) + index
	default:
		return NoIndex
	}
}
