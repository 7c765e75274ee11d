package obj

// ParseLine parses a single OBJ line (without its line terminator) into m.
// Only "v ", "vt ", "vn " and "f " lines are interpreted; every other line is ignored.
// Parsing is permissive: malformed numbers read as 0 and short faces are recorded as-is,
// leaving rejection to Check and Validate.
//
// Relative (negative) face indices resolve against the element counts already in m.
//
// Parameters:
//   - m: the mesh to append to
//   - line: the line contents
func ParseLine(m *Mesh, line []byte) {
	if len(line) < 2 {
		return
	}

	switch line[0] {
	case 'v':
		switch {
		case line[1] == ' ':
			appendTriple(&m.Positions, line, 2)
		case len(line) > 2 && line[2] == ' ' && line[1] == 't':
			appendTriple(&m.TexCoords, line, 3)
		case len(line) > 2 && line[2] == ' ' && line[1] == 'n':
			appendTriple(&m.Normals, line, 3)
		}
	case 'f':
		if line[1] == ' ' {
			parseFaceLine(m, line, 2)
		}
	}
}

// appendTriple reads three floats from line[i:] and appends them to dst.
func appendTriple(dst *Buffer[float32], line []byte, i int) {
	x, i := parseFloat(line, i)
	y, i := parseFloat(line, i)
	z, _ := parseFloat(line, i)
	dst.Append3(x, y, z)
}

// parseFaceLine reads face-vertex tokens from line[i:] until one has no position index,
// then records the face's vertex count.
func parseFaceLine(m *Mesh, line []byte, i int) {
	positions := m.PositionCount()
	texcoords := m.TexCoordCount()
	normals := m.NormalCount()

	var count uint32
	for i < len(line) {
		var vi, vti, vni int32
		i, vi, vti, vni = parseFaceVertex(line, i)
		if vi == 0 {
			break
		}

		m.FaceIndices.Append3(
			fixupIndex(vi, positions),
			fixupIndex(vti, texcoords),
			fixupIndex(vni, normals),
		)
		count++
	}

	m.FaceVertexCounts.Append(count)
}
