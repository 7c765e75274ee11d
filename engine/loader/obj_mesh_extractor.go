package loader

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-obj/common"
	"github.com/Carmen-Shannon/oxy-obj/engine/model"
	"github.com/Carmen-Shannon/oxy-obj/engine/obj"

	"github.com/go-gl/mathgl/mgl32"
)

// objMeshExtractorImpl is the implementation of the objMeshExtractor interface.
type objMeshExtractorImpl struct{}

// objMeshExtractor defines the interface for turning a parsed, triangulated OBJ mesh into an
// engine-ready ImportedMesh.
type objMeshExtractor interface {
	// Extract de-indexes the mesh's face-vertex triples into GPU vertices.
	// Identical (position, texcoord, normal) triples share one output vertex. Face-vertices
	// without a normal receive a smooth normal generated from the triangles around their position.
	// The mesh must be triangulated and valid.
	//
	// Parameters:
	//   - name: the name to give the extracted mesh
	//   - mesh: the parsed OBJ mesh
	//
	// Returns:
	//   - *model.ImportedMesh: the extracted mesh
	//   - error: error if the mesh is not a valid triangle mesh
	Extract(name string, mesh *obj.Mesh) (*model.ImportedMesh, error)
}

var _ objMeshExtractor = &objMeshExtractorImpl{}

// newOBJMeshExtractor creates a new mesh extractor.
//
// Returns:
//   - objMeshExtractor: the mesh extractor
func newOBJMeshExtractor() objMeshExtractor {
	return &objMeshExtractorImpl{}
}

// objVertexKey identifies a unique face-vertex attribute combination.
type objVertexKey struct {
	position, texCoord, normal int32
}

func (e *objMeshExtractorImpl) Extract(name string, mesh *obj.Mesh) (*model.ImportedMesh, error) {
	if mesh == nil {
		return nil, fmt.Errorf("no mesh to extract")
	}
	if err := obj.Check(mesh); err != nil {
		return nil, fmt.Errorf("invalid mesh: %w", err)
	}
	for face, n := range mesh.FaceVertexCounts.Data() {
		if n != 3 {
			return nil, fmt.Errorf("face %d has %d vertices, mesh must be triangulated", face, n)
		}
	}

	total := mesh.FaceVertexTotal()
	lookup := make(map[objVertexKey]uint32, total)
	vertices := make([]model.GPUVertex, 0, total)
	indices := make([]uint32, 0, total)

	// positionOf maps output vertices back to source positions for normal generation.
	positionOf := make([]int32, 0, total)
	needsNormal := make([]bool, 0, total)
	missingNormals := false

	for i := range total {
		fv := mesh.FaceVertex(i)
		key := objVertexKey{fv.Position, fv.TexCoord, fv.Normal}
		if idx, ok := lookup[key]; ok {
			indices = append(indices, idx)
			continue
		}

		v := model.GPUVertex{Position: mesh.Position(int(fv.Position))}
		if fv.HasTexCoord() {
			tc := mesh.TexCoord(int(fv.TexCoord))
			v.TexCoord = [2]float32{tc[0], tc[1]}
		}
		if fv.HasNormal() {
			v.Normal = mesh.Normal(int(fv.Normal))
		} else {
			missingNormals = true
		}

		idx := uint32(len(vertices))
		lookup[key] = idx
		vertices = append(vertices, v)
		indices = append(indices, idx)
		positionOf = append(positionOf, fv.Position)
		needsNormal = append(needsNormal, !fv.HasNormal())
	}

	if missingNormals {
		generateNormals(vertices, indices, positionOf, needsNormal, mesh.PositionCount())
	}

	bmin, bmax := vertexBounds(vertices)

	return &model.ImportedMesh{
		Name:        common.Coalesce(name, "obj_mesh"),
		Vertices:    vertices,
		Indices:     indices,
		BoundingMin: bmin,
		BoundingMax: bmax,
	}, nil
}

// generateNormals fills in smooth normals for vertices flagged in needsNormal.
// Area-weighted triangle normals are accumulated per source position, so vertices split by
// differing texture coordinates still share one normal.
//
// Parameters:
//   - vertices: the output vertices to update
//   - indices: the triangle indices into vertices
//   - positionOf: the source position index of each vertex
//   - needsNormal: which vertices lack a normal from the file
//   - positionCount: the number of source positions
func generateNormals(vertices []model.GPUVertex, indices []uint32, positionOf []int32, needsNormal []bool, positionCount int) {
	accum := make([]mgl32.Vec3, positionCount)

	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]

		p0 := mgl32.Vec3(vertices[i0].Position)
		p1 := mgl32.Vec3(vertices[i1].Position)
		p2 := mgl32.Vec3(vertices[i2].Position)

		// Cross product: face normal (length proportional to triangle area)
		faceNormal := p1.Sub(p0).Cross(p2.Sub(p0))

		for _, idx := range [3]uint32{i0, i1, i2} {
			p := positionOf[idx]
			accum[p] = accum[p].Add(faceNormal)
		}
	}

	for i := range vertices {
		if !needsNormal[i] {
			continue
		}
		n := accum[positionOf[i]]
		if n.Len() < 1e-6 {
			// Degenerate: default to up vector
			vertices[i].Normal = [3]float32{0, 1, 0}
			continue
		}
		vertices[i].Normal = n.Normalize()
	}
}

// vertexBounds computes the axis-aligned bounding box of the extracted vertices, so positions
// that no face references do not widen it. No vertices yields two zero corners.
func vertexBounds(vertices []model.GPUVertex) ([3]float32, [3]float32) {
	if len(vertices) == 0 {
		return [3]float32{}, [3]float32{}
	}

	bmin, bmax := vertices[0].Position, vertices[0].Position
	for _, v := range vertices[1:] {
		for j := range 3 {
			bmin[j] = min(bmin[j], v.Position[j])
			bmax[j] = max(bmax[j], v.Position[j])
		}
	}
	return bmin, bmax
}
