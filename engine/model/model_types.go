package model

import (
	"github.com/Carmen-Shannon/oxy-obj/engine/obj"
)

// ImportedModel represents a 3D model loaded from an external format.
// This is the universal format that loader backends produce.
type ImportedModel struct {
	// Name is the model identifier.
	Name string

	// Meshes contains all render-ready mesh data.
	Meshes []ImportedMesh

	// Source is the parsed OBJ data the meshes were built from, after any triangulation.
	Source *obj.Mesh
}

// ImportedMesh represents a single indexed triangle mesh within an imported model.
type ImportedMesh struct {
	// Name is the mesh identifier.
	Name string

	// Vertices are the de-indexed mesh vertices.
	Vertices []GPUVertex

	// Indices are the triangle indices into Vertices.
	Indices []uint32

	// BoundingMin is the minimum corner of the axis-aligned bounding box.
	BoundingMin [3]float32

	// BoundingMax is the maximum corner of the axis-aligned bounding box.
	BoundingMax [3]float32
}

// TriangleCount returns the number of triangles described by Indices.
func (m *ImportedMesh) TriangleCount() int {
	return len(m.Indices) / 3
}
