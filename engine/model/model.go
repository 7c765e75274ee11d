package model

import (
	"github.com/Carmen-Shannon/oxy-obj/common"
	"github.com/Carmen-Shannon/oxy-obj/engine/obj"
)

// model is the implementation of the Model interface.
type model struct {
	name                  string
	meshes                []ImportedMesh
	source                *obj.Mesh
	boundingRadius        float32
	boundingMin           [3]float32
	boundingMax           [3]float32
	vertexData, indexData []byte
	vertexCount           int
	indexCount            int
}

// Model defines the interface for a loaded 3D model.
// A Model holds the render-ready meshes of an imported file, the same geometry packed into
// single vertex and index byte buffers for upload, and the parsed source data.
// It is produced by the Loader after importing and processing a model file.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Meshes retrieves the model's meshes.
	//
	// Returns:
	//   - []ImportedMesh: the meshes
	Meshes() []ImportedMesh

	// Source retrieves the parsed OBJ data the model was built from.
	//
	// Returns:
	//   - *obj.Mesh: the parsed mesh, or nil for models built from other data
	Source() *obj.Mesh

	// VertexData retrieves all mesh vertices as one packed GPUVertex buffer laid out as
	// described by GPUVertexLayout.
	//
	// Returns:
	//   - []byte: the vertex bytes
	VertexData() []byte

	// IndexData retrieves all mesh indices as one packed uint32 buffer.
	// Indices of later meshes are offset by the vertex counts of the meshes before them.
	//
	// Returns:
	//   - []byte: the index bytes
	IndexData() []byte

	// VertexCount retrieves the number of vertices in VertexData.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int

	// IndexCount retrieves the number of indices in IndexData.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// BoundingRadius retrieves the radius of the origin-centered sphere enclosing every vertex.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32

	// Bounds retrieves the axis-aligned bounding box enclosing every mesh.
	//
	// Returns:
	//   - [3]float32: the minimum corner
	//   - [3]float32: the maximum corner
	Bounds() ([3]float32, [3]float32)
}

var _ Model = &model{}

// NewModel creates a new Model instance with the provided options applied.
//
// Parameters:
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: a new Model instance
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Meshes() []ImportedMesh {
	return m.meshes
}

func (m *model) Source() *obj.Mesh {
	return m.source
}

func (m *model) VertexData() []byte {
	return m.vertexData
}

func (m *model) IndexData() []byte {
	return m.indexData
}

func (m *model) VertexCount() int {
	return m.vertexCount
}

func (m *model) IndexCount() int {
	return m.indexCount
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}

func (m *model) Bounds() ([3]float32, [3]float32) {
	return m.boundingMin, m.boundingMax
}

// pack combines the meshes into single vertex and index buffers and computes the model bounds.
// Vertex bytes follow GPUVertexLayout.
func (m *model) pack() {
	var vertices []GPUVertex
	var indices []uint32
	indexOffset := uint32(0)

	for i, mesh := range m.meshes {
		vertices = append(vertices, mesh.Vertices...)

		// Reindex: offset each index by the running vertex count across meshes
		for _, idx := range mesh.Indices {
			indices = append(indices, idx+indexOffset)
		}
		indexOffset += uint32(len(mesh.Vertices))

		if i == 0 {
			m.boundingMin, m.boundingMax = mesh.BoundingMin, mesh.BoundingMax
			continue
		}
		for j := range 3 {
			m.boundingMin[j] = min(m.boundingMin[j], mesh.BoundingMin[j])
			m.boundingMax[j] = max(m.boundingMax[j], mesh.BoundingMax[j])
		}
	}

	m.vertexData = MarshalVertices(vertices)
	m.indexData = common.SliceToBytes(indices)
	m.vertexCount = len(vertices)
	m.indexCount = len(indices)
	m.boundingRadius = ComputeBoundingRadius(vertices)
}
