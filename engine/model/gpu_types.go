package model

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// GPUVertex is the GPU-aligned representation of a single mesh vertex.
// Matches the layout returned by GPUVertexLayout.
// Size: 32 bytes (no padding required).
type GPUVertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Normal   [3]float32 // offset 12: vertex normal for lighting (12 bytes)
	TexCoord [2]float32 // offset 24: UV texture coordinate (8 bytes)
}

// gpuVertexSize is the size of a marshaled GPUVertex in bytes.
const gpuVertexSize = 32

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
// The byte layout is the one described by GPUVertexLayout.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	return g.appendTo(make([]byte, 0, gpuVertexSize))
}

// appendTo appends the little-endian encoding of g to buf.
func (g *GPUVertex) appendTo(buf []byte) []byte {
	for _, f := range g.Position {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	for _, f := range g.Normal {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	for _, f := range g.TexCoord {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	return buf
}

// MarshalVertices serializes vertices back to back into one vertex buffer.
//
// Parameters:
//   - vertices: the vertices to serialize
//
// Returns:
//   - []byte: len(vertices)*32 bytes following GPUVertexLayout, or nil if vertices is empty
func MarshalVertices(vertices []GPUVertex) []byte {
	if len(vertices) == 0 {
		return nil
	}
	buf := make([]byte, 0, len(vertices)*gpuVertexSize)
	for i := range vertices {
		buf = vertices[i].appendTo(buf)
	}
	return buf
}

// GPUVertexLayout describes GPUVertex as a WebGPU vertex buffer layout.
// Shader locations are 0 (position), 1 (normal) and 2 (texcoord).
//
// Returns:
//   - wgpu.VertexBufferLayout: the per-vertex buffer layout
func GPUVertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: gpuVertexSize,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2},
		},
	}
}

// DescribeLayout formats a vertex buffer layout as its stride followed by one
// location:format@offset entry per attribute, e.g. "stride=32 0:float32x3@0 ...".
//
// Parameters:
//   - layout: the layout to describe
//
// Returns:
//   - string: the one-line description
func DescribeLayout(layout wgpu.VertexBufferLayout) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "stride=%d", layout.ArrayStride)
	for _, attr := range layout.Attributes {
		fmt.Fprintf(&sb, " %d:%s@%d", attr.ShaderLocation, attr.Format, attr.Offset)
	}
	return sb.String()
}

// ComputeBoundingRadius calculates the bounding sphere radius from a slice of
// GPUVertex positions. The radius is the maximum distance from the origin
// across all vertices in the slice.
//
// Parameters:
//   - vertices: the vertex data to compute the bounding radius from
//
// Returns:
//   - float32: the maximum distance from the origin
func ComputeBoundingRadius(vertices []GPUVertex) float32 {
	var maxDistSq float32
	for _, v := range vertices {
		p := v.Position
		distSq := p[0]*p[0] + p[1]*p[1] + p[2]*p[2]
		if distSq > maxDistSq {
			maxDistSq = distSq
		}
	}
	return float32(math.Sqrt(float64(maxDistSq)))
}
