// Package common contains small helpers shared across the engine packages. They are plain functions over
// slices and fixed-size arrays, not interface-wrapped types.
package common

import (
	"math"
	"unsafe"
)

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// CalculateBoundingBox computes the axis-aligned bounding box of a flat x, y, z triple buffer.
// A trailing partial triple is ignored. An empty buffer yields two zero corners.
//
// Parameters:
//   - positions: flat position triples
//
// Returns:
//   - [3]float32: the minimum corner
//   - [3]float32: the maximum corner
func CalculateBoundingBox(positions []float32) ([3]float32, [3]float32) {
	if len(positions) < 3 {
		return [3]float32{}, [3]float32{}
	}

	bmin := [3]float32{
		float32(math.MaxFloat32),
		float32(math.MaxFloat32),
		float32(math.MaxFloat32),
	}
	bmax := [3]float32{
		-float32(math.MaxFloat32),
		-float32(math.MaxFloat32),
		-float32(math.MaxFloat32),
	}

	for i := 0; i+2 < len(positions); i += 3 {
		for j := 0; j < 3; j++ {
			if positions[i+j] < bmin[j] {
				bmin[j] = positions[i+j]
			}
			if positions[i+j] > bmax[j] {
				bmax[j] = positions[i+j]
			}
		}
	}

	return bmin, bmax
}
