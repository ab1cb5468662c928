// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

//go:generate core generate

// See: https://www.khronos.org/opengl/wiki/Vertex_Specification

// ScalarTypes are the component scalar types that vertex attribute
// data can be stored as in a vertex buffer.
type ScalarTypes int32 //enums:enum -transform lower

const (
	UnsignedByte ScalarTypes = iota
	Byte
	Int
	Float
)

// Bytes returns the size in bytes of one component of this type.
func (st ScalarTypes) Bytes() int {
	switch st {
	case UnsignedByte, Byte:
		return 1
	}
	return 4
}

// VertexFormats is the closed list of element formats a vertex
// attribute can have within a vertex record: 1 to 4 components
// of unsigned byte, signed byte, int32 or float32.
type VertexFormats int32 //enums:enum -trim-prefix Vertex

const (
	VertexByte VertexFormats = iota
	VertexByte2
	VertexByte3
	VertexByte4
	VertexSByte
	VertexSByte2
	VertexSByte3
	VertexSByte4
	VertexInt
	VertexInt2
	VertexInt3
	VertexInt4
	VertexFloat
	VertexFloat2
	VertexFloat3
	VertexFloat4
)

// Components returns the number of components (1-4) in the format.
func (vf VertexFormats) Components() int {
	return int(vf%4) + 1
}

// ScalarType returns the type of each component of the format.
func (vf VertexFormats) ScalarType() ScalarTypes {
	switch {
	case vf <= VertexByte4:
		return UnsignedByte
	case vf <= VertexSByte4:
		return Byte
	case vf <= VertexInt4:
		return Int
	}
	return Float
}

// Normalized returns true if integer components are mapped to
// the [0,1] (or [-1,1]) range when read by the shader, which is
// the case for all of the byte formats.
func (vf VertexFormats) Normalized() bool {
	return vf <= VertexSByte4
}

// Bytes returns the total number of bytes of one element of the format.
func (vf VertexFormats) Bytes() int {
	return vf.Components() * vf.ScalarType().Bytes()
}

// UniformTypes is the closed list of uniform variable types:
// int or float scalars and vectors of width 1-4, plus
// 2x2, 3x3 and 4x4 float matricies.
// The string values are the GLSL type names.
type UniformTypes int32 //enums:enum -line-comment

const (
	UniformInt     UniformTypes = iota // int
	UniformInt2                        // ivec2
	UniformInt3                        // ivec3
	UniformInt4                        // ivec4
	UniformFloat                       // float
	UniformFloat2                      // vec2
	UniformFloat3                      // vec3
	UniformFloat4                      // vec4
	UniformFloat2x2                    // mat2
	UniformFloat3x3                    // mat3
	UniformFloat4x4                    // mat4
)

// IsInt returns true for the int scalar and vector types.
func (ut UniformTypes) IsInt() bool {
	return ut <= UniformInt4
}

// IsMatrix returns true for the matrix types.
func (ut UniformTypes) IsMatrix() bool {
	return ut >= UniformFloat2x2
}

// MatrixDim returns the square dimension of a matrix type, 0 otherwise.
func (ut UniformTypes) MatrixDim() int {
	switch ut {
	case UniformFloat2x2:
		return 2
	case UniformFloat3x3:
		return 3
	case UniformFloat4x4:
		return 4
	}
	return 0
}

// Components returns the total number of scalar components,
// e.g., 3 for vec3 and 16 for mat4.
func (ut UniformTypes) Components() int {
	if d := ut.MatrixDim(); d > 0 {
		return d * d
	}
	return int(ut%4) + 1
}

// Bytes returns the number of tightly-packed bytes for one element.
// All components are 4 bytes.
func (ut UniformTypes) Bytes() int {
	return 4 * ut.Components()
}

// IndexTypes are the two supported index widths for index buffers.
type IndexTypes int32 //enums:enum -transform lower

const (
	Uint16 IndexTypes = iota
	Uint32
)

// Bytes returns the number of bytes per index.
func (it IndexTypes) Bytes() int {
	if it == Uint16 {
		return 2
	}
	return 4
}

// ShaderTypes are the shader stages a Program is linked from.
type ShaderTypes int32 //enums:enum -line-comment

const (
	VertexShader   ShaderTypes = iota // vertex
	FragmentShader                    // fragment
)

// BufferTargets are the binding points a buffer can be bound to.
type BufferTargets int32 //enums:enum -line-comment

const (
	// ArrayBuffer holds vertex data.
	ArrayBuffer BufferTargets = iota // array

	// ElementArrayBuffer holds index data.
	ElementArrayBuffer // element
)
