// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "fmt"

// NotFound is the location a shader variable resolves to when the
// linked program does not have a variable of that name. Slots at
// this location are skipped when drawing.
const NotFound int32 = -1

// VertexAttribute describes one per-vertex input to the vertex shader:
// its name in the shader, the format of its data, and the byte offset
// of that data within each vertex record of a VertexBuffer.
type VertexAttribute struct {

	// name of the attribute in the shader source
	Name string

	// format of the attribute data in the vertex record
	Format VertexFormats

	// byte offset within the vertex record
	Offset int
}

// NewVertexAttribute returns a new VertexAttribute.
func NewVertexAttribute(name string, format VertexFormats, offset int) VertexAttribute {
	return VertexAttribute{Name: name, Format: format, Offset: offset}
}

func (va VertexAttribute) String() string {
	return fmt.Sprintf("%s\t%s\t(offset: %d)", va.Name, va.Format, va.Offset)
}

// Uniform describes one uniform variable of a shader program.
type Uniform struct {

	// name of the uniform in the shader source
	Name string

	// type of the uniform
	Type UniformTypes

	// number of array elements: 1 for a non-array uniform
	Count int
}

// NewUniform returns a new Uniform of given name and type,
// with a Count of 1.
func NewUniform(name string, typ UniformTypes) Uniform {
	return Uniform{Name: name, Type: typ, Count: 1}
}

// N returns the effective element count, treating 0 as 1.
func (un Uniform) N() int {
	return max(un.Count, 1)
}

// Bytes returns the total number of bytes for all elements.
func (un Uniform) Bytes() int {
	return un.N() * un.Type.Bytes()
}

func (un Uniform) String() string {
	if un.N() > 1 {
		return fmt.Sprintf("%s\t%s[%d]", un.Name, un.Type, un.N())
	}
	return fmt.Sprintf("%s\t%s", un.Name, un.Type)
}

// UniformData locates the value of a Uniform within a UniformBlock,
// as a byte offset from the start of the block.
type UniformData struct {
	Uniform

	// byte offset of the value within the block
	Offset int
}

// NewUniformData returns a new UniformData for a uniform at given offset.
func NewUniformData(name string, typ UniformTypes, count, offset int) UniformData {
	return UniformData{Uniform: Uniform{Name: name, Type: typ, Count: count}, Offset: offset}
}

// UniformBlock is a densely packed Go struct holding the values of the
// uniforms for a draw call. It must be passed as a pointer to the struct.
// The layout it returns says where each named value lives in the struct
// memory; UniformLayoutOf can build it from struct field tags.
type UniformBlock interface {
	UniformLayout() []UniformData
}

// Uniforms returns the Uniform descriptors of the given layout, in order,
// which is what a ProgramDesc needs to resolve them at link time.
func Uniforms(layout []UniformData) []Uniform {
	us := make([]Uniform, len(layout))
	for i, ud := range layout {
		us[i] = ud.Uniform
	}
	return us
}
