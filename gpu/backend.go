// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// Backend is the set of raw graphics API operations that the gpu
// package is built on. All handles are opaque non-zero values;
// 0 is never a valid handle. Implementations are not required to be
// safe for concurrent use: the Context serializes all calls.
// See glgpu for the OpenGL implementation and gputest for a
// headless recording implementation.
type Backend interface {

	// CompileShader creates a shader of given type from source and
	// compiles it. ok is false if creation or compilation failed,
	// in which case a non-zero handle can be used to get the ShaderLog,
	// and must then be deleted.
	CompileShader(typ ShaderTypes, src string) (handle uint32, ok bool)

	// ShaderLog returns the compiler diagnostic log for a shader.
	ShaderLog(shader uint32) string

	// DeleteShader releases a shader.
	DeleteShader(shader uint32)

	// LinkProgram creates a program from the given compiled shaders
	// and links it. The shaders are detached after linking and
	// remain owned by the caller. ok is false if linking failed,
	// in which case a non-zero handle can be used to get the ProgramLog,
	// and must then be deleted.
	LinkProgram(shaders ...uint32) (handle uint32, ok bool)

	// ProgramLog returns the linker diagnostic log for a program.
	ProgramLog(program uint32) string

	// DeleteProgram releases a program.
	DeleteProgram(program uint32)

	// AttribLocation returns the location of the named vertex attribute
	// in a linked program, or NotFound.
	AttribLocation(program uint32, name string) int32

	// UniformLocation returns the location of the named uniform
	// in a linked program, or NotFound.
	UniformLocation(program uint32, name string) int32

	// UseProgram makes the program the active one.
	UseProgram(program uint32)

	// CreateBuffer creates a buffer bound to the given target
	// and uploads data to it with static usage.
	// It leaves the new buffer bound to the target.
	CreateBuffer(target BufferTargets, data []byte) uint32

	// BindBuffer binds the buffer to the target.
	BindBuffer(target BufferTargets, buffer uint32)

	// DeleteBuffer releases a buffer.
	DeleteBuffer(buffer uint32)

	// VertexAttribPointer describes where the attribute at given location
	// is found in the currently bound ArrayBuffer.
	VertexAttribPointer(location uint32, components int, typ ScalarTypes, normalized bool, stride, offset int)

	// EnableVertexAttrib enables the attribute at given location.
	EnableVertexAttrib(location uint32)

	// DisableVertexAttrib disables the attribute at given location.
	DisableVertexAttrib(location uint32)

	// Uniformiv sets count elements of an int uniform with
	// given number of components (1-4) from values.
	Uniformiv(location int32, components, count int, values []int32)

	// Uniformfv sets count elements of a float uniform with
	// given number of components (1-4) from values.
	Uniformfv(location int32, components, count int, values []float32)

	// UniformMatrixfv sets count elements of a square float matrix uniform
	// of given dimension (2-4) from column-major values, without transpose.
	UniformMatrixfv(location int32, dim, count int, values []float32)

	// DrawArrays draws count vertices as a triangle list,
	// starting at vertex first.
	DrawArrays(first, count int)

	// DrawElements draws count indexes of the bound ElementArrayBuffer
	// as a triangle list, starting at given byte offset.
	DrawElements(count int, typ IndexTypes, offset int)
}
