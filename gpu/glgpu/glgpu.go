// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu implements gpu.Backend on OpenGL 2.1 / GLSL 1.20,
// which is the desktop equivalent of OpenGL ES 2.0.
// An OpenGL context must be current on the calling thread
// for every call, which typically means calling
// runtime.LockOSThread before making the context current.
package glgpu

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/glmesh/gpu"
	"github.com/go-gl/gl/v2.1/gl"
)

// Backend is the OpenGL gpu.Backend. It has no state of its own:
// all state lives in the current OpenGL context.
type Backend struct{}

// New initializes the OpenGL function pointers for the current
// context and returns a new Backend.
func New() (*Backend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("glgpu: OpenGL init failed: %w", err)
	}
	logx.PrintlnInfo("glgpu: OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))
	return &Backend{}, nil
}

var _ gpu.Backend = (*Backend)(nil)

var glShaders = [...]uint32{
	gpu.VertexShader:   gl.VERTEX_SHADER,
	gpu.FragmentShader: gl.FRAGMENT_SHADER,
}

var glTargets = [...]uint32{
	gpu.ArrayBuffer:        gl.ARRAY_BUFFER,
	gpu.ElementArrayBuffer: gl.ELEMENT_ARRAY_BUFFER,
}

var glScalars = [...]uint32{
	gpu.UnsignedByte: gl.UNSIGNED_BYTE,
	gpu.Byte:         gl.BYTE,
	gpu.Int:          gl.INT,
	gpu.Float:        gl.FLOAT,
}

var glIndexes = [...]uint32{
	gpu.Uint16: gl.UNSIGNED_SHORT,
	gpu.Uint32: gl.UNSIGNED_INT,
}

// cstr returns s as a null terminated string, as required by gl.Str.
func cstr(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func (b *Backend) CompileShader(typ gpu.ShaderTypes, src string) (uint32, bool) {
	handle := gl.CreateShader(glShaders[typ])
	if handle == 0 {
		return 0, false
	}
	csources, free := gl.Strs(cstr(src))
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	return handle, status != gl.FALSE
}

func (b *Backend) ShaderLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(msg))
	return gl.GoStr(gl.Str(msg))
}

func (b *Backend) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (b *Backend) LinkProgram(shaders ...uint32) (uint32, bool) {
	handle := gl.CreateProgram()
	if handle == 0 {
		return 0, false
	}
	for _, sh := range shaders {
		gl.AttachShader(handle, sh)
	}
	gl.LinkProgram(handle)
	for _, sh := range shaders {
		gl.DetachShader(handle, sh)
	}

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	return handle, status != gl.FALSE
}

func (b *Backend) ProgramLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(msg))
	return gl.GoStr(gl.Str(msg))
}

func (b *Backend) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (b *Backend) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(cstr(name)))
}

func (b *Backend) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(cstr(name)))
}

func (b *Backend) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (b *Backend) CreateBuffer(target gpu.BufferTargets, data []byte) uint32 {
	var handle uint32
	gl.GenBuffers(1, &handle)
	gl.BindBuffer(glTargets[target], handle)
	if len(data) > 0 {
		gl.BufferData(glTargets[target], len(data), gl.Ptr(data), gl.STATIC_DRAW)
	} else {
		gl.BufferData(glTargets[target], 0, nil, gl.STATIC_DRAW)
	}
	return handle
}

func (b *Backend) BindBuffer(target gpu.BufferTargets, buffer uint32) {
	gl.BindBuffer(glTargets[target], buffer)
}

func (b *Backend) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (b *Backend) VertexAttribPointer(location uint32, components int, typ gpu.ScalarTypes, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(location, int32(components), glScalars[typ], normalized, int32(stride), gl.PtrOffset(offset))
}

func (b *Backend) EnableVertexAttrib(location uint32) {
	gl.EnableVertexAttribArray(location)
}

func (b *Backend) DisableVertexAttrib(location uint32) {
	gl.DisableVertexAttribArray(location)
}

func (b *Backend) Uniformiv(location int32, components, count int, values []int32) {
	n := int32(count)
	p := &values[0]
	switch components {
	case 1:
		gl.Uniform1iv(location, n, p)
	case 2:
		gl.Uniform2iv(location, n, p)
	case 3:
		gl.Uniform3iv(location, n, p)
	case 4:
		gl.Uniform4iv(location, n, p)
	}
}

func (b *Backend) Uniformfv(location int32, components, count int, values []float32) {
	n := int32(count)
	p := &values[0]
	switch components {
	case 1:
		gl.Uniform1fv(location, n, p)
	case 2:
		gl.Uniform2fv(location, n, p)
	case 3:
		gl.Uniform3fv(location, n, p)
	case 4:
		gl.Uniform4fv(location, n, p)
	}
}

func (b *Backend) UniformMatrixfv(location int32, dim, count int, values []float32) {
	n := int32(count)
	p := &values[0]
	switch dim {
	case 2:
		gl.UniformMatrix2fv(location, n, false, p)
	case 3:
		gl.UniformMatrix3fv(location, n, false, p)
	case 4:
		gl.UniformMatrix4fv(location, n, false, p)
	}
}

func (b *Backend) DrawArrays(first, count int) {
	gl.DrawArrays(gl.TRIANGLES, int32(first), int32(count))
}

func (b *Backend) DrawElements(count int, typ gpu.IndexTypes, offset int) {
	gl.DrawElements(gl.TRIANGLES, int32(count), glIndexes[typ], gl.PtrOffset(offset))
}

// Clear clears the color and depth buffers of the current
// framebuffer to the given color, and enables depth testing.
func (b *Backend) Clear(r, g, bl, a float32) {
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(r, g, bl, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Viewport sets the viewport to the given framebuffer size.
func (b *Backend) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}
