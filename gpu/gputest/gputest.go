// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gputest provides a headless gpu.Backend that records
// every call made to it, for testing code that uses the gpu package
// without a graphics context.
//
// Shader "compilation" scans the source for GLSL declarations:
// `attribute` (or `in` in a vertex shader) declarations become vertex
// attributes, and `uniform` declarations become uniforms, with locations
// assigned in order of declaration. A source containing an `#error`
// line fails to compile with that line as the log, and a program fails
// to link if any of its shaders has no main function.
package gputest

//go:generate core generate

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"cogentcore.org/glmesh/gpu"
)

// Kinds are the kinds of objects the Backend creates.
type Kinds int32 //enums:enum -transform lower

const (
	Shader Kinds = iota
	Program
	Buffer
)

// Pointer records a VertexAttribPointer call.
type Pointer struct {
	Components int
	Type       gpu.ScalarTypes
	Normalized bool
	Stride     int
	Offset     int
}

// UniformValue records the last value set for a uniform location.
type UniformValue struct {

	// Components is the number of components, or the square of the
	// matrix dimension for a matrix.
	Components int

	// Count is the number of array elements.
	Count int

	// Matrix is true for matrix uniforms.
	Matrix bool

	Ints   []int32
	Floats []float32
}

// DrawCall records a DrawArrays or DrawElements call and the
// binding state at the time of the call.
type DrawCall struct {
	Program     uint32
	ArrayBuffer uint32

	// Indexed is true for DrawElements calls.
	Indexed      bool
	IndexBuffer  uint32
	IndexType    gpu.IndexTypes
	First, Count int

	// Enabled are the enabled attribute locations, in enable order.
	Enabled []uint32
}

type object struct {
	kind Kinds
	typ  gpu.ShaderTypes
	src  string
	log  string

	// for programs
	attribs  []string
	uniforms []string

	// for buffers
	target gpu.BufferTargets
	data   []byte
}

// Backend is a recording gpu.Backend. The zero value is not usable:
// use New.
type Backend struct {

	// Calls is the log of every call, as "Method arg arg...".
	Calls []string

	// Pointers has the last VertexAttribPointer per location.
	Pointers map[uint32]Pointer

	// Uniforms has the last value set per uniform location.
	Uniforms map[int32]UniformValue

	// Draws has every draw call, in order.
	Draws []DrawCall

	// Errors has misuse detected by the backend, such as deleting
	// an object that does not exist (e.g., a double release).
	Errors []string

	objects map[uint32]*object
	next    uint32
	program uint32
	bound   map[gpu.BufferTargets]uint32
	enabled []uint32
}

// New returns a new Backend.
func New() *Backend {
	return &Backend{
		Pointers: make(map[uint32]Pointer),
		Uniforms: make(map[int32]UniformValue),
		objects:  make(map[uint32]*object),
		bound:    make(map[gpu.BufferTargets]uint32),
	}
}

// Live returns the number of live (created and not deleted) objects
// of given kind.
func (tb *Backend) Live(kind Kinds) int {
	n := 0
	for _, ob := range tb.objects {
		if ob.kind == kind {
			n++
		}
	}
	return n
}

// BufferData returns the data uploaded to the given buffer,
// nil if there is no such buffer.
func (tb *Backend) BufferData(buffer uint32) []byte {
	ob, ok := tb.objects[buffer]
	if !ok || ob.kind != Buffer {
		return nil
	}
	return ob.data
}

// Enabled returns the currently enabled attribute locations.
func (tb *Backend) Enabled() []uint32 {
	return slices.Clone(tb.enabled)
}

// CallsWith returns the recorded calls that start with the given prefix.
func (tb *Backend) CallsWith(prefix string) []string {
	var cs []string
	for _, c := range tb.Calls {
		if strings.HasPrefix(c, prefix) {
			cs = append(cs, c)
		}
	}
	return cs
}

// Reset clears the recorded calls, pointers, uniforms and draws,
// keeping all objects.
func (tb *Backend) Reset() {
	tb.Calls = nil
	tb.Draws = nil
	tb.Errors = nil
	clear(tb.Pointers)
	clear(tb.Uniforms)
}

func (tb *Backend) record(format string, args ...any) {
	tb.Calls = append(tb.Calls, fmt.Sprintf(format, args...))
}

func (tb *Backend) create(ob *object) uint32 {
	tb.next++
	tb.objects[tb.next] = ob
	return tb.next
}

func (tb *Backend) delete(kind Kinds, handle uint32) {
	ob, ok := tb.objects[handle]
	if !ok || ob.kind != kind {
		tb.Errors = append(tb.Errors, fmt.Sprintf("delete of unknown %s %d", kind, handle))
		return
	}
	delete(tb.objects, handle)
}

var (
	errorRe   = regexp.MustCompile(`(?m)^\s*#error.*$`)
	attribRe  = regexp.MustCompile(`(?m)^\s*(?:attribute|in)\s+(?:(?:lowp|mediump|highp)\s+)?\w+\s+(\w+)\s*;`)
	uniformRe = regexp.MustCompile(`(?m)^\s*uniform\s+(?:(?:lowp|mediump|highp)\s+)?\w+\s+(\w+)\s*(?:\[\s*\d+\s*\])?\s*;`)
)

func (tb *Backend) CompileShader(typ gpu.ShaderTypes, src string) (uint32, bool) {
	ob := &object{kind: Shader, typ: typ, src: src}
	h := tb.create(ob)
	tb.record("CompileShader %s %d", typ, h)
	if m := errorRe.FindString(src); m != "" {
		ob.log = "ERROR: 0:1: " + strings.TrimSpace(m)
		return h, false
	}
	return h, true
}

func (tb *Backend) ShaderLog(shader uint32) string {
	if ob, ok := tb.objects[shader]; ok {
		return ob.log
	}
	return ""
}

func (tb *Backend) DeleteShader(shader uint32) {
	tb.record("DeleteShader %d", shader)
	tb.delete(Shader, shader)
}

func (tb *Backend) LinkProgram(shaders ...uint32) (uint32, bool) {
	pr := &object{kind: Program}
	h := tb.create(pr)
	tb.record("LinkProgram %d", h)
	for _, sh := range shaders {
		ob, ok := tb.objects[sh]
		if !ok || ob.kind != Shader {
			pr.log = fmt.Sprintf("error: invalid shader %d", sh)
			return h, false
		}
		if !strings.Contains(ob.src, "main(") {
			pr.log = fmt.Sprintf("error: %s shader has no main function", ob.typ)
			return h, false
		}
		if ob.typ == gpu.VertexShader {
			for _, m := range attribRe.FindAllStringSubmatch(ob.src, -1) {
				pr.attribs = append(pr.attribs, m[1])
			}
		}
		for _, m := range uniformRe.FindAllStringSubmatch(ob.src, -1) {
			if !slices.Contains(pr.uniforms, m[1]) {
				pr.uniforms = append(pr.uniforms, m[1])
			}
		}
	}
	return h, true
}

func (tb *Backend) ProgramLog(program uint32) string {
	if ob, ok := tb.objects[program]; ok {
		return ob.log
	}
	return ""
}

func (tb *Backend) DeleteProgram(program uint32) {
	tb.record("DeleteProgram %d", program)
	tb.delete(Program, program)
	if tb.program == program {
		tb.program = 0
	}
}

func (tb *Backend) AttribLocation(program uint32, name string) int32 {
	ob, ok := tb.objects[program]
	if !ok {
		return gpu.NotFound
	}
	return int32(slices.Index(ob.attribs, name))
}

func (tb *Backend) UniformLocation(program uint32, name string) int32 {
	ob, ok := tb.objects[program]
	if !ok {
		return gpu.NotFound
	}
	return int32(slices.Index(ob.uniforms, name))
}

func (tb *Backend) UseProgram(program uint32) {
	tb.record("UseProgram %d", program)
	tb.program = program
}

func (tb *Backend) CreateBuffer(target gpu.BufferTargets, data []byte) uint32 {
	h := tb.create(&object{kind: Buffer, target: target, data: slices.Clone(data)})
	tb.record("CreateBuffer %s %d %d", target, h, len(data))
	tb.bound[target] = h
	return h
}

func (tb *Backend) BindBuffer(target gpu.BufferTargets, buffer uint32) {
	tb.record("BindBuffer %s %d", target, buffer)
	tb.bound[target] = buffer
}

func (tb *Backend) DeleteBuffer(buffer uint32) {
	tb.record("DeleteBuffer %d", buffer)
	tb.delete(Buffer, buffer)
	for t, b := range tb.bound {
		if b == buffer {
			tb.bound[t] = 0
		}
	}
}

func (tb *Backend) VertexAttribPointer(location uint32, components int, typ gpu.ScalarTypes, normalized bool, stride, offset int) {
	tb.record("VertexAttribPointer %d %d %s %v %d %d", location, components, typ, normalized, stride, offset)
	tb.Pointers[location] = Pointer{Components: components, Type: typ, Normalized: normalized, Stride: stride, Offset: offset}
}

func (tb *Backend) EnableVertexAttrib(location uint32) {
	tb.record("EnableVertexAttrib %d", location)
	if !slices.Contains(tb.enabled, location) {
		tb.enabled = append(tb.enabled, location)
	}
}

func (tb *Backend) DisableVertexAttrib(location uint32) {
	tb.record("DisableVertexAttrib %d", location)
	if i := slices.Index(tb.enabled, location); i >= 0 {
		tb.enabled = slices.Delete(tb.enabled, i, i+1)
	}
}

func (tb *Backend) Uniformiv(location int32, components, count int, values []int32) {
	tb.record("Uniformiv %d %d %d", location, components, count)
	tb.Uniforms[location] = UniformValue{Components: components, Count: count, Ints: slices.Clone(values[:components*count])}
}

func (tb *Backend) Uniformfv(location int32, components, count int, values []float32) {
	tb.record("Uniformfv %d %d %d", location, components, count)
	tb.Uniforms[location] = UniformValue{Components: components, Count: count, Floats: slices.Clone(values[:components*count])}
}

func (tb *Backend) UniformMatrixfv(location int32, dim, count int, values []float32) {
	tb.record("UniformMatrixfv %d %d %d", location, dim, count)
	n := dim * dim
	tb.Uniforms[location] = UniformValue{Components: n, Count: count, Matrix: true, Floats: slices.Clone(values[:n*count])}
}

func (tb *Backend) DrawArrays(first, count int) {
	tb.record("DrawArrays %d %d", first, count)
	tb.Draws = append(tb.Draws, DrawCall{Program: tb.program, ArrayBuffer: tb.bound[gpu.ArrayBuffer], First: first, Count: count, Enabled: tb.Enabled()})
}

func (tb *Backend) DrawElements(count int, typ gpu.IndexTypes, offset int) {
	tb.record("DrawElements %d %s %d", count, typ, offset)
	tb.Draws = append(tb.Draws, DrawCall{Program: tb.program, ArrayBuffer: tb.bound[gpu.ArrayBuffer], Indexed: true, IndexBuffer: tb.bound[gpu.ElementArrayBuffer], IndexType: typ, First: offset, Count: count, Enabled: tb.Enabled()})
}
