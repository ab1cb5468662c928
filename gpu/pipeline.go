// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
)

// ProgramDesc has everything needed to make a Program:
// the shader sources and the variables to resolve after linking.
type ProgramDesc struct {

	// name of the program, for messages
	Name string

	// source code of the vertex shader
	VertexSource string

	// source code of the fragment shader
	FragmentSource string

	// vertex attributes to resolve, in the order they are bound when drawing
	Attributes []VertexAttribute

	// uniforms to resolve, in the order they are uploaded when drawing
	Uniforms []Uniform
}

// AttributeSlot is a VertexAttribute with the location it was
// resolved to in a linked program.
type AttributeSlot struct {
	VertexAttribute

	// Location in the program, or NotFound
	Location int32
}

// UniformSlot is a Uniform with the location it was
// resolved to in a linked program.
type UniformSlot struct {
	Uniform

	// Location in the program, or NotFound
	Location int32
}

// CompileError is returned when a shader stage fails to compile.
type CompileError struct {

	// Program is the name of the program the shader is for.
	Program string

	// Stage is the shader stage that failed.
	Stage ShaderTypes

	// Log is the diagnostic log of the compiler.
	Log string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("gpu.Program %s: %s shader failed to compile:\n%s", e.Program, e.Stage, strings.TrimRight(e.Log, "\x00\n"))
}

// LinkError is returned when a program fails to link.
type LinkError struct {

	// Program is the name of the program.
	Program string

	// Log is the diagnostic log of the linker.
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("gpu.Program %s: failed to link:\n%s", e.Program, strings.TrimRight(e.Log, "\x00\n"))
}

// Program is a linked vertex + fragment shader program,
// with its attributes and uniforms resolved to locations once,
// at creation time.
type Program struct {
	name       string
	cx         *Context
	handle     uint32
	attributes []AttributeSlot
	uniforms   []UniformSlot

	// layouts maps the Go type of a UniformBlock to the index into its
	// layout for each uniform slot (-1 if absent), computed on first use.
	layouts map[reflect.Type][]int
}

// NewProgram compiles the vertex and fragment shaders of the given
// ProgramDesc and links them into a new Program. Each stage is compiled
// independently; if either fails, the returned error joins a
// CompileError for each failed stage and any compiled stage is released.
// If linking fails, a LinkError is returned and the program is released.
// On success, every requested attribute and uniform is resolved;
// names that are not in the linked program resolve to NotFound
// and are skipped when drawing.
func (cx *Context) NewProgram(pd *ProgramDesc) (*Program, error) {
	cx.mu.Lock()
	defer cx.mu.Unlock()

	b := cx.Backend
	vs, verr := cx.compileShader(pd.Name, VertexShader, pd.VertexSource)
	fs, ferr := cx.compileShader(pd.Name, FragmentShader, pd.FragmentSource)
	if verr != nil || ferr != nil {
		if verr == nil {
			b.DeleteShader(vs)
		}
		if ferr == nil {
			b.DeleteShader(fs)
		}
		return nil, errors.Join(verr, ferr)
	}

	handle, ok := b.LinkProgram(vs, fs)
	b.DeleteShader(vs)
	b.DeleteShader(fs)
	if !ok {
		err := &LinkError{Program: pd.Name}
		if handle != 0 {
			err.Log = b.ProgramLog(handle)
			b.DeleteProgram(handle)
		}
		slog.Error(err.Error())
		return nil, err
	}

	pr := &Program{name: pd.Name, cx: cx, handle: handle}
	pr.attributes = make([]AttributeSlot, len(pd.Attributes))
	for i, va := range pd.Attributes {
		loc := b.AttribLocation(handle, va.Name)
		if loc < 0 {
			loc = NotFound
			logx.PrintfDebug("gpu.Program %s: attribute %q not found in program\n", pd.Name, va.Name)
		}
		pr.attributes[i] = AttributeSlot{VertexAttribute: va, Location: loc}
	}
	pr.uniforms = make([]UniformSlot, len(pd.Uniforms))
	for i, un := range pd.Uniforms {
		loc := b.UniformLocation(handle, un.Name)
		if loc < 0 {
			loc = NotFound
			logx.PrintfDebug("gpu.Program %s: uniform %q not found in program\n", pd.Name, un.Name)
		}
		pr.uniforms[i] = UniformSlot{Uniform: un, Location: loc}
	}
	return pr, nil
}

// compileShader compiles one stage, returning a CompileError
// with the compiler log on failure.
func (cx *Context) compileShader(prog string, typ ShaderTypes, src string) (uint32, error) {
	b := cx.Backend
	sh, ok := b.CompileShader(typ, src)
	if ok {
		return sh, nil
	}
	err := &CompileError{Program: prog, Stage: typ}
	if sh != 0 {
		err.Log = b.ShaderLog(sh)
		b.DeleteShader(sh)
	}
	slog.Error(err.Error())
	return 0, err
}

// Name returns the name of the program.
func (pr *Program) Name() string {
	return pr.name
}

// Handle returns the backend handle of the program, 0 once released.
func (pr *Program) Handle() uint32 {
	pr.cx.mu.Lock()
	defer pr.cx.mu.Unlock()
	return pr.handle
}

// Attributes returns a copy of the resolved attribute slots,
// in ProgramDesc order.
func (pr *Program) Attributes() []AttributeSlot {
	return slices.Clone(pr.attributes)
}

// Uniforms returns a copy of the resolved uniform slots,
// in ProgramDesc order.
func (pr *Program) Uniforms() []UniformSlot {
	return slices.Clone(pr.uniforms)
}

// AttributeLocation returns the resolved location of the named attribute,
// or NotFound.
func (pr *Program) AttributeLocation(name string) int32 {
	for _, as := range pr.attributes {
		if as.Name == name {
			return as.Location
		}
	}
	return NotFound
}

// UniformLocation returns the resolved location of the named uniform,
// or NotFound.
func (pr *Program) UniformLocation(name string) int32 {
	for _, us := range pr.uniforms {
		if us.Name == name {
			return us.Location
		}
	}
	return NotFound
}

// Release releases the GPU program. A Program must be released
// exactly once; releasing it again is a programmer error that is
// logged and otherwise ignored.
func (pr *Program) Release() {
	pr.cx.mu.Lock()
	defer pr.cx.mu.Unlock()
	if pr.handle == 0 {
		slog.Error("programmer error: gpu.Program Release called on released program", "Program", pr.name)
		return
	}
	pr.cx.Backend.DeleteProgram(pr.handle)
	pr.cx.forget(pr.handle, true)
	pr.handle = 0
}

func (pr *Program) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Program: %s\n", pr.name)
	for _, as := range pr.attributes {
		fmt.Fprintf(&sb, "\tAttribute %d:\t%s\n", as.Location, as.VertexAttribute.String())
	}
	for _, us := range pr.uniforms {
		fmt.Fprintf(&sb, "\tUniform %d:\t%s\n", us.Location, us.Uniform.String())
	}
	return sb.String()
}

// layoutIndexes returns the index into layout for each uniform slot,
// matching by name, for the given block type. The result is cached,
// so the name matching only happens once per block type.
func (pr *Program) layoutIndexes(typ reflect.Type, layout []UniformData) []int {
	if idx, ok := pr.layouts[typ]; ok && len(idx) == len(pr.uniforms) {
		return idx
	}
	idx := make([]int, len(pr.uniforms))
	for si, us := range pr.uniforms {
		idx[si] = -1
		if si < len(layout) && layout[si].Name == us.Name {
			idx[si] = si
			continue
		}
		for li := range layout {
			if layout[li].Name == us.Name {
				idx[si] = li
				break
			}
		}
	}
	if pr.layouts == nil {
		pr.layouts = make(map[reflect.Type][]int)
	}
	pr.layouts[typ] = idx
	return idx
}
