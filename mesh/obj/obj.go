// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obj parses the vertex, texture coordinate and face records
// of the Wavefront OBJ file format (*.obj) into a mesh.Mesh.
// Faces must be triangles or quads, and each face corner is either a
// vertex index or a vertex//uv composite. All other directives
// (normals, groups, materials, etc) are skipped with a warning.
// Basic format info: https://en.wikipedia.org/wiki/Wavefront_.obj_file
package obj

//go:generate core generate

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/math32"
	"cogentcore.org/glmesh/mesh"
)

// LineKinds are the kinds of lines in an obj file.
type LineKinds int32 //enums:enum

const (
	// Empty is a blank line.
	Empty LineKinds = iota

	// Comment is a line starting with #.
	Comment

	// Position is a vertex position: v x y z
	Position

	// TexCoord is a texture coordinate: vt u v
	TexCoord

	// Face is a face: f a b c [d]
	Face

	// Unknown is any other directive, which is skipped.
	Unknown
)

// ClassifyLine returns the kind of the given line, and its fields
// separated by spaces and tabs. Other whitespace is part of a field.
func ClassifyLine(line string) (LineKinds, []string) {
	fields := strings.FieldsFunc(line, isSpace)
	if len(fields) == 0 {
		return Empty, nil
	}
	ltype := fields[0]
	if strings.HasPrefix(ltype, "#") {
		return Comment, fields
	}
	switch ltype {
	case "v":
		return Position, fields
	case "vt":
		return TexCoord, fields
	case "f":
		return Face, fields
	}
	return Unknown, fields
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// ParseError is the error for a malformed line.
type ParseError struct {

	// Filename is the name of the file, if known.
	Filename string

	// Line is the 1-based line number.
	Line int

	// Directive is the leading token of the line.
	Directive string

	// Msg describes the problem.
	Msg string

	// Err is the underlying error, if any.
	Err error
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	if e.Filename != "" {
		sb.WriteString(e.Filename)
		sb.WriteByte(':')
	}
	fmt.Fprintf(&sb, "%d: obj %q: %s", e.Line, e.Directive, e.Msg)
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Stats has the number of lines of each kind in a decoded file.
type Stats [LineKindsN]int

// Decoder decodes an obj file into a mesh.Mesh.
type Decoder struct {

	// Filename is used in errors and warnings.
	Filename string

	// Warnings has a message for each skipped directive.
	Warnings []string

	// Stats counts the decoded lines by kind.
	Stats Stats

	mesh *mesh.Mesh
	line int
	ltyp string
}

// Decode decodes the mesh from the given reader. It stops at the first
// malformed line with a ParseError, and then returns no mesh.
// Face indexes are converted to 0-based, and not range checked:
// see mesh.Mesh.Validate.
func (dec *Decoder) Decode(r io.Reader) (*mesh.Mesh, error) {
	dec.mesh = &mesh.Mesh{}
	dec.Warnings = nil
	dec.Stats = Stats{}
	dec.line = 0
	defer func() { dec.mesh = nil }()

	// no limit on line length
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			dec.line++
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if perr := dec.parseLine(line); perr != nil {
				return nil, perr
			}
		}
		if err == io.EOF {
			return dec.mesh, nil
		}
		if err != nil {
			return nil, &ParseError{Filename: dec.Filename, Line: dec.line + 1, Msg: "read error", Err: err}
		}
	}
}

func (dec *Decoder) parseLine(line string) error {
	kind, fields := ClassifyLine(line)
	dec.Stats[kind]++
	if len(fields) > 0 {
		dec.ltyp = fields[0]
	}
	switch kind {
	case Position:
		v, err := dec.parseVector(fields[1:], 3)
		if err != nil {
			return err
		}
		dec.mesh.Vertices = append(dec.mesh.Vertices, v)
	case TexCoord:
		v, err := dec.parseVector(fields[1:], 2)
		if err != nil {
			return err
		}
		dec.mesh.UVs = append(dec.mesh.UVs, v)
	case Face:
		return dec.parseFace(fields[1:])
	case Unknown:
		dec.appendWarn("directive not supported: " + fields[0])
	}
	return nil
}

// parseVector parses exactly n floats into a vector,
// with any remaining components 0.
func (dec *Decoder) parseVector(fields []string, n int) (math32.Vector3, error) {
	var v math32.Vector3
	if len(fields) != n {
		return v, dec.formatError(fmt.Sprintf("expected %d floats, got %d fields", n, len(fields)), nil)
	}
	var vals [3]float32
	for i, f := range fields {
		val, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return v, dec.formatError("invalid float "+strconv.Quote(f), err)
		}
		vals[i] = float32(val)
	}
	return math32.Vec3(vals[0], vals[1], vals[2]), nil
}

// parseFace parses a face line:
// f v1[//uv1] v2[//uv2] v3[//uv3] [v4[//uv4]]
func (dec *Decoder) parseFace(fields []string) error {
	if len(fields) != 3 && len(fields) != 4 {
		return dec.formatError(fmt.Sprintf("expected a triangle or quad, got %d corners", len(fields)), nil)
	}
	var verts, uvs [4]int
	for i, f := range fields {
		v, uv, err := dec.parseCorner(f)
		if err != nil {
			return err
		}
		verts[i], uvs[i] = v, uv
	}
	if len(fields) == 3 {
		dec.mesh.Tris = append(dec.mesh.Tris, mesh.IdTri{Vertices: [3]int(verts[:3]), UVs: [3]int(uvs[:3])})
	} else {
		dec.mesh.Quads = append(dec.mesh.Quads, mesh.IdQuad{Vertices: verts, UVs: uvs})
	}
	return nil
}

// parseCorner parses a face corner, which is either a vertex index
// or a three field vertex/x/uv composite where the middle field is
// ignored. Indexes are returned 0-based, so a corner without a uv
// has a uv of mesh.NoIndex.
func (dec *Decoder) parseCorner(s string) (v, uv int, err error) {
	parts := strings.Split(s, "/")
	if len(parts) != 1 && len(parts) != 3 {
		return 0, 0, dec.formatError("expected vertex or vertex//uv, got "+strconv.Quote(s), nil)
	}
	v, err = dec.parseIndex(parts[0])
	if err != nil {
		return
	}
	uv = mesh.NoIndex
	if len(parts) == 3 {
		uv, err = dec.parseIndex(parts[2])
	}
	return
}

func (dec *Decoder) parseIndex(s string) (int, error) {
	idx, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, dec.formatError("invalid index "+strconv.Quote(s), err)
	}
	return int(idx) - 1, nil
}

func (dec *Decoder) formatError(msg string, err error) error {
	return &ParseError{Filename: dec.Filename, Line: dec.line, Directive: dec.ltyp, Msg: msg, Err: err}
}

func (dec *Decoder) appendWarn(msg string) {
	wline := fmt.Sprintf("%s(%d): %s", dec.Filename, dec.line, msg)
	logx.PrintlnDebug("obj:", wline)
	dec.Warnings = append(dec.Warnings, wline)
}

// Parse parses a mesh from the given reader.
func Parse(r io.Reader) (*mesh.Mesh, error) {
	var dec Decoder
	return dec.Decode(r)
}

// ParseString parses a mesh from the given string.
func ParseString(s string) (*mesh.Mesh, error) {
	return Parse(strings.NewReader(s))
}

// Open parses a mesh from the given file. It returns the Decoder
// with the warnings and stats of the file, along with the mesh.
func Open(filename string) (*mesh.Mesh, *Decoder, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	dec := &Decoder{Filename: filepath.Base(filename)}
	ms, err := dec.Decode(f)
	return ms, dec, err
}
