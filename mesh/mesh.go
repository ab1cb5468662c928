// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh has the CPU-side indexed Mesh produced by mesh importers,
// and the GPUMesh built from it for flat-shaded rendering through the
// gpu package.
package mesh

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// NoIndex is the index of an absent face corner attribute,
// e.g., the uv of a corner that only has a vertex index.
const NoIndex = -1

// IdTri is a triangle face, with 0-based indexes into the
// Vertices and UVs of the Mesh for each corner.
type IdTri struct {
	Vertices [3]int
	UVs      [3]int
}

// IdQuad is a quad face, with 0-based indexes into the
// Vertices and UVs of the Mesh for each corner.
type IdQuad struct {
	Vertices [4]int
	UVs      [4]int
}

// Mesh is an indexed mesh of triangle and quad faces.
type Mesh struct {

	// vertex positions
	Vertices []math32.Vector3

	// texture coordinates, with Z = 0
	UVs []math32.Vector3

	// triangle faces
	Tris []IdTri

	// quad faces
	Quads []IdQuad
}

// NumTriangles returns the number of triangles the mesh renders as,
// which is one per triangle and two per quad.
func (ms *Mesh) NumTriangles() int {
	return len(ms.Tris) + 2*len(ms.Quads)
}

// Bounds returns the bounding box of the vertices.
func (ms *Mesh) Bounds() math32.Box3 {
	bb := math32.B3Empty()
	for _, v := range ms.Vertices {
		bb.ExpandByPoint(v)
	}
	return bb
}

// IndexError is returned by Validate for a face corner index
// that is out of range.
type IndexError struct {

	// Face is "tri" or "quad".
	Face string

	// Ordinal is the index of the face in Tris or Quads.
	Ordinal int

	// Corner is the corner of the face.
	Corner int

	// Attr is "vertex" or "uv".
	Attr string

	// Index is the bad index.
	Index int

	// Len is the number of elements indexed.
	Len int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("mesh: %s %d corner %d: %s index %d out of range [0, %d)", e.Face, e.Ordinal, e.Corner, e.Attr, e.Index, e.Len)
}

// Validate returns an IndexError for the first face corner with
// a vertex index out of range, or a uv index out of range that is
// not NoIndex.
func (ms *Mesh) Validate() error {
	for i := range ms.Tris {
		t := &ms.Tris[i]
		if err := ms.validateFace("tri", i, t.Vertices[:], t.UVs[:]); err != nil {
			return err
		}
	}
	for i := range ms.Quads {
		q := &ms.Quads[i]
		if err := ms.validateFace("quad", i, q.Vertices[:], q.UVs[:]); err != nil {
			return err
		}
	}
	return nil
}

func (ms *Mesh) validateFace(face string, ord int, verts, uvs []int) error {
	nv, nu := len(ms.Vertices), len(ms.UVs)
	for c, vi := range verts {
		if vi < 0 || vi >= nv {
			return &IndexError{Face: face, Ordinal: ord, Corner: c, Attr: "vertex", Index: vi, Len: nv}
		}
	}
	for c, ui := range uvs {
		if ui != NoIndex && (ui < 0 || ui >= nu) {
			return &IndexError{Face: face, Ordinal: ord, Corner: c, Attr: "uv", Index: ui, Len: nu}
		}
	}
	return nil
}
