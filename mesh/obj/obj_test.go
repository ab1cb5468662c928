// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package obj

import (
	"strings"
	"testing"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/glmesh/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		kind LineKinds
	}{
		{"", Empty},
		{" \t ", Empty},
		{"# comment", Comment},
		{"#comment", Comment},
		{"v 1 2 3", Position},
		{"\tvt 0.5 0.5", TexCoord},
		{"f 1 2 3", Face},
		{"vn 0 0 1", Unknown},
		{"xyz 1 2 3", Unknown},
		{"vertex 1 2 3", Unknown},
		{"\v", Unknown},
	}
	for _, test := range tests {
		kind, _ := ClassifyLine(test.line)
		assert.Equal(t, test.kind, kind, test.line)
	}

	_, fields := ClassifyLine("v 1\f2 3\r")
	assert.Equal(t, []string{"v", "1\f2", "3\r"}, fields)

	assert.Equal(t, "TexCoord", TexCoord.String())
	var lk LineKinds
	require.NoError(t, lk.SetString("Face"))
	assert.Equal(t, Face, lk)
	assert.Error(t, lk.SetString("Normal"))
	assert.Len(t, LineKindsValues(), int(LineKindsN))
}

func TestTriangle(t *testing.T) {
	ms, err := ParseString("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3")
	require.NoError(t, err)
	assert.Len(t, ms.Vertices, 3)
	require.Len(t, ms.Tris, 1)
	assert.Empty(t, ms.Quads)
	assert.Equal(t, [3]int{0, 1, 2}, ms.Tris[0].Vertices)
	assert.Equal(t, [3]int{mesh.NoIndex, mesh.NoIndex, mesh.NoIndex}, ms.Tris[0].UVs)

	gm, err := mesh.NewGPUMesh(ms)
	require.NoError(t, err)
	require.Len(t, gm.Vertices, 3)
	assert.Equal(t, []uint32{0, 1, 2}, gm.Indexes)
	n := mesh.FaceNormal(ms.Vertices[0], ms.Vertices[1], ms.Vertices[2])
	assert.Equal(t, math32.Vec3(0, 0, 1), n)
	for _, v := range gm.Vertices {
		assert.Equal(t, n, v.Normal)
	}
}

func TestUnknownDirective(t *testing.T) {
	var dec Decoder
	ms, err := dec.Decode(strings.NewReader("xyz 1 2 3\nv 1 2 3\n"))
	require.NoError(t, err)
	assert.Len(t, ms.Vertices, 1)
	require.Len(t, dec.Warnings, 1)
	assert.Contains(t, dec.Warnings[0], "xyz")
	assert.Equal(t, 1, dec.Stats[Unknown])
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src  string
		line int
		dir  string
	}{
		{"v 1.0 2.0", 1, "v"},
		{"v 1 2 3 4", 1, "v"},
		{"v 1 2 x", 1, "v"},
		{"vt 1", 1, "vt"},
		{"vt 1 2 3", 1, "vt"},
		{"v 0 0 0\n# ok\nf 1 2", 3, "f"},
		{"f 1 2 3 4 5", 1, "f"},
		{"f 1 2 a", 1, "f"},
		{"f 1 2 -3", 1, "f"},
		{"f 1/2 2/2 3/2", 1, "f"},
		{"f 1//x 2 3", 1, "f"},
		{"\n\nf 1/2/3/4 2 3", 3, "f"},
		{"v 1\f2 3", 1, "v"},
		{"v 1\v2 3", 1, "v"},
		{"v 1\u00a02 3", 1, "v"},
		{"v 0 0 0\nf 1\u20032 3", 2, "f"},
	}
	for _, test := range tests {
		ms, err := ParseString(test.src)
		assert.Nil(t, ms, test.src)
		var pe *ParseError
		if assert.True(t, errors.As(err, &pe), test.src) {
			assert.Equal(t, test.line, pe.Line, test.src)
			assert.Equal(t, test.dir, pe.Directive, test.src)
		}
	}
}

func TestLongLine(t *testing.T) {
	pad := strings.Repeat(" ", 2<<20)
	ms, err := ParseString("v 1" + pad + "2\t3\nv 0 0 0\nv 0 1 0\nf 1 2" + pad + "3\n")
	require.NoError(t, err)
	require.Len(t, ms.Vertices, 3)
	assert.Equal(t, math32.Vec3(1, 2, 3), ms.Vertices[0])
	assert.Len(t, ms.Tris, 1)
}

func TestFaceArity(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nv 0 0 1\n"
	ms, err := ParseString(src + "f 1 2 3\n")
	require.NoError(t, err)
	assert.Len(t, ms.Tris, 1)

	ms, err = ParseString(src + "f 1 2 3 4\n")
	require.NoError(t, err)
	require.Len(t, ms.Quads, 1)
	assert.Equal(t, [4]int{0, 1, 2, 3}, ms.Quads[0].Vertices)

	_, err = ParseString(src + "f 1 2 3 4 5\n")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "5 corners")
}

func TestCorners(t *testing.T) {
	ms, err := ParseString("f 1//2 3/9/4 5\nf 7//0 8 9 10//11")
	require.NoError(t, err)
	require.Len(t, ms.Tris, 1)
	assert.Equal(t, [3]int{0, 2, 4}, ms.Tris[0].Vertices)
	assert.Equal(t, [3]int{1, 3, mesh.NoIndex}, ms.Tris[0].UVs)
	require.Len(t, ms.Quads, 1)
	assert.Equal(t, [4]int{6, 7, 8, 9}, ms.Quads[0].Vertices)
	assert.Equal(t, [4]int{mesh.NoIndex, mesh.NoIndex, mesh.NoIndex, 10}, ms.Quads[0].UVs)

	// indexes are not range checked until the GPU mesh is built
	_, err = mesh.NewGPUMesh(ms)
	var ie *mesh.IndexError
	assert.True(t, errors.As(err, &ie))
}

func TestTexCoord(t *testing.T) {
	ms, err := ParseString("vt 0.25 0.75\n")
	require.NoError(t, err)
	assert.Equal(t, []math32.Vector3{math32.Vec3(0.25, 0.75, 0)}, ms.UVs)
}

func TestOpenCube(t *testing.T) {
	ms, dec, err := Open("testdata/cube.obj")
	require.NoError(t, err)
	assert.Len(t, ms.Vertices, 8)
	assert.Len(t, ms.UVs, 4)
	assert.Empty(t, ms.Tris)
	assert.Len(t, ms.Quads, 6)
	assert.Equal(t, 12, ms.NumTriangles())
	assert.Equal(t, 2, dec.Stats[Comment])
	assert.Equal(t, 6, dec.Stats[Face])
	assert.Len(t, dec.Warnings, 4)
	assert.Contains(t, dec.Warnings[0], "cube.obj(2)")

	bb := ms.Bounds()
	assert.Equal(t, math32.Vec3(0, 0, 0), bb.Min)
	assert.Equal(t, math32.Vec3(1, 1, 1), bb.Max)

	gm, err := mesh.NewGPUMesh(ms)
	require.NoError(t, err)
	assert.Len(t, gm.Vertices, 24)
	assert.Len(t, gm.Indexes, 36)

	// all faces point out of the cube
	center := bb.Center()
	for f := range 6 {
		vs := gm.Vertices[4*f : 4*f+4]
		var fc math32.Vector3
		for _, v := range vs {
			fc = fc.Add(v.Pos)
		}
		fc = fc.DivScalar(4)
		assert.Greater(t, vs[0].Normal.Dot(fc.Sub(center)), float32(0), "face %d", f)
	}
}

func TestOpenQuad(t *testing.T) {
	// CRLF line endings
	ms, dec, err := Open("testdata/quad.obj")
	require.NoError(t, err)
	assert.Len(t, ms.Vertices, 4)
	assert.Len(t, ms.Tris, 2)
	assert.Equal(t, 1, dec.Stats[Empty])
	assert.Empty(t, dec.Warnings)
}

func TestOpenMissing(t *testing.T) {
	_, _, err := Open("testdata/nonesuch.obj")
	assert.Error(t, err)
}
