// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/glmesh/gpu"
	"cogentcore.org/glmesh/gpu/gputest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noUVs3() [3]int { return [3]int{NoIndex, NoIndex, NoIndex} }

func noUVs4() [4]int { return [4]int{NoIndex, NoIndex, NoIndex, NoIndex} }

func triangleMesh() *Mesh {
	return &Mesh{
		Vertices: []math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0)},
		Tris:     []IdTri{{Vertices: [3]int{0, 1, 2}, UVs: noUVs3()}},
	}
}

// quadMesh has a unit square in the XY plane, as one quad and as two
// triangles, with uvs.
func quadMesh() *Mesh {
	return &Mesh{
		Vertices: []math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(1, 1, 0), math32.Vec3(0, 1, 0)},
		UVs:      []math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(1, 1, 0), math32.Vec3(0, 1, 0)},
		Tris: []IdTri{
			{Vertices: [3]int{0, 1, 2}, UVs: [3]int{0, 1, 2}},
			{Vertices: [3]int{2, 3, 0}, UVs: [3]int{2, 3, 0}},
		},
		Quads: []IdQuad{{Vertices: [4]int{0, 1, 2, 3}, UVs: [4]int{3, 2, 1, 0}}},
	}
}

func TestTriangle(t *testing.T) {
	gm, err := NewGPUMesh(triangleMesh())
	require.NoError(t, err)
	require.Len(t, gm.Vertices, 3)
	assert.Equal(t, []uint32{0, 1, 2}, gm.Indexes)
	n := math32.Vec3(0, 0, 1)
	for _, v := range gm.Vertices {
		assert.Equal(t, n, v.Normal)
		assert.Equal(t, math32.Vector2{}, v.UV)
	}
	assert.Equal(t, math32.Vec3(1, 0, 0), gm.Vertices[1].Pos)
}

func TestFaceNormal(t *testing.T) {
	a, b, c := math32.Vec3(1, 2, 3), math32.Vec3(4, 1, 0), math32.Vec3(-2, 5, 1)
	n := b.Sub(a).Cross(c.Sub(a))
	n = n.DivScalar(n.Length())
	assert.Equal(t, n, FaceNormal(a, b, c))
	assert.InDelta(t, 1, FaceNormal(a, b, c).Length(), 1e-6)

	// clockwise winding flips the normal
	assert.Equal(t, math32.Vec3(0, 0, -1), FaceNormal(math32.Vec3(0, 0, 0), math32.Vec3(0, 1, 0), math32.Vec3(1, 0, 0)))

	// degenerate
	assert.Equal(t, math32.Vector3{}, FaceNormal(a, a, c))
}

func TestQuad(t *testing.T) {
	ms := quadMesh()
	gm, err := NewGPUMesh(ms)
	require.NoError(t, err)
	assert.Equal(t, 4, ms.NumTriangles())
	assert.Equal(t, 4, gm.NumTriangles())
	require.Len(t, gm.Vertices, 3+3+4)
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5, 6, 7, 8, 8, 9, 6}, gm.Indexes)

	for _, v := range gm.Vertices {
		assert.Equal(t, math32.Vec3(0, 0, 1), v.Normal)
	}
	// uvs come from the uv indexes, not the vertex indexes
	assert.Equal(t, math32.Vec2(0, 1), gm.Vertices[6].UV)
	assert.Equal(t, math32.Vec2(1, 1), gm.Vertices[7].UV)
	assert.Equal(t, math32.Vec2(0, 0), gm.Vertices[9].UV)
	assert.Equal(t, math32.Vec2(1, 1), gm.Vertices[2].UV)
}

func TestIndexCount(t *testing.T) {
	ms := quadMesh()
	for range 5 {
		ms.Tris = append(ms.Tris, ms.Tris[0])
		ms.Quads = append(ms.Quads, ms.Quads[0])
	}
	gm, err := NewGPUMesh(ms)
	require.NoError(t, err)
	assert.Len(t, gm.Indexes, 3*len(ms.Tris)+6*len(ms.Quads))
	assert.Len(t, gm.Vertices, 3*len(ms.Tris)+4*len(ms.Quads))
}

func TestTriangleIndexes(t *testing.T) {
	ms := triangleMesh()
	for range 9 {
		ms.Tris = append(ms.Tris, IdTri{Vertices: [3]int{2, 1, 0}, UVs: noUVs3()})
	}
	gm, err := NewGPUMesh(ms)
	require.NoError(t, err)
	for i := range ms.Tris {
		tri := gm.Indexes[3*i : 3*i+3]
		assert.Equal(t, []uint32{uint32(3 * i), uint32(3*i + 1), uint32(3*i + 2)}, tri)
	}
}

func TestDeterministic(t *testing.T) {
	ms := &Mesh{
		Vertices: []math32.Vector3{math32.Vec3(0.1, 0.2, 0.3), math32.Vec3(1.7, -0.3, 0.9), math32.Vec3(-0.4, 1.1, 2.5), math32.Vec3(3, 3, -1)},
		Tris:     []IdTri{{Vertices: [3]int{0, 1, 2}, UVs: noUVs3()}},
		Quads:    []IdQuad{{Vertices: [4]int{0, 1, 3, 2}, UVs: noUVs4()}},
	}
	a, err := NewGPUMesh(ms)
	require.NoError(t, err)
	b, err := NewGPUMesh(ms)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestValidate(t *testing.T) {
	ms := triangleMesh()
	assert.NoError(t, ms.Validate())

	ms.Tris[0].Vertices[2] = 3
	_, err := NewGPUMesh(ms)
	var ie *IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "tri", ie.Face)
	assert.Equal(t, 2, ie.Corner)
	assert.Equal(t, "vertex", ie.Attr)
	assert.Equal(t, 3, ie.Index)
	assert.Equal(t, 3, ie.Len)

	ms = quadMesh()
	ms.Quads[0].UVs[1] = 4
	err = ms.Validate()
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "quad", ie.Face)
	assert.Equal(t, "uv", ie.Attr)

	ms = triangleMesh()
	ms.Tris[0].Vertices[0] = -1
	assert.Error(t, ms.Validate())
}

func TestBounds(t *testing.T) {
	ms := quadMesh()
	ms.Vertices = append(ms.Vertices, math32.Vec3(-1, 0.5, 2))
	bb := ms.Bounds()
	assert.Equal(t, math32.Vec3(-1, 0, 0), bb.Min)
	assert.Equal(t, math32.Vec3(1, 1, 2), bb.Max)
	assert.True(t, (&Mesh{}).Bounds().IsEmpty())
}

func TestVertexAttributes(t *testing.T) {
	assert.Equal(t, 32, GPUVertexSize)
	vas := VertexAttributes("a_pos", "a_normal", "a_uv")
	require.Len(t, vas, 3)
	assert.Equal(t, gpu.NewVertexAttribute("a_pos", gpu.VertexFloat3, 0), vas[0])
	assert.Equal(t, gpu.NewVertexAttribute("a_normal", gpu.VertexFloat3, 12), vas[1])
	assert.Equal(t, gpu.NewVertexAttribute("a_uv", gpu.VertexFloat2, 24), vas[2])
	assert.Len(t, VertexAttributes("a_pos", "", "a_uv"), 2)
}

func TestUpload(t *testing.T) {
	gm, err := NewGPUMesh(quadMesh())
	require.NoError(t, err)
	tb := gputest.New()
	cx := gpu.NewContext(tb)
	vb, ib := gm.Upload(cx)
	assert.Equal(t, len(gm.Vertices), vb.Len())
	assert.Equal(t, GPUVertexSize, vb.Stride())
	assert.Equal(t, gpu.Uint16, ib.Type())
	assert.Equal(t, len(gm.Indexes), ib.Count())
	assert.Equal(t, gpu.ToBytes(gm.Vertices), tb.BufferData(vb.Handle()))

	ev := gm.UploadExpanded(cx)
	assert.Equal(t, len(gm.Indexes), ev.Len())
	exp := gm.Expanded()
	assert.Equal(t, gm.Vertices[8], exp[9])
	assert.Equal(t, gm.Vertices[6], exp[11])
}

func TestUpload32(t *testing.T) {
	gm := &GPUMesh{Vertices: make([]GPUVertex, 1<<16+1), Indexes: []uint32{0, 1, 1 << 16}}
	cx := gpu.NewContext(gputest.New())
	_, ib := gm.Upload(cx)
	assert.Equal(t, gpu.Uint32, ib.Type())
	assert.Equal(t, 3, ib.Count())
}
