// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"unsafe"

	"cogentcore.org/core/math32"
	"cogentcore.org/glmesh/gpu"
)

// GPUVertex is one vertex record of a GPUMesh, as uploaded
// to a gpu.VertexBuffer.
type GPUVertex struct {
	Pos    math32.Vector3
	Normal math32.Vector3
	UV     math32.Vector2
}

// GPUVertexSize is the size of a GPUVertex in bytes,
// which is the stride of its vertex buffer.
const GPUVertexSize = int(unsafe.Sizeof(GPUVertex{}))

// VertexAttributes returns the vertex attributes for a GPUVertex
// buffer, using the given shader attribute names. An empty name
// omits that attribute.
func VertexAttributes(pos, normal, uv string) []gpu.VertexAttribute {
	var vas []gpu.VertexAttribute
	if pos != "" {
		vas = append(vas, gpu.NewVertexAttribute(pos, gpu.VertexFloat3, int(unsafe.Offsetof(GPUVertex{}.Pos))))
	}
	if normal != "" {
		vas = append(vas, gpu.NewVertexAttribute(normal, gpu.VertexFloat3, int(unsafe.Offsetof(GPUVertex{}.Normal))))
	}
	if uv != "" {
		vas = append(vas, gpu.NewVertexAttribute(uv, gpu.VertexFloat2, int(unsafe.Offsetof(GPUVertex{}.UV))))
	}
	return vas
}

// GPUMesh is a flat-shaded triangle mesh ready to upload:
// every face corner has its own vertex carrying the face normal,
// and Indexes lists the triangles, three per triangle.
type GPUMesh struct {
	Vertices []GPUVertex
	Indexes  []uint32
}

// NewGPUMesh builds the GPUMesh for the given Mesh, after checking that
// all of its face indexes are in range with Mesh.Validate.
// Each triangle emits 3 vertices and each quad 4, all sharing the
// face normal computed from the first three corners, and quads are
// split into the triangles (0, 1, 2) and (2, 3, 0). Corners with
// a uv index of NoIndex get a zero uv.
//
// The uv of a corner is Mesh.UVs at its uv index. Older loaders of this
// format looked the uv index up in Mesh.Vertices instead, so meshes whose
// uvs were tuned against that behavior will render differently.
func NewGPUMesh(ms *Mesh) (*GPUMesh, error) {
	if err := ms.Validate(); err != nil {
		return nil, err
	}
	nv := 3*len(ms.Tris) + 4*len(ms.Quads)
	gm := &GPUMesh{
		Vertices: make([]GPUVertex, 0, nv),
		Indexes:  make([]uint32, 0, 3*ms.NumTriangles()),
	}
	for _, t := range ms.Tris {
		idx := uint32(len(gm.Vertices))
		gm.addFace(ms, t.Vertices[:], t.UVs[:])
		gm.Indexes = append(gm.Indexes, idx, idx+1, idx+2)
	}
	for _, q := range ms.Quads {
		idx := uint32(len(gm.Vertices))
		gm.addFace(ms, q.Vertices[:], q.UVs[:])
		gm.Indexes = append(gm.Indexes, idx, idx+1, idx+2, idx+2, idx+3, idx)
	}
	return gm, nil
}

func (gm *GPUMesh) addFace(ms *Mesh, verts, uvs []int) {
	n := FaceNormal(ms.Vertices[verts[0]], ms.Vertices[verts[1]], ms.Vertices[verts[2]])
	for c, vi := range verts {
		gv := GPUVertex{Pos: ms.Vertices[vi], Normal: n}
		if ui := uvs[c]; ui != NoIndex {
			uv := ms.UVs[ui]
			gv.UV = math32.Vec2(uv.X, uv.Y)
		}
		gm.Vertices = append(gm.Vertices, gv)
	}
}

// FaceNormal returns the unit normal of the counter-clockwise
// triangle a, b, c: normalize((b - a) x (c - a)).
// A degenerate triangle has a zero normal.
func FaceNormal(a, b, c math32.Vector3) math32.Vector3 {
	n := b.Sub(a).Cross(c.Sub(a))
	l := n.Length()
	if l == 0 {
		return math32.Vector3{}
	}
	return n.DivScalar(l)
}

// NumTriangles returns the number of triangles in Indexes.
func (gm *GPUMesh) NumTriangles() int {
	return len(gm.Indexes) / 3
}

// Expanded returns one vertex per index, for drawing
// without an index buffer.
func (gm *GPUMesh) Expanded() []GPUVertex {
	vs := make([]GPUVertex, len(gm.Indexes))
	for i, idx := range gm.Indexes {
		vs[i] = gm.Vertices[idx]
	}
	return vs
}

// Upload uploads the vertices and indexes of the mesh to new
// buffers of the given Context. The indexes are 16 bit if
// all vertices can be addressed that way, 32 bit otherwise.
func (gm *GPUMesh) Upload(cx *gpu.Context) (*gpu.VertexBuffer, *gpu.IndexBuffer) {
	vb := gpu.NewVertexBufferFrom(cx, gm.Vertices)
	if len(gm.Vertices) <= 1<<16 {
		idxs := make([]uint16, len(gm.Indexes))
		for i, idx := range gm.Indexes {
			idxs[i] = uint16(idx)
		}
		return vb, cx.NewIndexBuffer16(idxs)
	}
	return vb, cx.NewIndexBuffer32(gm.Indexes)
}

// UploadExpanded uploads the Expanded vertices of the mesh to a new
// vertex buffer of the given Context, for use with gpu.Context.Draw.
func (gm *GPUMesh) UploadExpanded(cx *gpu.Context) *gpu.VertexBuffer {
	return gpu.NewVertexBufferFrom(cx, gm.Expanded())
}
