// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	_ "embed"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/glmesh/gpu"
	"cogentcore.org/glmesh/mesh"
	"cogentcore.org/glmesh/mesh/obj"
)

//go:embed shaders/flat.vert
var flatVert string

//go:embed shaders/flat.frag
var flatFrag string

// Uniforms are the uniform values of the flat shading program.
type Uniforms struct {
	Model      math32.Matrix4 `uniform:"u_model"`
	View       math32.Matrix4 `uniform:"u_view"`
	Projection math32.Matrix4 `uniform:"u_projection"`
	Color      math32.Vector4 `uniform:"u_color"`
	LightDir   math32.Vector3 `uniform:"u_light_dir"`
}

var uniformsLayout = errors.Log1(gpu.UniformLayoutOf(&Uniforms{}))

func (u *Uniforms) UniformLayout() []gpu.UniformData {
	return uniformsLayout
}

// newUniforms returns Uniforms with identity matricies
// and the default color and light.
func newUniforms() *Uniforms {
	u := &Uniforms{
		Color:    math32.Vector4{X: 0.8, Y: 0.6, Z: 0.3, W: 1},
		LightDir: math32.Vec3(0.3, 1, 0.6),
	}
	u.Model.SetIdentity()
	u.View.SetIdentity()
	u.Projection.SetIdentity()
	return u
}

// flatProgram returns the ProgramDesc of the flat shading program.
func flatProgram() *gpu.ProgramDesc {
	return &gpu.ProgramDesc{
		Name:           "flat",
		VertexSource:   flatVert,
		FragmentSource: flatFrag,
		Attributes:     mesh.VertexAttributes("a_pos", "a_normal", "a_uv"),
		Uniforms:       gpu.Uniforms(uniformsLayout),
	}
}

// scene has the GPU buffers of one loaded mesh file.
type scene struct {
	cx *gpu.Context
	vb *gpu.VertexBuffer

	// ib is nil when drawing expanded vertices without indexes.
	ib *gpu.IndexBuffer

	bounds    math32.Box3
	triangles int
	warnings  []string
}

// loadScene loads the given obj file and uploads its GPU mesh
// to new buffers of the Context.
func loadScene(cx *gpu.Context, file string, indexed bool) (*scene, error) {
	ms, dec, err := obj.Open(file)
	if err != nil {
		return nil, err
	}
	gm, err := mesh.NewGPUMesh(ms)
	if err != nil {
		return nil, err
	}
	sc := &scene{cx: cx, bounds: ms.Bounds(), triangles: gm.NumTriangles(), warnings: dec.Warnings}
	if indexed {
		sc.vb, sc.ib = gm.Upload(cx)
	} else {
		sc.vb = gm.UploadExpanded(cx)
	}
	return sc, nil
}

func (sc *scene) draw(pr *gpu.Program, u *Uniforms) error {
	if sc.ib != nil {
		return sc.cx.DrawIndexed(pr, sc.vb, sc.ib, u)
	}
	return sc.cx.Draw(pr, sc.vb, u)
}

func (sc *scene) release() {
	sc.vb.Release()
	if sc.ib != nil {
		sc.ib.Release()
	}
}
