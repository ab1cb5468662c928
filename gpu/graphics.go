// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"reflect"

	"cogentcore.org/core/base/errors"
)

// Draw draws all of the vertices of the VertexBuffer as a triangle
// list, using the Program, with uniform values from the given
// UniformBlock, which must be a pointer to the block struct.
// The UniformBlock can be nil if the program has no resolved uniforms.
// Errors are only returned for programmer errors: released resources,
// or a UniformBlock that does not provide a resolved uniform.
// Nothing is drawn in that case.
func (cx *Context) Draw(pr *Program, vb *VertexBuffer, u UniformBlock) error {
	return errors.Log(cx.draw(pr, vb, nil, u))
}

// DrawIndexed draws all of the indexes of the IndexBuffer as a triangle
// list of the vertices in the VertexBuffer, using the Program, with
// uniform values from the given UniformBlock. See Draw for details.
func (cx *Context) DrawIndexed(pr *Program, vb *VertexBuffer, ib *IndexBuffer, u UniformBlock) error {
	if ib == nil {
		return errors.Log(fmt.Errorf("gpu.DrawIndexed: IndexBuffer is nil"))
	}
	return errors.Log(cx.draw(pr, vb, ib, u))
}

// draw implements the draw protocol under the Context lock: activate
// the program, bind the vertex buffer and each resolved attribute,
// bind the index buffer, upload each resolved uniform, draw, and then
// disable the attributes that were enabled.
func (cx *Context) draw(pr *Program, vb *VertexBuffer, ib *IndexBuffer, u UniformBlock) error {
	if pr == nil || vb == nil {
		return fmt.Errorf("gpu.Draw: Program and VertexBuffer must be non-nil")
	}
	cx.mu.Lock()
	defer cx.mu.Unlock()

	if pr.handle == 0 || vb.handle == 0 || (ib != nil && ib.handle == 0) {
		return ErrReleased
	}
	if pr.cx != cx || vb.cx != cx || (ib != nil && ib.cx != cx) {
		return fmt.Errorf("gpu.Draw: Program %s and buffers must belong to this Context", pr.name)
	}

	b := cx.Backend
	cx.useProgram(pr.handle)
	cx.bindBuffer(ArrayBuffer, vb.handle)
	enabled := make([]uint32, 0, len(pr.attributes))
	defer func() {
		for _, loc := range enabled {
			b.DisableVertexAttrib(loc)
		}
	}()
	for _, as := range pr.attributes {
		if as.Location == NotFound {
			continue
		}
		loc := uint32(as.Location)
		f := as.Format
		b.VertexAttribPointer(loc, f.Components(), f.ScalarType(), f.Normalized(), vb.stride, as.Offset)
		b.EnableVertexAttrib(loc)
		enabled = append(enabled, loc)
	}
	if ib != nil {
		cx.bindBuffer(ElementArrayBuffer, ib.handle)
	}
	if err := cx.setUniforms(pr, u); err != nil {
		return err
	}
	if ib != nil {
		b.DrawElements(ib.Count(), ib.typ, 0)
	} else {
		b.DrawArrays(0, vb.Len())
	}
	return nil
}

// setUniforms uploads the value of each resolved uniform of the program,
// read from the block at the offset given by the block's layout.
func (cx *Context) setUniforms(pr *Program, u UniformBlock) error {
	resolved := 0
	for _, us := range pr.uniforms {
		if us.Location != NotFound {
			resolved++
		}
	}
	if resolved == 0 {
		return nil
	}
	if u == nil {
		return fmt.Errorf("gpu.Draw: Program %s has %d resolved uniforms but the UniformBlock is nil", pr.name, resolved)
	}
	data, err := blockBytes(u)
	if err != nil {
		return err
	}
	layout := u.UniformLayout()
	idxs := pr.layoutIndexes(reflect.TypeOf(u), layout)
	b := cx.Backend
	for si, us := range pr.uniforms {
		if us.Location == NotFound {
			continue
		}
		li := idxs[si]
		if li < 0 || li >= len(layout) || layout[li].Name != us.Name {
			return fmt.Errorf("gpu.Draw: Program %s: uniform %q is not in the layout of %T", pr.name, us.Name, u)
		}
		ud := &layout[li]
		if ud.Type != us.Type {
			return fmt.Errorf("gpu.Draw: Program %s: uniform %q is %s in the program but %s in %T", pr.name, us.Name, us.Type, ud.Type, u)
		}
		if err := ud.checkRange(len(data)); err != nil {
			return err
		}
		n := min(ud.N(), us.N())
		switch {
		case ud.Type.IsMatrix():
			b.UniformMatrixfv(us.Location, ud.Type.MatrixDim(), n, ud.readFloats(data))
		case ud.Type.IsInt():
			b.Uniformiv(us.Location, ud.Type.Components(), n, ud.readInts(data))
		default:
			b.Uniformfv(us.Location, ud.Type.Components(), n, ud.readFloats(data))
		}
	}
	return nil
}
