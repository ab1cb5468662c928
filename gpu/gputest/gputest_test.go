// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gputest

import (
	"testing"

	"cogentcore.org/glmesh/gpu"
	"github.com/stretchr/testify/assert"
)

func TestLocations(t *testing.T) {
	tb := New()
	vs, ok := tb.CompileShader(gpu.VertexShader, `#version 120
attribute highp vec3 a_pos;
  attribute vec2 a_uv ;
uniform mat4 u_mvp;
uniform vec4 u_lights[4];
// attribute vec3 a_commented;
void main() {}
`)
	assert.True(t, ok)
	fs, ok := tb.CompileShader(gpu.FragmentShader, "uniform vec4 u_lights[4];\nuniform float u_alpha;\nvoid main() {}\n")
	assert.True(t, ok)
	pr, ok := tb.LinkProgram(vs, fs)
	assert.True(t, ok)

	assert.Equal(t, int32(0), tb.AttribLocation(pr, "a_pos"))
	assert.Equal(t, int32(1), tb.AttribLocation(pr, "a_uv"))
	assert.Equal(t, gpu.NotFound, tb.AttribLocation(pr, "a_commented"))
	assert.Equal(t, int32(0), tb.UniformLocation(pr, "u_mvp"))
	assert.Equal(t, int32(1), tb.UniformLocation(pr, "u_lights"))
	assert.Equal(t, int32(2), tb.UniformLocation(pr, "u_alpha"))
	assert.Equal(t, gpu.NotFound, tb.UniformLocation(pr+1, "u_alpha"))
}

func TestDelete(t *testing.T) {
	tb := New()
	sh, ok := tb.CompileShader(gpu.FragmentShader, "#error nope\n")
	assert.False(t, ok)
	assert.Equal(t, "ERROR: 0:1: #error nope", tb.ShaderLog(sh))
	assert.Equal(t, 1, tb.Live(Shader))
	tb.DeleteShader(sh)
	assert.Equal(t, 0, tb.Live(Shader))
	assert.Empty(t, tb.Errors)
	tb.DeleteShader(sh)
	assert.Len(t, tb.Errors, 1)

	b := tb.CreateBuffer(gpu.ArrayBuffer, []byte{1, 2, 3})
	assert.Equal(t, []byte{1, 2, 3}, tb.BufferData(b))
	tb.DeleteProgram(b)
	assert.Len(t, tb.Errors, 2)
	assert.Equal(t, 1, tb.Live(Buffer))
}
