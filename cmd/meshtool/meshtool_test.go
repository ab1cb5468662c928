// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/glmesh/gpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cubeFile = "../../mesh/obj/testdata/cube.obj"

func TestInfo(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, info(&b, &Config{File: cubeFile, Check: true}))
	out := b.String()
	assert.Contains(t, out, "quads:\t\t6")
	assert.Contains(t, out, "gpu vertices:\t24")
	assert.Contains(t, out, "gpu triangles:\t12")
	assert.Contains(t, out, "Unknown lines:\t4")
	assert.Contains(t, out, "check:\t\tok")
}

func TestInfoErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.obj")
	require.NoError(t, os.WriteFile(bad, []byte("v 1 2\n"), 0o644))
	assert.Error(t, info(&bytes.Buffer{}, &Config{File: bad}))

	oob := filepath.Join(dir, "oob.obj")
	require.NoError(t, os.WriteFile(oob, []byte("v 0 0 0\nf 1 2 3\n"), 0o644))
	assert.Error(t, info(&bytes.Buffer{}, &Config{File: oob}))

	assert.Error(t, info(&bytes.Buffer{}, &Config{File: filepath.Join(dir, "nonesuch.obj")}))
}

func TestUniformsLayout(t *testing.T) {
	require.Len(t, uniformsLayout, 5)
	assert.Equal(t, "u_model", uniformsLayout[0].Name)
	assert.Equal(t, gpu.UniformFloat4x4, uniformsLayout[2].Type)
	assert.Equal(t, 128, uniformsLayout[2].Offset)
	assert.Equal(t, gpu.UniformFloat3, uniformsLayout[4].Type)
	assert.Equal(t, 208, uniformsLayout[4].Offset)
}

func TestSetCamera(t *testing.T) {
	u := newUniforms()
	bb := math32.B3(-1, -1, -1, 1, 1, 1)
	setCamera(u, bb, 0, 1.5)
	var id math32.Matrix4
	id.SetIdentity()
	assert.NotEqual(t, id, u.View)
	assert.NotEqual(t, id, u.Projection)
	assert.Equal(t, id, u.Model)
}
