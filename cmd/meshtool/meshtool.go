// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command meshtool reports on and views Wavefront OBJ meshes,
// drawn flat shaded through the gpu package.
package main

import (
	"fmt"
	"io"
	"os"

	"cogentcore.org/core/cli"
	"cogentcore.org/glmesh/gpu"
	"cogentcore.org/glmesh/gpu/gputest"
	"cogentcore.org/glmesh/mesh"
	"cogentcore.org/glmesh/mesh/obj"
)

// Config is the configuration information for the meshtool cli.
// Defaults can also be set in a meshtool.toml file.
type Config struct {

	// File is the obj file to load.
	File string `posarg:"0"`

	// Check uploads and draws the mesh once through a headless backend,
	// checking that the draw protocol completes.
	Check bool `cmd:"info" flag:"check"`

	// Width is the initial window width.
	Width int `cmd:"view" default:"800"`

	// Height is the initial window height.
	Height int `cmd:"view" default:"600"`

	// Indexed draws with an index buffer, instead of a buffer
	// with one vertex per index.
	Indexed bool `cmd:"view" default:"true"`

	// Watch reloads the mesh when the file changes.
	Watch bool `cmd:"view" flag:"w,watch"`

	// Speed is the orbit speed of the camera, in radians per second.
	Speed float32 `cmd:"view" default:"0.5"`
}

func main() {
	opts := cli.DefaultOptions("meshtool", "Meshtool reports on and views Wavefront OBJ meshes.")
	opts.DefaultFiles = []string{"meshtool.toml"}
	cli.Run(opts, &Config{}, Info, View)
}

// Info prints the contents of the obj file and its GPU mesh.
func Info(c *Config) error {
	return info(os.Stdout, c)
}

func info(w io.Writer, c *Config) error {
	ms, dec, err := obj.Open(c.File)
	if err != nil {
		return err
	}
	gm, err := mesh.NewGPUMesh(ms)
	if err != nil {
		return err
	}
	bb := ms.Bounds()
	fmt.Fprintf(w, "%s\n", c.File)
	fmt.Fprintf(w, "\tpositions:\t%d\n", len(ms.Vertices))
	fmt.Fprintf(w, "\tuvs:\t\t%d\n", len(ms.UVs))
	fmt.Fprintf(w, "\ttriangles:\t%d\n", len(ms.Tris))
	fmt.Fprintf(w, "\tquads:\t\t%d\n", len(ms.Quads))
	fmt.Fprintf(w, "\tgpu vertices:\t%d\n", len(gm.Vertices))
	fmt.Fprintf(w, "\tgpu triangles:\t%d\n", gm.NumTriangles())
	fmt.Fprintf(w, "\tbounds:\t\t%v - %v\n", bb.Min, bb.Max)
	for k := obj.LineKinds(0); k < obj.LineKindsN; k++ {
		fmt.Fprintf(w, "\t%s lines:\t%d\n", k, dec.Stats[k])
	}
	for _, wr := range dec.Warnings {
		fmt.Fprintf(w, "\twarning: %s\n", wr)
	}
	if !c.Check {
		return nil
	}
	if err := check(c.File); err != nil {
		return err
	}
	fmt.Fprintf(w, "\tcheck:\t\tok\n")
	return nil
}

// check draws the mesh once, indexed and expanded,
// through a headless recording backend.
func check(file string) error {
	tb := gputest.New()
	cx := gpu.NewContext(tb)
	pr, err := cx.NewProgram(flatProgram())
	if err != nil {
		return err
	}
	defer pr.Release()
	for _, indexed := range []bool{true, false} {
		sc, err := loadScene(cx, file, indexed)
		if err != nil {
			return err
		}
		err = sc.draw(pr, newUniforms())
		sc.release()
		if err != nil {
			return err
		}
		d := tb.Draws[len(tb.Draws)-1]
		if d.Count != 3*sc.triangles {
			return fmt.Errorf("meshtool: check: drew %d vertices, expected %d", d.Count, 3*sc.triangles)
		}
	}
	if en := tb.Enabled(); len(en) > 0 {
		return fmt.Errorf("meshtool: check: attributes %v left enabled", en)
	}
	return nil
}
