// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/math32"
	"cogentcore.org/glmesh/gpu"
	"cogentcore.org/glmesh/gpu/glgpu"
	"github.com/fsnotify/fsnotify"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// the OpenGL context is bound to the main thread
	runtime.LockOSThread()
}

// View opens a window showing the mesh of the obj file, flat shaded,
// with the camera orbiting around it.
func View(c *Config) error {
	if err := glfw.Init(); err != nil {
		return errors.Log(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	win, err := glfw.CreateWindow(c.Width, c.Height, "meshtool: "+filepath.Base(c.File), nil, nil)
	if err != nil {
		return errors.Log(err)
	}
	defer win.Destroy()
	win.MakeContextCurrent()
	glfw.SwapInterval(1)
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	be, err := glgpu.New()
	if err != nil {
		return err
	}
	cx := gpu.NewContext(be)
	pr, err := cx.NewProgram(flatProgram())
	if err != nil {
		return err
	}
	defer pr.Release()
	logx.PrintlnDebug(pr.String())

	sc, err := loadScene(cx, c.File, c.Indexed)
	if err != nil {
		return err
	}
	defer func() { sc.release() }()
	slog.Info("meshtool: loaded", "file", c.File, "triangles", sc.triangles)

	var reload <-chan struct{}
	if c.Watch {
		w, ch, err := watchFile(c.File)
		if err != nil {
			return err
		}
		defer w.Close()
		reload = ch
	}

	u := newUniforms()
	start := time.Now()
	for !win.ShouldClose() {
		select {
		case <-reload:
			nsc, err := loadScene(cx, c.File, c.Indexed)
			if err != nil {
				slog.Error("meshtool: reload failed, keeping previous mesh", "file", c.File, "err", err)
				break
			}
			sc.release()
			sc = nsc
			slog.Info("meshtool: reloaded", "file", c.File, "triangles", sc.triangles)
		default:
		}

		fw, fh := win.GetFramebufferSize()
		be.Viewport(fw, fh)
		be.Clear(0.1, 0.1, 0.12, 1)
		angle := c.Speed * float32(time.Since(start).Seconds())
		setCamera(u, sc.bounds, angle, float32(fw)/float32(max(fh, 1)))
		if err := sc.draw(pr, u); err != nil {
			return err
		}
		win.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// setCamera sets the view and projection of u for a camera
// orbiting around the center of the given bounds.
func setCamera(u *Uniforms, bb math32.Box3, angle, aspect float32) {
	target := bb.Center()
	size := bb.Size()
	dist := 1.5*max(size.X, size.Y, size.Z) + 0.01
	campos := target.Add(math32.Vec3(dist*math32.Sin(angle), 0.4*dist, dist*math32.Cos(angle)))

	var lookq math32.Quat
	lookq.SetFromRotationMatrix(math32.NewLookAt(campos, target, math32.Vec3(0, 1, 0)))
	scale := math32.Vec3(1, 1, 1)
	var cview math32.Matrix4
	cview.SetTransform(campos, lookq, scale)
	view, _ := cview.Inverse()
	u.View.CopyFrom(view)
	u.Projection.SetPerspective(45, aspect, 0.01*dist, 10*dist)
}

// watchFile watches the directory of the given file, and sends on
// the returned channel when the file is written or replaced.
// Events that arrive while a reload is pending are merged.
func watchFile(file string) (*fsnotify.Watcher, <-chan struct{}, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, errors.Log(err)
	}
	abs, err := filepath.Abs(file)
	if err != nil {
		w.Close()
		return nil, nil, err
	}
	// editors often replace the file, so the directory is watched
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, nil, fmt.Errorf("meshtool: watching %s: %w", file, err)
	}
	ch := make(chan struct{}, 1)
	go func() {
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					select {
					case ch <- struct{}{}:
					default:
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Error("meshtool: file watcher", "err", err)
			}
		}
	}()
	return w, ch, nil
}
