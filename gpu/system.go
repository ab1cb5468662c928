// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"sync"
)

// Context owns the binding state of one graphics context: the active
// program and the buffers bound to each target. All Programs and
// buffers are created from a Context and must only be used with it.
// Every creation, release and draw call holds the Context lock for
// its whole duration, so a sequence that depends on binding state
// (e.g., binding attributes and then drawing) cannot be interleaved
// with another one.
type Context struct {

	// Backend implements the raw graphics API calls.
	Backend Backend

	mu sync.Mutex

	// program is the currently active program.
	program uint32

	// buffers are the currently bound buffers, by target.
	buffers [2]uint32
}

// NewContext returns a new Context using the given Backend.
// The graphics context the backend talks to must be current
// on the calling thread whenever the Context is used.
func NewContext(b Backend) *Context {
	return &Context{Backend: b}
}

// CurrentProgram returns the handle of the active program, 0 if none.
func (cx *Context) CurrentProgram() uint32 {
	cx.mu.Lock()
	defer cx.mu.Unlock()
	return cx.program
}

// CurrentBuffer returns the handle of the buffer bound to the
// given target, 0 if none. Note that creating a buffer binds it.
func (cx *Context) CurrentBuffer(target BufferTargets) uint32 {
	cx.mu.Lock()
	defer cx.mu.Unlock()
	return cx.buffers[target]
}

func (cx *Context) useProgram(handle uint32) {
	cx.Backend.UseProgram(handle)
	cx.program = handle
}

func (cx *Context) bindBuffer(target BufferTargets, handle uint32) {
	cx.Backend.BindBuffer(target, handle)
	cx.buffers[target] = handle
}

// forget clears any binding state that refers to a released handle.
// Programs and buffers live in different namespaces, hence the flag.
func (cx *Context) forget(handle uint32, isProgram bool) {
	if isProgram {
		if cx.program == handle {
			cx.program = 0
		}
		return
	}
	for i, b := range cx.buffers {
		if b == handle {
			cx.buffers[i] = 0
		}
	}
}
