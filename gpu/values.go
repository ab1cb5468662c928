// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"strings"
	"unsafe"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// ToBytes returns the memory of the given slice as a byte slice,
// without copying. It is used to upload vertex and index data.
func ToBytes[E any](s []E) []byte {
	if len(s) == 0 {
		return nil
	}
	var e E
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(e)))
}

// blockBytes returns the memory of the struct pointed to by the
// given UniformBlock, which must be a non-nil pointer.
func blockBytes(u UniformBlock) ([]byte, error) {
	v := reflect.ValueOf(u)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return nil, fmt.Errorf("gpu.UniformBlock: value of type %T must be a non-nil pointer", u)
	}
	sz := int(v.Elem().Type().Size())
	if sz == 0 {
		return nil, nil
	}
	return unsafe.Slice((*byte)(v.UnsafePointer()), sz), nil
}

// checkRange returns an error if the value of ud does not fit in
// a block of n bytes.
func (ud *UniformData) checkRange(n int) error {
	if ud.Offset < 0 || ud.Offset+ud.Bytes() > n {
		return fmt.Errorf("gpu.UniformData %s: offset %d + size %d is outside of uniform block of %d bytes", ud.Name, ud.Offset, ud.Bytes(), n)
	}
	return nil
}

// readFloats reads the float values for ud out of block data.
func (ud *UniformData) readFloats(data []byte) []float32 {
	n := ud.N() * ud.Type.Components()
	vals := make([]float32, n)
	for i := range vals {
		off := ud.Offset + 4*i
		vals[i] = math.Float32frombits(binary.NativeEndian.Uint32(data[off:]))
	}
	return vals
}

// readInts reads the int values for ud out of block data.
func (ud *UniformData) readInts(data []byte) []int32 {
	n := ud.N() * ud.Type.Components()
	vals := make([]int32, n)
	for i := range vals {
		off := ud.Offset + 4*i
		vals[i] = int32(binary.NativeEndian.Uint32(data[off:]))
	}
	return vals
}

var (
	typeVector2  = reflect.TypeFor[math32.Vector2]()
	typeVector3  = reflect.TypeFor[math32.Vector3]()
	typeVector4  = reflect.TypeFor[math32.Vector4]()
	typeVector2i = reflect.TypeFor[math32.Vector2i]()
	typeVector3i = reflect.TypeFor[math32.Vector3i]()
	typeMatrix3  = reflect.TypeFor[math32.Matrix3]()
	typeMatrix4  = reflect.TypeFor[math32.Matrix4]()
)

// uniformTypeOf returns the UniformTypes for a Go type, and
// the number of array elements it holds.
func uniformTypeOf(t reflect.Type, asMat2 bool) (UniformTypes, int, bool) {
	switch t {
	case typeVector2:
		return UniformFloat2, 1, true
	case typeVector3:
		return UniformFloat3, 1, true
	case typeVector4:
		return UniformFloat4, 1, true
	case typeVector2i:
		return UniformInt2, 1, true
	case typeVector3i:
		return UniformInt3, 1, true
	case typeMatrix3:
		return UniformFloat3x3, 1, true
	case typeMatrix4:
		return UniformFloat4x4, 1, true
	}
	switch t.Kind() {
	case reflect.Float32:
		return UniformFloat, 1, true
	case reflect.Int32:
		return UniformInt, 1, true
	case reflect.Array:
		el := t.Elem()
		n := t.Len()
		switch el.Kind() {
		case reflect.Float32:
			if asMat2 && n == 4 {
				return UniformFloat2x2, 1, true
			}
			if n >= 2 && n <= 4 {
				return UniformFloat + UniformTypes(n-1), 1, true
			}
			return UniformFloat, n, true
		case reflect.Int32:
			if n >= 2 && n <= 4 {
				return UniformInt + UniformTypes(n-1), 1, true
			}
			return UniformInt, n, true
		}
		et, en, ok := uniformTypeOf(el, asMat2)
		if !ok || en != 1 {
			return 0, 0, false
		}
		return et, n, true
	}
	return 0, 0, false
}

// UniformLayoutOf returns the UniformData layout for the given struct
// (or pointer to struct), using the fields that have a `uniform:"name"`
// tag. The uniform type is determined by the Go type of the field:
// float32, int32, arrays of those, math32 vectors and matricies,
// and arrays of vectors and matricies. A [4]float32 field is a vec4
// unless the tag has the mat2 option: `uniform:"rot,mat2"`.
// Offsets come from the field offsets, so the layout always matches
// the actual memory of the struct.
func UniformLayoutOf(block any) ([]UniformData, error) {
	t := reflect.TypeOf(block)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("gpu.UniformLayoutOf: type %T is not a struct", block)
	}
	var layout []UniformData
	var errs []error
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag, ok := f.Tag.Lookup("uniform")
		if !ok || tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		typ, n, ok := uniformTypeOf(f.Type, opts == "mat2")
		if !ok {
			errs = append(errs, fmt.Errorf("gpu.UniformLayoutOf: field %s.%s of type %s is not a supported uniform type", t.Name(), f.Name, f.Type))
			continue
		}
		layout = append(layout, NewUniformData(name, typ, n, int(f.Offset)))
	}
	return layout, errors.Join(errs...)
}
