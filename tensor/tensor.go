// Copyright 2025 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor is the public API of Ember's N-dimensional buffer: shape
// and dtype introspection, element-wise float arithmetic, and reshape. The
// autodiff engine computes on these buffers but they carry no graph state
// of their own.
package tensor

import (
	"github.com/ember-ml/ember/internal/tensor"
)

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float16 DataType = tensor.Float16
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape represents tensor dimensions. An empty Shape is a scalar.
type Shape = tensor.Shape

// RawTensor is the low-level tensor representation.
type RawTensor = tensor.RawTensor

// NewRaw creates a zero-initialized tensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// FromFloat32 creates a Float32 tensor from a slice of values.
func FromFloat32(values []float32, shape Shape) (*RawTensor, error) {
	return tensor.FromFloat32(values, shape)
}

// FromFloat64 creates a Float64 tensor from a slice of values.
func FromFloat64(values []float64, shape Shape) (*RawTensor, error) {
	return tensor.FromFloat64(values, shape)
}

// FromScalar creates a zero-dimensional tensor holding a single value.
func FromScalar(value float64, dtype DataType) *RawTensor {
	return tensor.FromScalar(value, dtype)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64, dtype DataType) (*RawTensor, error) {
	return tensor.Full(shape, value, dtype)
}

// FullLike creates a tensor with t's shape and dtype, filled with value.
func FullLike(t *RawTensor, value float64) *RawTensor {
	return tensor.FullLike(t, value)
}

// ZerosLike creates a zero tensor with t's shape and dtype.
func ZerosLike(t *RawTensor) *RawTensor {
	return tensor.ZerosLike(t)
}

// OnesLike creates a ones tensor with t's shape and dtype.
func OnesLike(t *RawTensor) *RawTensor {
	return tensor.OnesLike(t)
}

// Add performs element-wise addition.
func Add(a, b *RawTensor) *RawTensor { return tensor.Add(a, b) }

// Sub performs element-wise subtraction.
func Sub(a, b *RawTensor) *RawTensor { return tensor.Sub(a, b) }

// Mul performs element-wise multiplication.
func Mul(a, b *RawTensor) *RawTensor { return tensor.Mul(a, b) }

// Div performs element-wise division.
func Div(a, b *RawTensor) *RawTensor { return tensor.Div(a, b) }

// Neg negates every element.
func Neg(x *RawTensor) *RawTensor { return tensor.Neg(x) }

// Exp computes the element-wise exponential.
func Exp(x *RawTensor) *RawTensor { return tensor.Exp(x) }

// Sin computes the element-wise sine.
func Sin(x *RawTensor) *RawTensor { return tensor.Sin(x) }

// Cos computes the element-wise cosine.
func Cos(x *RawTensor) *RawTensor { return tensor.Cos(x) }

// Tanh computes the element-wise hyperbolic tangent.
func Tanh(x *RawTensor) *RawTensor { return tensor.Tanh(x) }

// Sqrt computes the element-wise square root.
func Sqrt(x *RawTensor) *RawTensor { return tensor.Sqrt(x) }

// Pow raises every element to the constant power c.
func Pow(x *RawTensor, c float64) *RawTensor { return tensor.Pow(x, c) }

// Sum reduces every element into a zero-dimensional scalar.
func Sum(x *RawTensor) *RawTensor { return tensor.Sum(x) }

// AddScalar adds the scalar s to every element.
func AddScalar(x *RawTensor, s float64) *RawTensor { return tensor.AddScalar(x, s) }

// MulScalar multiplies every element by the scalar s.
func MulScalar(x *RawTensor, s float64) *RawTensor { return tensor.MulScalar(x, s) }

// Reshape returns a tensor with the same elements and a different shape.
func Reshape(x *RawTensor, newShape Shape) (*RawTensor, error) {
	return tensor.Reshape(x, newShape)
}

// AllClose reports whether two tensors match element-wise within rtol.
func AllClose(a, b *RawTensor, rtol float64) bool {
	return tensor.AllClose(a, b, rtol)
}
