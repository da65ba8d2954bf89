// Copyright 2025 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff is the public API of the Ember reverse-mode automatic
// differentiation engine.
//
// Operations on Variables build a dynamic computation graph as they run;
// calling Backward on an output walks the graph back to its leaves and
// accumulates gradients.
//
// Example:
//
//	x := autodiff.NewVariable(tensor.FromScalar(2, tensor.Float64))
//	y := autodiff.Square(x) // y = x²
//	y.Backward(false)
//	fmt.Println(x.Grad())   // dy/dx = 2x = 4
//
// New differentiable operations are implemented by embedding FunctionBase,
// overriding Forward and Backward, and dispatching through Apply; no
// registration is needed.
package autodiff

import (
	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/autodiff/ops"
	"github.com/ember-ml/ember/internal/tensor"
)

// Variable is a node in the computation graph: value, gradient and creator
// back-link.
type Variable = autodiff.Variable

// Function is the differentiable-operation contract.
type Function = autodiff.Function

// FunctionBase carries the graph bookkeeping every operation embeds.
type FunctionBase = autodiff.FunctionBase

// NewVariable creates a leaf Variable.
func NewVariable(data *tensor.RawTensor) *Variable {
	return autodiff.NewVariable(data)
}

// NewNamedVariable creates a leaf Variable with a display name.
func NewNamedVariable(data *tensor.RawTensor, name string) *Variable {
	return autodiff.NewNamedVariable(data, name)
}

// Apply dispatches a Function over inputs, recording graph metadata when
// backprop is enabled.
func Apply(f Function, inputs ...*Variable) []*Variable {
	return autodiff.Apply(f, inputs...)
}

// Apply1 is Apply for the common single-output case.
func Apply1(f Function, inputs ...*Variable) *Variable {
	return autodiff.Apply1(f, inputs...)
}

// IsBackpropEnabled reports whether forward evaluation records graph
// metadata.
func IsBackpropEnabled() bool {
	return autodiff.IsBackpropEnabled()
}

// SetBackprop sets the graph-building flag and returns a restore function
// for defer.
func SetBackprop(enabled bool) (restore func()) {
	return autodiff.SetBackprop(enabled)
}

// UsingBackprop runs fn with the graph-building flag overridden, restoring
// the prior value on every exit path.
func UsingBackprop(enabled bool, fn func()) {
	autodiff.UsingBackprop(enabled, fn)
}

// NoGrad runs fn with graph building disabled.
func NoGrad(fn func()) {
	autodiff.NoGrad(fn)
}

// DotGraph renders the graph that produced output as Graphviz DOT text.
func DotGraph(output *Variable, verbose bool) string {
	return autodiff.DotGraph(output, verbose)
}

// DefaultEps is the perturbation NumericalDiff uses when eps <= 0.
const DefaultEps = autodiff.DefaultEps

// NumericalDiff approximates df/dx at x with central differences, for
// cross-checking analytic gradients.
func NumericalDiff(f func(*Variable) *Variable, x *Variable, eps float64) *tensor.RawTensor {
	return autodiff.NumericalDiff(f, x, eps)
}

// Neg computes -x.
func Neg(x *Variable) *Variable { return ops.Neg(x) }

// Pow raises x to the constant power c.
func Pow(x *Variable, c float64) *Variable { return ops.Pow(x, c) }

// Square computes x².
func Square(x *Variable) *Variable { return ops.Square(x) }

// Exp computes e^x.
func Exp(x *Variable) *Variable { return ops.Exp(x) }

// Add computes x0 + x1 element-wise.
func Add(x0, x1 *Variable) *Variable { return ops.Add(x0, x1) }

// Sub computes x0 - x1 element-wise.
func Sub(x0, x1 *Variable) *Variable { return ops.Sub(x0, x1) }

// Mul computes x0 * x1 element-wise.
func Mul(x0, x1 *Variable) *Variable { return ops.Mul(x0, x1) }

// Div computes x0 / x1 element-wise.
func Div(x0, x1 *Variable) *Variable { return ops.Div(x0, x1) }

// Sin computes sin(x).
func Sin(x *Variable) *Variable { return ops.Sin(x) }

// Cos computes cos(x).
func Cos(x *Variable) *Variable { return ops.Cos(x) }

// Tanh computes tanh(x).
func Tanh(x *Variable) *Variable { return ops.Tanh(x) }

// Sum reduces x to a scalar.
func Sum(x *Variable) *Variable { return ops.Sum(x) }

// Reshape returns x viewed with the given shape.
func Reshape(x *Variable, shape tensor.Shape) *Variable { return ops.Reshape(x, shape) }

// AddScalar computes x + c.
func AddScalar(x *Variable, c float64) *Variable { return ops.AddScalar(x, c) }

// SubScalar computes x - c.
func SubScalar(x *Variable, c float64) *Variable { return ops.SubScalar(x, c) }

// RSub computes c - x.
func RSub(c float64, x *Variable) *Variable { return ops.RSub(c, x) }

// MulScalar computes x * c.
func MulScalar(x *Variable, c float64) *Variable { return ops.MulScalar(x, c) }

// DivScalar computes x / c.
func DivScalar(x *Variable, c float64) *Variable { return ops.DivScalar(x, c) }

// RDiv computes c / x.
func RDiv(c float64, x *Variable) *Variable { return ops.RDiv(c, x) }
