package tensor

import (
	"math"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"github.com/x448/float16"

	"github.com/ember-ml/ember/internal/parallel"
)

// Element-wise math on RawTensors. Binary operations require identical
// shapes and dtypes: the buffer provides no broadcasting, so callers that
// want a scalar operand materialize it with FullLike first. Shape or dtype
// mismatch is a programmer error and panics.
//
// Large kernels split their index range across goroutines; each index
// writes a distinct output element, so no synchronization is needed.

// binaryOp applies f element-wise over two same-shaped tensors.
func binaryOp(name string, a, b *RawTensor, f func(x, y float64) float64) *RawTensor {
	if !a.shape.Equal(b.shape) {
		exceptions.Panicf("tensor.%s: shape mismatch %v vs %v", name, a.shape, b.shape)
	}
	if a.dtype != b.dtype {
		exceptions.Panicf("tensor.%s: dtype mismatch %s vs %s", name, a.dtype, b.dtype)
	}
	out := mustNewRaw(a.shape, a.dtype)
	n := a.NumElements()
	switch a.dtype {
	case Float16:
		x, y, o := a.AsFloat16(), b.AsFloat16(), out.AsFloat16()
		parallel.ElementWise(n, func(i int) {
			o[i] = float16.Fromfloat32(float32(f(float64(x[i].Float32()), float64(y[i].Float32()))))
		})
	case Float32:
		x, y, o := a.AsFloat32(), b.AsFloat32(), out.AsFloat32()
		parallel.ElementWise(n, func(i int) {
			o[i] = float32(f(float64(x[i]), float64(y[i])))
		})
	case Float64:
		x, y, o := a.AsFloat64(), b.AsFloat64(), out.AsFloat64()
		parallel.ElementWise(n, func(i int) {
			o[i] = f(x[i], y[i])
		})
	}
	return out
}

// unaryOp applies f element-wise over one tensor.
func unaryOp(x *RawTensor, f func(v float64) float64) *RawTensor {
	out := mustNewRaw(x.shape, x.dtype)
	n := x.NumElements()
	switch x.dtype {
	case Float16:
		in, o := x.AsFloat16(), out.AsFloat16()
		parallel.ElementWise(n, func(i int) {
			o[i] = float16.Fromfloat32(float32(f(float64(in[i].Float32()))))
		})
	case Float32:
		in, o := x.AsFloat32(), out.AsFloat32()
		parallel.ElementWise(n, func(i int) {
			o[i] = float32(f(float64(in[i])))
		})
	case Float64:
		in, o := x.AsFloat64(), out.AsFloat64()
		parallel.ElementWise(n, func(i int) {
			o[i] = f(in[i])
		})
	}
	return out
}

// Add performs element-wise addition.
func Add(a, b *RawTensor) *RawTensor {
	return binaryOp("Add", a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction.
func Sub(a, b *RawTensor) *RawTensor {
	return binaryOp("Sub", a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication.
func Mul(a, b *RawTensor) *RawTensor {
	return binaryOp("Mul", a, b, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division.
func Div(a, b *RawTensor) *RawTensor {
	return binaryOp("Div", a, b, func(x, y float64) float64 { return x / y })
}

// Neg negates every element.
func Neg(x *RawTensor) *RawTensor {
	return unaryOp(x, func(v float64) float64 { return -v })
}

// Exp computes the element-wise exponential.
func Exp(x *RawTensor) *RawTensor {
	return unaryOp(x, math.Exp)
}

// Sin computes the element-wise sine.
func Sin(x *RawTensor) *RawTensor {
	return unaryOp(x, math.Sin)
}

// Cos computes the element-wise cosine.
func Cos(x *RawTensor) *RawTensor {
	return unaryOp(x, math.Cos)
}

// Tanh computes the element-wise hyperbolic tangent.
func Tanh(x *RawTensor) *RawTensor {
	return unaryOp(x, math.Tanh)
}

// Sqrt computes the element-wise square root.
func Sqrt(x *RawTensor) *RawTensor {
	return unaryOp(x, math.Sqrt)
}

// Pow raises every element to the constant power c.
func Pow(x *RawTensor, c float64) *RawTensor {
	return unaryOp(x, func(v float64) float64 { return math.Pow(v, c) })
}

// AddScalar adds the scalar s to every element.
func AddScalar(x *RawTensor, s float64) *RawTensor {
	return unaryOp(x, func(v float64) float64 { return v + s })
}

// MulScalar multiplies every element by the scalar s.
func MulScalar(x *RawTensor, s float64) *RawTensor {
	return unaryOp(x, func(v float64) float64 { return v * s })
}

// Sum reduces every element into a zero-dimensional scalar of the same
// dtype. Accumulation runs in float64 regardless of dtype.
func Sum(x *RawTensor) *RawTensor {
	var total float64
	for _, v := range x.Float64s() {
		total += v
	}
	return FromScalar(total, x.dtype)
}

// Reshape returns a tensor with the same elements and a different shape.
// The new shape must hold exactly the same number of elements.
func Reshape(x *RawTensor, newShape Shape) (*RawTensor, error) {
	if err := newShape.Validate(); err != nil {
		return nil, errors.Wrap(err, "Reshape")
	}
	if newShape.NumElements() != x.NumElements() {
		return nil, errors.Errorf("Reshape: cannot reshape %v (%d elements) to %v (%d elements)",
			x.shape, x.NumElements(), newShape, newShape.NumElements())
	}
	out := mustNewRaw(newShape, x.dtype)
	copy(out.data, x.data)
	return out, nil
}

// AllClose reports whether a and b have the same shape and dtype and every
// element pair differs by at most rtol*max(1, |b|). Test helper.
func AllClose(a, b *RawTensor, rtol float64) bool {
	if !a.shape.Equal(b.shape) || a.dtype != b.dtype {
		return false
	}
	x, y := a.Float64s(), b.Float64s()
	for i := range x {
		scale := math.Abs(y[i])
		if scale < 1 {
			scale = 1
		}
		if math.Abs(x[i]-y[i]) > rtol*scale {
			return false
		}
	}
	return true
}
