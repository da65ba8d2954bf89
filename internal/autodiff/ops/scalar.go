package ops

import (
	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/tensor"
)

// scalarLike wraps c as a leaf Variable with x's shape and dtype, so the
// buffer's same-shape arithmetic applies.
func scalarLike(x *autodiff.Variable, c float64) *autodiff.Variable {
	return autodiff.NewVariable(tensor.FullLike(x.Data(), c))
}

// AddScalar computes x + c.
func AddScalar(x *autodiff.Variable, c float64) *autodiff.Variable {
	return Add(x, scalarLike(x, c))
}

// SubScalar computes x - c.
func SubScalar(x *autodiff.Variable, c float64) *autodiff.Variable {
	return Sub(x, scalarLike(x, c))
}

// RSub computes c - x, the reflected subtraction for a left scalar operand.
func RSub(c float64, x *autodiff.Variable) *autodiff.Variable {
	return Sub(scalarLike(x, c), x)
}

// MulScalar computes x * c.
func MulScalar(x *autodiff.Variable, c float64) *autodiff.Variable {
	return Mul(x, scalarLike(x, c))
}

// DivScalar computes x / c.
func DivScalar(x *autodiff.Variable, c float64) *autodiff.Variable {
	return Div(x, scalarLike(x, c))
}

// RDiv computes c / x, the reflected division for a left scalar operand.
func RDiv(c float64, x *autodiff.Variable) *autodiff.Variable {
	return Div(scalarLike(x, c), x)
}
