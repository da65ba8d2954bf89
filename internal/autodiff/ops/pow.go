package ops

import (
	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/tensor"
)

// PowOp is exponentiation by a constant power: y = x^c.
//
// Backward: d(x^c)/dx = c·x^(c-1), computed from the stored input value.
type PowOp struct {
	autodiff.FunctionBase
	exponent float64
}

// Forward computes x^c.
func (op *PowOp) Forward(xs []*tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{tensor.Pow(xs[0], op.exponent)}
}

// Backward returns gy·c·x^(c-1).
func (op *PowOp) Backward(gys []*tensor.RawTensor) []*tensor.RawTensor {
	x := op.Inputs()[0].Data()
	gx := tensor.MulScalar(tensor.Mul(gys[0], tensor.Pow(x, op.exponent-1)), op.exponent)
	return []*tensor.RawTensor{gx}
}

// Pow raises x to the constant power c.
func Pow(x *autodiff.Variable, c float64) *autodiff.Variable {
	return autodiff.Apply1(&PowOp{exponent: c}, x)
}
