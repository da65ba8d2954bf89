package ops

import (
	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/tensor"
)

// ExpOp is the exponential: y = e^x.
//
// Backward: d(e^x)/dx = e^x, which is exactly the stored output value, so
// the backward pass reuses it instead of recomputing the exponential from
// the input.
type ExpOp struct {
	autodiff.FunctionBase
}

// Forward computes e^x.
func (op *ExpOp) Forward(xs []*tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{tensor.Exp(xs[0])}
}

// Backward returns gy·y using the stored output value.
func (op *ExpOp) Backward(gys []*tensor.RawTensor) []*tensor.RawTensor {
	y := op.Outputs()[0].Data()
	return []*tensor.RawTensor{tensor.Mul(gys[0], y)}
}

// Exp applies the exponential.
func Exp(x *autodiff.Variable) *autodiff.Variable {
	return autodiff.Apply1(&ExpOp{}, x)
}
