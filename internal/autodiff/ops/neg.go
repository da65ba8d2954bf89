package ops

import (
	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/tensor"
)

// NegOp is negation: y = -x.
//
// Backward: d(-x)/dx = -1, so the output gradient is negated.
type NegOp struct {
	autodiff.FunctionBase
}

// Forward computes -x.
func (op *NegOp) Forward(xs []*tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{tensor.Neg(xs[0])}
}

// Backward returns -gy.
func (op *NegOp) Backward(gys []*tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{tensor.Neg(gys[0])}
}

// Neg applies negation.
func Neg(x *autodiff.Variable) *autodiff.Variable {
	return autodiff.Apply1(&NegOp{}, x)
}
