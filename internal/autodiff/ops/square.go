package ops

import (
	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/tensor"
)

// SquareOp is squaring: y = x².
//
// Backward: d(x²)/dx = 2x, computed from the stored input value.
type SquareOp struct {
	autodiff.FunctionBase
}

// Forward computes x².
func (op *SquareOp) Forward(xs []*tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{tensor.Mul(xs[0], xs[0])}
}

// Backward returns 2·x·gy.
func (op *SquareOp) Backward(gys []*tensor.RawTensor) []*tensor.RawTensor {
	x := op.Inputs()[0].Data()
	return []*tensor.RawTensor{tensor.MulScalar(tensor.Mul(gys[0], x), 2)}
}

// Square applies squaring.
func Square(x *autodiff.Variable) *autodiff.Variable {
	return autodiff.Apply1(&SquareOp{}, x)
}
