package ops

import (
	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/tensor"
)

// MulOp is element-wise multiplication: y = x0 * x1.
//
// Backward: d(x0·x1)/dx0 = x1 and d(x0·x1)/dx1 = x0, so each input's
// gradient is the output gradient scaled by the other input's value.
type MulOp struct {
	autodiff.FunctionBase
}

// Forward computes x0 * x1.
func (op *MulOp) Forward(xs []*tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{tensor.Mul(xs[0], xs[1])}
}

// Backward returns (gy·x1, gy·x0) from the stored input values.
func (op *MulOp) Backward(gys []*tensor.RawTensor) []*tensor.RawTensor {
	gy := gys[0]
	inputs := op.Inputs()
	x0, x1 := inputs[0].Data(), inputs[1].Data()
	return []*tensor.RawTensor{tensor.Mul(gy, x1), tensor.Mul(gy, x0)}
}

// Mul applies element-wise multiplication.
func Mul(x0, x1 *autodiff.Variable) *autodiff.Variable {
	return autodiff.Apply1(&MulOp{}, x0, x1)
}
