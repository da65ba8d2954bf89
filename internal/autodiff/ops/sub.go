package ops

import (
	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/tensor"
)

// SubOp is element-wise subtraction: y = x0 - x1.
//
// Backward: d(x0-x1)/dx0 = 1 and d(x0-x1)/dx1 = -1.
type SubOp struct {
	autodiff.FunctionBase
}

// Forward computes x0 - x1.
func (op *SubOp) Forward(xs []*tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{tensor.Sub(xs[0], xs[1])}
}

// Backward returns (gy, -gy).
func (op *SubOp) Backward(gys []*tensor.RawTensor) []*tensor.RawTensor {
	gy := gys[0]
	return []*tensor.RawTensor{gy, tensor.Neg(gy)}
}

// Sub applies element-wise subtraction.
func Sub(x0, x1 *autodiff.Variable) *autodiff.Variable {
	return autodiff.Apply1(&SubOp{}, x0, x1)
}
