package ops

import (
	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/tensor"
)

// AddOp is element-wise addition: y = x0 + x1.
//
// Backward: d(x0+x1)/dx0 = d(x0+x1)/dx1 = 1, so the output gradient flows
// unchanged to both inputs.
type AddOp struct {
	autodiff.FunctionBase
}

// Forward computes x0 + x1.
func (op *AddOp) Forward(xs []*tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{tensor.Add(xs[0], xs[1])}
}

// Backward passes the output gradient to both inputs.
func (op *AddOp) Backward(gys []*tensor.RawTensor) []*tensor.RawTensor {
	gy := gys[0]
	return []*tensor.RawTensor{gy, gy}
}

// Add applies element-wise addition.
func Add(x0, x1 *autodiff.Variable) *autodiff.Variable {
	return autodiff.Apply1(&AddOp{}, x0, x1)
}
