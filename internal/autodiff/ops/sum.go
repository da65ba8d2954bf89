package ops

import (
	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/tensor"
)

// SumOp reduces every element into a scalar: y = Σx. It is the usual way
// to turn a vector of residuals into a scalar loss.
//
// Backward: dy/dx_i = 1 for every element, so the scalar output gradient
// broadcasts to the input shape.
type SumOp struct {
	autodiff.FunctionBase
}

// Forward computes the scalar sum of all elements.
func (op *SumOp) Forward(xs []*tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{tensor.Sum(xs[0])}
}

// Backward fills the input shape with the scalar output gradient.
func (op *SumOp) Backward(gys []*tensor.RawTensor) []*tensor.RawTensor {
	x := op.Inputs()[0].Data()
	gy := gys[0].Float64s()[0]
	return []*tensor.RawTensor{tensor.FullLike(x, gy)}
}

// Sum reduces x to a scalar.
func Sum(x *autodiff.Variable) *autodiff.Variable {
	return autodiff.Apply1(&SumOp{}, x)
}
