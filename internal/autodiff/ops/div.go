package ops

import (
	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/tensor"
)

// DivOp is element-wise division: y = x0 / x1.
//
// Backward: d(x0/x1)/dx0 = 1/x1 and d(x0/x1)/dx1 = -x0/x1².
type DivOp struct {
	autodiff.FunctionBase
}

// Forward computes x0 / x1.
func (op *DivOp) Forward(xs []*tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{tensor.Div(xs[0], xs[1])}
}

// Backward returns (gy/x1, -gy·x0/x1²) from the stored input values.
func (op *DivOp) Backward(gys []*tensor.RawTensor) []*tensor.RawTensor {
	gy := gys[0]
	inputs := op.Inputs()
	x0, x1 := inputs[0].Data(), inputs[1].Data()
	gx0 := tensor.Div(gy, x1)
	gx1 := tensor.Neg(tensor.Div(tensor.Mul(gy, x0), tensor.Mul(x1, x1)))
	return []*tensor.RawTensor{gx0, gx1}
}

// Div applies element-wise division.
func Div(x0, x1 *autodiff.Variable) *autodiff.Variable {
	return autodiff.Apply1(&DivOp{}, x0, x1)
}
