package ops

import (
	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/tensor"
)

// SinOp is the sine: y = sin(x).
//
// Backward: d(sin(x))/dx = cos(x), computed from the stored input value.
type SinOp struct {
	autodiff.FunctionBase
}

// Forward computes sin(x).
func (op *SinOp) Forward(xs []*tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{tensor.Sin(xs[0])}
}

// Backward returns gy·cos(x).
func (op *SinOp) Backward(gys []*tensor.RawTensor) []*tensor.RawTensor {
	x := op.Inputs()[0].Data()
	return []*tensor.RawTensor{tensor.Mul(gys[0], tensor.Cos(x))}
}

// Sin applies the sine.
func Sin(x *autodiff.Variable) *autodiff.Variable {
	return autodiff.Apply1(&SinOp{}, x)
}
