package ops

import (
	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/tensor"
)

// CosOp is the cosine: y = cos(x).
//
// Backward: d(cos(x))/dx = -sin(x), computed from the stored input value.
type CosOp struct {
	autodiff.FunctionBase
}

// Forward computes cos(x).
func (op *CosOp) Forward(xs []*tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{tensor.Cos(xs[0])}
}

// Backward returns -gy·sin(x).
func (op *CosOp) Backward(gys []*tensor.RawTensor) []*tensor.RawTensor {
	x := op.Inputs()[0].Data()
	return []*tensor.RawTensor{tensor.Neg(tensor.Mul(gys[0], tensor.Sin(x)))}
}

// Cos applies the cosine.
func Cos(x *autodiff.Variable) *autodiff.Variable {
	return autodiff.Apply1(&CosOp{}, x)
}
