package ops

import (
	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/tensor"
)

// TanhOp is the hyperbolic tangent: y = tanh(x).
//
// Backward: d(tanh(x))/dx = 1 - tanh(x)² = 1 - y², so the backward pass
// multiplies the incoming gradient by (1 - y²) using its own stored output
// value rather than the input.
type TanhOp struct {
	autodiff.FunctionBase
}

// Forward computes tanh(x).
func (op *TanhOp) Forward(xs []*tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{tensor.Tanh(xs[0])}
}

// Backward returns gy·(1 - y²) using the stored output value.
func (op *TanhOp) Backward(gys []*tensor.RawTensor) []*tensor.RawTensor {
	y := op.Outputs()[0].Data()
	oneMinusY2 := tensor.AddScalar(tensor.Neg(tensor.Mul(y, y)), 1)
	return []*tensor.RawTensor{tensor.Mul(gys[0], oneMinusY2)}
}

// Tanh applies the hyperbolic tangent.
func Tanh(x *autodiff.Variable) *autodiff.Variable {
	return autodiff.Apply1(&TanhOp{}, x)
}
