package ops

import (
	"github.com/gomlx/exceptions"

	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/tensor"
)

// ReshapeOp changes the shape of a tensor without touching its elements.
//
// Backward: reshape the output gradient back to the original input shape.
// No arithmetic is involved.
type ReshapeOp struct {
	autodiff.FunctionBase
	shape     tensor.Shape
	origShape tensor.Shape
}

// Forward reshapes x to the target shape, remembering the original.
func (op *ReshapeOp) Forward(xs []*tensor.RawTensor) []*tensor.RawTensor {
	op.origShape = xs[0].Shape().Clone()
	y, err := tensor.Reshape(xs[0], op.shape)
	if err != nil {
		exceptions.Panicf("ops.Reshape: %v", err)
	}
	return []*tensor.RawTensor{y}
}

// Backward reshapes the output gradient back to the input shape.
func (op *ReshapeOp) Backward(gys []*tensor.RawTensor) []*tensor.RawTensor {
	gx, err := tensor.Reshape(gys[0], op.origShape)
	if err != nil {
		exceptions.Panicf("ops.Reshape backward: %v", err)
	}
	return []*tensor.RawTensor{gx}
}

// Reshape returns x viewed with the given shape. Reshaping to the current
// shape is the identity and returns x itself.
func Reshape(x *autodiff.Variable, shape tensor.Shape) *autodiff.Variable {
	if x.Shape().Equal(shape) {
		return x
	}
	return autodiff.Apply1(&ReshapeOp{shape: shape.Clone()}, x)
}
