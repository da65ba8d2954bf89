// Package ops implements the concrete differentiable operations of the
// Ember engine. Each operation embeds autodiff.FunctionBase, overrides
// Forward and Backward, and exposes a constructor function that dispatches
// it through autodiff.Apply.
//
// Supported operations:
//   - NegOp: negation (d(-x)/dx = -1)
//   - PowOp: exponentiation by constant power (d(x^c)/dx = c·x^(c-1))
//   - SquareOp: squaring (d(x²)/dx = 2x)
//   - ExpOp: exponential (d(e^x)/dx = e^x, reuses its own output)
//   - AddOp, SubOp: element-wise addition and subtraction
//   - MulOp, DivOp: element-wise multiplication and division
//   - SinOp, CosOp, TanhOp: trigonometric and hyperbolic operations
//   - SumOp: reduction to a scalar (backward broadcasts to the input shape)
//   - ReshapeOp: shape change (backward reshapes the gradient back)
//
// Scalar conveniences (AddScalar, SubScalar, MulScalar, DivScalar, and the
// reflected RSub and RDiv) wrap the scalar as a leaf Variable matching the
// other operand, since the tensor buffer does no broadcasting.
//
// New operations follow the same recipe and need no registration: embed
// autodiff.FunctionBase, override Forward and Backward, and call
// autodiff.Apply1 from a constructor.
package ops
