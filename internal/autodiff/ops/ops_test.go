package ops_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/autodiff/ops"
	"github.com/ember-ml/ember/internal/tensor"
)

func scalar(v float64) *autodiff.Variable {
	return autodiff.NewVariable(tensor.FromScalar(v, tensor.Float64))
}

func value(t *testing.T, v *autodiff.Variable) float64 {
	t.Helper()
	require.NotNil(t, v.Data())
	values := v.Data().Float64s()
	require.Len(t, values, 1)
	return values[0]
}

func TestForwardValues(t *testing.T) {
	tests := []struct {
		name string
		got  *autodiff.Variable
		want float64
	}{
		{"Add", ops.Add(scalar(2), scalar(3)), 5},
		{"Sub", ops.Sub(scalar(2), scalar(3)), -1},
		{"Mul", ops.Mul(scalar(2), scalar(3)), 6},
		{"Div", ops.Div(scalar(3), scalar(2)), 1.5},
		{"Neg", ops.Neg(scalar(2)), -2},
		{"Square", ops.Square(scalar(-3)), 9},
		{"Pow", ops.Pow(scalar(2), 10), 1024},
		{"Exp", ops.Exp(scalar(1)), math.E},
		{"Sin", ops.Sin(scalar(math.Pi / 2)), 1},
		{"Cos", ops.Cos(scalar(0)), 1},
		{"Tanh", ops.Tanh(scalar(0)), 0},
		{"AddScalar", ops.AddScalar(scalar(2), 3), 5},
		{"SubScalar", ops.SubScalar(scalar(2), 3), -1},
		{"RSub", ops.RSub(3, scalar(2)), 1},
		{"MulScalar", ops.MulScalar(scalar(2), 3), 6},
		{"DivScalar", ops.DivScalar(scalar(3), 2), 1.5},
		{"RDiv", ops.RDiv(3, scalar(2)), 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, value(t, tt.got), 1e-12)
		})
	}
}

func TestMulUsesBothInputs(t *testing.T) {
	// z = a·b: dz/da = b, dz/db = a.
	a := scalar(3)
	b := scalar(5)
	z := ops.Mul(a, b)
	z.Backward(false)

	require.NotNil(t, a.Grad())
	require.NotNil(t, b.Grad())
	assert.InDelta(t, 5, a.Grad().Float64s()[0], 1e-12)
	assert.InDelta(t, 3, b.Grad().Float64s()[0], 1e-12)
}

func TestDivGradients(t *testing.T) {
	// z = a/b: dz/da = 1/b, dz/db = -a/b².
	a := scalar(3)
	b := scalar(2)
	z := ops.Div(a, b)
	z.Backward(false)

	assert.InDelta(t, 0.5, a.Grad().Float64s()[0], 1e-12)
	assert.InDelta(t, -0.75, b.Grad().Float64s()[0], 1e-12)
}

func TestExpBackwardReusesOutput(t *testing.T) {
	x := scalar(1.5)
	y := ops.Exp(x)
	y.Backward(false)

	// d(e^x)/dx = e^x = y.
	assert.InDelta(t, value(t, y), x.Grad().Float64s()[0], 1e-12)
}

func TestTanhBackward(t *testing.T) {
	x := scalar(0.5)
	y := ops.Tanh(x)
	y.Backward(false)

	th := math.Tanh(0.5)
	assert.InDelta(t, 1-th*th, x.Grad().Float64s()[0], 1e-12)
}

func TestSumForwardAndBackward(t *testing.T) {
	data, err := tensor.FromFloat64([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	require.NoError(t, err)

	x := autodiff.NewVariable(data)
	y := ops.Sum(x)

	require.True(t, y.Shape().Equal(tensor.Shape{}), "Sum output should be a scalar")
	assert.InDelta(t, 10, value(t, y), 1e-12)

	y.Backward(false)
	grad := x.Grad()
	require.NotNil(t, grad)
	assert.True(t, grad.Shape().Equal(tensor.Shape{2, 2}),
		"gradient must broadcast back to the input shape, got %v", grad.Shape())
	assert.InDeltaSlice(t, []float64{1, 1, 1, 1}, grad.Float64s(), 1e-12)
}

func TestSumOfSquaresLoss(t *testing.T) {
	// loss = Σ(x_i²): d/dx_i = 2x_i. The reduction is what lets a vector
	// residual feed a scalar Backward.
	data, err := tensor.FromFloat64([]float64{1, -2, 3}, tensor.Shape{3})
	require.NoError(t, err)

	x := autodiff.NewVariable(data)
	loss := ops.Sum(ops.Square(x))
	assert.InDelta(t, 14, value(t, loss), 1e-12)

	loss.Backward(false)
	require.NotNil(t, x.Grad())
	assert.InDeltaSlice(t, []float64{2, -4, 6}, x.Grad().Float64s(), 1e-12)
}

func TestReshapeForwardAndBackward(t *testing.T) {
	data, err := tensor.FromFloat64([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)

	x := autodiff.NewVariable(data)
	y := ops.Reshape(x, tensor.Shape{3, 2})
	require.True(t, y.Shape().Equal(tensor.Shape{3, 2}))

	y.Backward(false)
	grad := x.Grad()
	require.NotNil(t, grad)
	assert.True(t, grad.Shape().Equal(tensor.Shape{2, 3}),
		"gradient must come back in the input shape, got %v", grad.Shape())
	assert.InDeltaSlice(t, []float64{1, 1, 1, 1, 1, 1}, grad.Float64s(), 1e-12)
}

func TestReshapeToSameShapeIsIdentity(t *testing.T) {
	data, err := tensor.FromFloat64([]float64{1, 2}, tensor.Shape{2})
	require.NoError(t, err)

	x := autodiff.NewVariable(data)
	y := ops.Reshape(x, tensor.Shape{2})
	assert.Same(t, x, y)
}

func TestReshapeBadShapePanics(t *testing.T) {
	data, err := tensor.FromFloat64([]float64{1, 2, 3}, tensor.Shape{3})
	require.NoError(t, err)

	assert.Panics(t, func() {
		ops.Reshape(autodiff.NewVariable(data), tensor.Shape{2, 2})
	})
}

func TestScalarOpsPreserveShape(t *testing.T) {
	data, err := tensor.FromFloat64([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	require.NoError(t, err)

	x := autodiff.NewVariable(data)
	y := ops.MulScalar(x, 2)
	assert.True(t, y.Shape().Equal(tensor.Shape{2, 2}))
	assert.InDeltaSlice(t, []float64{2, 4, 6, 8}, y.Data().Float64s(), 1e-12)
}

func TestSphereGradient(t *testing.T) {
	// z = x² + y² at (1, 1): dz/dx = dz/dy = 2.
	x := scalar(1)
	y := scalar(1)
	z := ops.Add(ops.Square(x), ops.Square(y))
	z.Backward(false)

	assert.InDelta(t, 2, x.Grad().Float64s()[0], 1e-12)
	assert.InDelta(t, 2, y.Grad().Float64s()[0], 1e-12)
}

func TestMatyasGradient(t *testing.T) {
	// z = 0.26(x² + y²) - 0.48xy at (1, 1): dz/dx = dz/dy = 0.04.
	x := scalar(1)
	y := scalar(1)
	z := ops.Sub(
		ops.MulScalar(ops.Add(ops.Square(x), ops.Square(y)), 0.26),
		ops.MulScalar(ops.Mul(x, y), 0.48),
	)
	z.Backward(false)

	assert.InDelta(t, 0.04, x.Grad().Float64s()[0], 1e-9)
	assert.InDelta(t, 0.04, y.Grad().Float64s()[0], 1e-9)
}
