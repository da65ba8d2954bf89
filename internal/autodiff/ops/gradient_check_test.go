package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/autodiff/ops"
	"github.com/ember-ml/ember/internal/tensor"
)

// checkGradient verifies an analytic Backward against central differences
// at every point in xs.
func checkGradient(t *testing.T, name string, f func(*autodiff.Variable) *autodiff.Variable, xs []float64) {
	t.Helper()
	for _, v := range xs {
		x := autodiff.NewVariable(tensor.FromScalar(v, tensor.Float64))
		y := f(x)
		y.Backward(false)

		analytic := x.Grad()
		require.NotNil(t, analytic, "%s: no gradient at x=%v", name, v)
		numeric := autodiff.NumericalDiff(f, x, 0)

		assert.True(t, tensor.AllClose(analytic, numeric, 1e-4),
			"%s at x=%v: analytic %v, numeric %v", name, v, analytic, numeric)
	}
}

func TestGradientUnaryOps(t *testing.T) {
	tests := []struct {
		name string
		f    func(*autodiff.Variable) *autodiff.Variable
		xs   []float64
	}{
		{"Neg", ops.Neg, []float64{-2, 0.5, 3}},
		{"Square", ops.Square, []float64{-2, 0.5, 3}},
		{"Exp", ops.Exp, []float64{-1, 0, 1.5}},
		{"Sin", ops.Sin, []float64{-1, 0.3, 2}},
		{"Cos", ops.Cos, []float64{-1, 0.3, 2}},
		{"Tanh", ops.Tanh, []float64{-1.5, 0, 0.7}},
		{"Sum", ops.Sum, []float64{-2, 0.5, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkGradient(t, tt.name, tt.f, tt.xs)
		})
	}
}

func TestGradientSumVector(t *testing.T) {
	// NumericalDiff perturbs every element together, so for a reduction it
	// measures the directional derivative along the all-ones vector: the
	// sum of the analytic gradient's entries.
	data, err := tensor.FromFloat64([]float64{1, -2, 3, 0.5}, tensor.Shape{4})
	require.NoError(t, err)

	x := autodiff.NewVariable(data)
	y := ops.Sum(x)
	y.Backward(false)

	analytic := x.Grad()
	require.NotNil(t, analytic)

	var total float64
	for _, g := range analytic.Float64s() {
		total += g
	}
	numeric := autodiff.NumericalDiff(func(v *autodiff.Variable) *autodiff.Variable {
		return ops.Sum(v)
	}, x, 0)
	assert.InDelta(t, total, numeric.Float64s()[0], 1e-6)
}

func TestGradientPow(t *testing.T) {
	for _, c := range []float64{2, 3, 0.5} {
		checkGradient(t, "Pow", func(x *autodiff.Variable) *autodiff.Variable {
			return ops.Pow(x, c)
		}, []float64{0.5, 1.5, 2})
	}
}

func TestGradientScalarOps(t *testing.T) {
	tests := []struct {
		name string
		f    func(*autodiff.Variable) *autodiff.Variable
	}{
		{"AddScalar", func(x *autodiff.Variable) *autodiff.Variable { return ops.AddScalar(x, 3) }},
		{"SubScalar", func(x *autodiff.Variable) *autodiff.Variable { return ops.SubScalar(x, 3) }},
		{"RSub", func(x *autodiff.Variable) *autodiff.Variable { return ops.RSub(3, x) }},
		{"MulScalar", func(x *autodiff.Variable) *autodiff.Variable { return ops.MulScalar(x, 3) }},
		{"DivScalar", func(x *autodiff.Variable) *autodiff.Variable { return ops.DivScalar(x, 3) }},
		{"RDiv", func(x *autodiff.Variable) *autodiff.Variable { return ops.RDiv(3, x) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkGradient(t, tt.name, tt.f, []float64{0.5, 1.5, -2})
		})
	}
}

func TestGradientBinaryOps(t *testing.T) {
	// Fix one operand and differentiate with respect to the other, both ways.
	const other = 1.7
	tests := []struct {
		name string
		f    func(x0, x1 *autodiff.Variable) *autodiff.Variable
	}{
		{"Add", ops.Add},
		{"Sub", ops.Sub},
		{"Mul", ops.Mul},
		{"Div", ops.Div},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/left", func(t *testing.T) {
			checkGradient(t, tt.name, func(x *autodiff.Variable) *autodiff.Variable {
				return tt.f(x, autodiff.NewVariable(tensor.FromScalar(other, tensor.Float64)))
			}, []float64{0.5, -1.2, 2})
		})
		t.Run(tt.name+"/right", func(t *testing.T) {
			checkGradient(t, tt.name, func(x *autodiff.Variable) *autodiff.Variable {
				return tt.f(autodiff.NewVariable(tensor.FromScalar(other, tensor.Float64)), x)
			}, []float64{0.5, -1.2, 2})
		})
	}
}
