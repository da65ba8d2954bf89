package optim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/autodiff/ops"
	"github.com/ember-ml/ember/internal/optim"
	"github.com/ember-ml/ember/internal/tensor"
)

func scalarParam(v float64) *autodiff.Variable {
	return autodiff.NewVariable(tensor.FromScalar(v, tensor.Float64))
}

// minimize runs opt on loss(x) for the given number of steps and returns
// x's final value.
func minimize(x *autodiff.Variable, opt optim.Optimizer, steps int,
	loss func(*autodiff.Variable) *autodiff.Variable) float64 {
	for range steps {
		opt.ZeroGrad()
		y := loss(x)
		y.Backward(false)
		opt.Step()
	}
	return x.Data().Float64s()[0]
}

func TestSGDDefaults(t *testing.T) {
	s := optim.NewSGD(nil, optim.SGDConfig{})
	assert.InDelta(t, 0.01, s.GetLR(), 1e-12)
}

func TestSGDStep(t *testing.T) {
	// One step on y = x² at x = 5 with lr 0.1: x' = 5 - 0.1·10 = 4.
	x := scalarParam(5)
	s := optim.NewSGD([]*autodiff.Variable{x}, optim.SGDConfig{LR: 0.1})

	got := minimize(x, s, 1, ops.Square)
	assert.InDelta(t, 4, got, 1e-12)
}

func TestSGDSkipsParamsWithoutGrad(t *testing.T) {
	x := scalarParam(5)
	idle := scalarParam(7)
	s := optim.NewSGD([]*autodiff.Variable{x, idle}, optim.SGDConfig{LR: 0.1})

	minimize(x, s, 1, ops.Square)
	assert.InDelta(t, 7, idle.Data().Float64s()[0], 1e-12,
		"a parameter outside the graph must not move")
}

func TestSGDConvergesOnQuadratic(t *testing.T) {
	x := scalarParam(5)
	s := optim.NewSGD([]*autodiff.Variable{x}, optim.SGDConfig{LR: 0.1})

	got := minimize(x, s, 100, ops.Square)
	assert.Less(t, math.Abs(got), 1e-6, "x should reach the minimum of x²")
}

func TestSGDMomentumConverges(t *testing.T) {
	x := scalarParam(5)
	s := optim.NewSGD([]*autodiff.Variable{x}, optim.SGDConfig{LR: 0.05, Momentum: 0.9})

	got := minimize(x, s, 200, ops.Square)
	assert.Less(t, math.Abs(got), 1e-3)
}

func TestSGDSetLR(t *testing.T) {
	s := optim.NewSGD(nil, optim.SGDConfig{LR: 0.1})
	s.SetLR(0.5)
	assert.InDelta(t, 0.5, s.GetLR(), 1e-12)
}

func TestZeroGrad(t *testing.T) {
	x := scalarParam(2)
	y := ops.Square(x)
	y.Backward(false)
	require.NotNil(t, x.Grad())

	s := optim.NewSGD([]*autodiff.Variable{x}, optim.SGDConfig{})
	s.ZeroGrad()
	assert.Nil(t, x.Grad())
}

func TestAdamDefaults(t *testing.T) {
	a := optim.NewAdam(nil, optim.AdamConfig{})
	assert.InDelta(t, 0.001, a.GetLR(), 1e-12)
}

func TestAdamFirstStepIsBounded(t *testing.T) {
	// With bias correction, the first Adam step has magnitude ≈ lr
	// regardless of gradient scale.
	x := scalarParam(5)
	a := optim.NewAdam([]*autodiff.Variable{x}, optim.AdamConfig{LR: 0.1})

	got := minimize(x, a, 1, ops.Square)
	assert.InDelta(t, 4.9, got, 1e-6)
}

func TestAdamConvergesOnQuadratic(t *testing.T) {
	x := scalarParam(5)
	a := optim.NewAdam([]*autodiff.Variable{x}, optim.AdamConfig{LR: 0.1})

	got := minimize(x, a, 500, ops.Square)
	assert.Less(t, math.Abs(got), 0.1)
}

func TestOptimizerInterface(t *testing.T) {
	var _ optim.Optimizer = optim.NewSGD(nil, optim.SGDConfig{})
	var _ optim.Optimizer = optim.NewAdam(nil, optim.AdamConfig{})
}
