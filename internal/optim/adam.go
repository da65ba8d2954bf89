package optim

import (
	"math"

	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/tensor"
)

// Adam implements the Adam optimizer (adaptive moment estimation).
//
// Update rule, per step t:
//
//	m = beta1*m + (1-beta1)*grad
//	v = beta2*v + (1-beta2)*grad²
//	mHat = m / (1 - beta1^t)
//	vHat = v / (1 - beta2^t)
//	param = param - lr * mHat / (sqrt(vHat) + eps)
type Adam struct {
	params []*autodiff.Variable
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	step   int

	m map[*autodiff.Variable]*tensor.RawTensor
	v map[*autodiff.Variable]*tensor.RawTensor
}

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig struct {
	LR    float64 // Learning rate (default: 0.001)
	Beta1 float64 // First-moment decay (default: 0.9)
	Beta2 float64 // Second-moment decay (default: 0.999)
	Eps   float64 // Numerical-stability term (default: 1e-8)
}

// NewAdam creates a new Adam optimizer over the given leaf Variables.
func NewAdam(params []*autodiff.Variable, config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Beta1 == 0 {
		config.Beta1 = 0.9
	}
	if config.Beta2 == 0 {
		config.Beta2 = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &Adam{
		params: params,
		lr:     config.LR,
		beta1:  config.Beta1,
		beta2:  config.Beta2,
		eps:    config.Eps,
		m:      make(map[*autodiff.Variable]*tensor.RawTensor),
		v:      make(map[*autodiff.Variable]*tensor.RawTensor),
	}
}

// Step performs a single optimization step.
func (a *Adam) Step() {
	a.step++
	biasCorr1 := 1 - math.Pow(a.beta1, float64(a.step))
	biasCorr2 := 1 - math.Pow(a.beta2, float64(a.step))

	for _, p := range a.params {
		grad := p.Grad()
		if grad == nil {
			continue
		}

		m, ok := a.m[p]
		if !ok {
			m = tensor.ZerosLike(p.Data())
		}
		v, ok := a.v[p]
		if !ok {
			v = tensor.ZerosLike(p.Data())
		}

		m = tensor.Add(tensor.MulScalar(m, a.beta1), tensor.MulScalar(grad, 1-a.beta1))
		v = tensor.Add(tensor.MulScalar(v, a.beta2), tensor.MulScalar(tensor.Mul(grad, grad), 1-a.beta2))
		a.m[p] = m
		a.v[p] = v

		mHat := tensor.MulScalar(m, 1/biasCorr1)
		vHat := tensor.MulScalar(v, 1/biasCorr2)
		update := tensor.Div(mHat, tensor.AddScalar(tensor.Sqrt(vHat), a.eps))
		p.SetData(tensor.Sub(p.Data(), tensor.MulScalar(update, a.lr)))
	}
}

// ZeroGrad clears gradients for all parameters.
func (a *Adam) ZeroGrad() {
	for _, p := range a.params {
		p.ClearGrad()
	}
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 {
	return a.lr
}
