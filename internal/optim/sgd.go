package optim

import (
	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/tensor"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
type SGD struct {
	params     []*autodiff.Variable
	lr         float64
	momentum   float64
	velocities map[*autodiff.Variable]*tensor.RawTensor
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over the given leaf Variables.
func NewSGD(params []*autodiff.Variable, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*autodiff.Variable]*tensor.RawTensor),
	}
}

// Step performs a single optimization step.
func (s *SGD) Step() {
	for _, p := range s.params {
		grad := p.Grad()
		if grad == nil {
			continue
		}

		if s.momentum == 0 {
			p.SetData(tensor.Sub(p.Data(), tensor.MulScalar(grad, s.lr)))
			continue
		}

		velocity, ok := s.velocities[p]
		if !ok {
			velocity = tensor.ZerosLike(p.Data())
		}
		velocity = tensor.Add(tensor.MulScalar(velocity, s.momentum), grad)
		s.velocities[p] = velocity
		p.SetData(tensor.Sub(p.Data(), tensor.MulScalar(velocity, s.lr)))
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	for _, p := range s.params {
		p.ClearGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate. Useful for scheduling.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
