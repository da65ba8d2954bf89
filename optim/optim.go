// Copyright 2025 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim is the public API for gradient-descent optimizers over
// leaf Variables of the autodiff graph.
package optim

import (
	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/optim"
)

// Optimizer updates a fixed set of leaf Variables from their gradients.
type Optimizer = optim.Optimizer

// SGD is stochastic gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer over the given leaf Variables.
func NewSGD(params []*autodiff.Variable, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}

// Adam is the adaptive moment estimation optimizer.
type Adam = optim.Adam

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer over the given leaf Variables.
func NewAdam(params []*autodiff.Variable, config AdamConfig) *Adam {
	return optim.NewAdam(params, config)
}
