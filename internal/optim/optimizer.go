// Package optim implements gradient-descent optimizers over leaf Variables
// of the autodiff graph.
//
// The training loop is the classic shape:
//
//	opt := optim.NewSGD(params, optim.SGDConfig{LR: 0.01})
//	for range steps {
//	    opt.ZeroGrad()
//	    loss := objective(params...)
//	    loss.Backward(false)
//	    opt.Step()
//	}
package optim

// Optimizer updates a fixed set of leaf Variables from their accumulated
// gradients.
type Optimizer interface {
	// Step applies one update using each parameter's current gradient.
	// Parameters with no gradient (they did not take part in the last
	// forward pass) are skipped.
	Step()

	// ZeroGrad clears the gradients of all parameters. Call it before each
	// backward pass to prevent accumulation across iterations.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}
