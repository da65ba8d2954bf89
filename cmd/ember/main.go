// Copyright 2025 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package main demonstrates the Ember autodiff engine: gradient descent on
// the Rosenbrock function, export of the computation graph in Graphviz DOT
// format, and saving the fitted parameters as a .ember file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"

	"github.com/ember-ml/ember/autodiff"
	"github.com/ember-ml/ember/optim"
	"github.com/ember-ml/ember/serialization"
	"github.com/ember-ml/ember/tensor"
)

var (
	flagIters = flag.Int("iters", 1000, "gradient-descent iterations")
	flagLR    = flag.Float64("lr", 0.001, "learning rate")
	flagDot   = flag.String("dot", "", "write the computation graph as Graphviz DOT to this file")
	flagSave  = flag.String("save", "", "write the fitted parameters to this .ember file")
)

// rosenbrock is the classic banana-valley benchmark:
// f(x0, x1) = 100*(x1 - x0²)² + (x0 - 1)², minimum at (1, 1).
func rosenbrock(x0, x1 *autodiff.Variable) *autodiff.Variable {
	a := autodiff.Sub(x1, autodiff.Square(x0))
	b := autodiff.SubScalar(x0, 1)
	return autodiff.Add(autodiff.MulScalar(autodiff.Square(a), 100), autodiff.Square(b))
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	x0 := autodiff.NewNamedVariable(tensor.FromScalar(0, tensor.Float64), "x0")
	x1 := autodiff.NewNamedVariable(tensor.FromScalar(0, tensor.Float64), "x1")
	opt := optim.NewSGD([]*autodiff.Variable{x0, x1}, optim.SGDConfig{LR: *flagLR})

	var y *autodiff.Variable
	for i := 0; i < *flagIters; i++ {
		opt.ZeroGrad()
		y = rosenbrock(x0, x1)
		y.Backward(false)
		opt.Step()
	}
	fmt.Printf("after %d iterations: x0=%v x1=%v f=%v\n",
		*flagIters, x0.Data().Float64s()[0], x1.Data().Float64s()[0], y.Data().Float64s()[0])

	// Forward-only evaluation retains no graph.
	autodiff.NoGrad(func() {
		s := autodiff.Sin(x0)
		fmt.Printf("sin(x0)=%v (creator=%v)\n", s.Data().Float64s()[0], s.Creator())
	})

	if *flagSave != "" {
		state := map[string]*tensor.RawTensor{"x0": x0.Data(), "x1": x1.Data()}
		must.M(serialization.SaveTensors(*flagSave, state, map[string]string{"objective": "rosenbrock"}))
		fmt.Printf("wrote parameters to %s\n", *flagSave)
	}

	if *flagDot != "" {
		graph := rosenbrock(x0, x1)
		must.M(os.WriteFile(*flagDot, []byte(autodiff.DotGraph(graph, true)), 0o644))
		fmt.Printf("wrote computation graph to %s\n", *flagDot)
	}
}
