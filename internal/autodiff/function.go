// Package autodiff implements define-by-run reverse-mode automatic
// differentiation.
//
// Operations on Variables build a dynamic computation graph as they
// execute: every application of a Function produces new Variables wired to
// the Function that created them. Calling Backward on a terminal Variable
// walks the recorded graph from outputs to leaves in reverse topological
// order (greatest generation first) and accumulates gradients onto every
// Variable along the way.
//
// Example:
//
//	x := autodiff.NewVariable(tensor.FromScalar(2, tensor.Float64))
//	y := ops.Square(x) // y = x²
//	y.Backward(false)
//	fmt.Println(x.Grad()) // dy/dx = 2x = 4
package autodiff

import (
	"fmt"
	"strings"
	"weak"

	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"

	"github.com/ember-ml/ember/internal/tensor"
)

// Function is the differentiable-operation contract. A concrete operation
// embeds FunctionBase (which carries the graph bookkeeping) and overrides
// Forward and Backward.
type Function interface {
	// Forward computes the operation's numeric result(s) from the input
	// values. It is pure tensor math and must not touch graph metadata.
	Forward(xs []*tensor.RawTensor) []*tensor.RawTensor

	// Backward implements the vector-Jacobian product: given the
	// gradient(s) with respect to this function's output(s), it returns
	// the gradient(s) with respect to each input, in input order. It may
	// read the stored input Variables and, where the calculus requires it,
	// the stored output values.
	Backward(gys []*tensor.RawTensor) []*tensor.RawTensor

	// Inputs returns the Variables this function was applied to.
	Inputs() []*Variable

	// Outputs resolves the weak references to the Variables this function
	// produced. It panics if any output was already reclaimed: a backward
	// pass over a function whose outputs are gone is a contract violation.
	Outputs() []*Variable

	// Generation is the maximum generation among the inputs at the time
	// the function executed. Fixed at Apply time; never changes.
	Generation() int

	base() *FunctionBase
}

// FunctionBase carries the bookkeeping shared by every operation: strong
// references to the input Variables, weak references to the output
// Variables, and the generation recorded at dispatch time.
//
// The asymmetry is deliberate. A Variable holds its creator Function
// strongly and the Function holds its inputs strongly, so everything a
// backward pass needs stays reachable from a retained output. The Function
// holds its own outputs weakly, otherwise Function→output→creator→output
// would be a retain cycle and no graph would ever be collected.
//
// Embed FunctionBase by value in a concrete operation and override Forward
// and Backward; the embedded defaults panic, so an operation that forgot an
// override fails categorically rather than silently.
type FunctionBase struct {
	inputs     []*Variable
	outputs    []weak.Pointer[Variable]
	generation int
}

func (b *FunctionBase) base() *FunctionBase { return b }

// Inputs returns the recorded input Variables.
func (b *FunctionBase) Inputs() []*Variable {
	return b.inputs
}

// Generation returns the generation recorded when the function executed.
func (b *FunctionBase) Generation() int {
	return b.generation
}

// Outputs resolves the weak output references. Panics if any output
// Variable has been reclaimed.
func (b *FunctionBase) Outputs() []*Variable {
	outputs := make([]*Variable, len(b.outputs))
	for i, ref := range b.outputs {
		v := ref.Value()
		if v == nil {
			exceptions.Panicf("autodiff: output %d of a recorded function was reclaimed; "+
				"every output must stay alive until its backward pass completes", i)
		}
		outputs[i] = v
	}
	return outputs
}

// Forward panics: the concrete operation did not override it.
func (b *FunctionBase) Forward([]*tensor.RawTensor) []*tensor.RawTensor {
	exceptions.Panicf("autodiff: Forward not implemented")
	return nil
}

// Backward panics: the concrete operation did not override it.
func (b *FunctionBase) Backward([]*tensor.RawTensor) []*tensor.RawTensor {
	exceptions.Panicf("autodiff: Backward not implemented")
	return nil
}

// Apply runs f's forward pass over the inputs and wires the resulting
// Variables into the graph.
//
// The dispatch contract:
//  1. Extract the input values (an input with no data is a contract
//     violation and panics).
//  2. Invoke Forward.
//  3. Wrap every result as a new Variable.
//  4. If graph building is enabled, record generation = max input
//     generation, set this function as the creator of every output, and
//     store the inputs strongly and the outputs weakly.
//
// With graph building disabled the forward values are still computed and
// returned as Variables, but nothing is recorded: the outputs are leaves
// with generation 0 and no creator.
func Apply(f Function, inputs ...*Variable) []*Variable {
	if len(inputs) == 0 {
		exceptions.Panicf("autodiff: Apply(%s) requires at least one input", FunctionName(f))
	}
	xs := make([]*tensor.RawTensor, len(inputs))
	for i, in := range inputs {
		if in == nil || in.data == nil {
			exceptions.Panicf("autodiff: input %d of %s has no data", i, FunctionName(f))
		}
		xs[i] = in.data
	}

	ys := f.Forward(xs)
	outputs := make([]*Variable, len(ys))
	for i, y := range ys {
		outputs[i] = NewVariable(y)
	}

	if IsBackpropEnabled() {
		b := f.base()
		b.generation = 0
		for _, in := range inputs {
			if in.generation > b.generation {
				b.generation = in.generation
			}
		}
		b.inputs = inputs
		b.outputs = make([]weak.Pointer[Variable], len(outputs))
		for i, out := range outputs {
			out.SetCreator(f)
			b.outputs[i] = weak.Make(out)
		}
		klog.V(2).Infof("autodiff: recorded %s generation=%d inputs=%d outputs=%d",
			FunctionName(f), b.generation, len(inputs), len(outputs))
	}

	return outputs
}

// Apply1 is Apply for the common single-output case.
func Apply1(f Function, inputs ...*Variable) *Variable {
	outputs := Apply(f, inputs...)
	if len(outputs) != 1 {
		exceptions.Panicf("autodiff: %s produced %d outputs, expected exactly 1",
			FunctionName(f), len(outputs))
	}
	return outputs[0]
}

// FunctionName returns the bare type name of a Function implementation,
// e.g. "AddOp". Used for logging and graph export labels.
func FunctionName(f Function) string {
	name := strings.TrimPrefix(fmt.Sprintf("%T", f), "*")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
