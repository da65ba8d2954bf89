package autodiff

import (
	"container/heap"
	"fmt"

	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"

	"github.com/ember-ml/ember/internal/tensor"
)

// Variable is a node in the computation graph: a tensor value, its
// accumulated gradient, and a back-link to the Function that produced it.
// Leaf Variables (user-created inputs) have no creator and generation 0.
//
// Identity for graph bookkeeping is pointer identity.
type Variable struct {
	// Name is an optional label used by the graph exporter.
	Name string

	data       *tensor.RawTensor
	grad       *tensor.RawTensor
	creator    Function
	generation int
}

// NewVariable creates a leaf Variable. A nil data tensor is the explicit
// placeholder state; derived properties panic on it until data is set.
func NewVariable(data *tensor.RawTensor) *Variable {
	return &Variable{data: data}
}

// NewNamedVariable creates a leaf Variable with a display name.
func NewNamedVariable(data *tensor.RawTensor, name string) *Variable {
	return &Variable{Name: name, data: data}
}

// Data returns the tensor value, which may be nil for a placeholder.
func (v *Variable) Data() *tensor.RawTensor {
	return v.data
}

// SetData replaces the tensor value in place. Numeric differentiation uses
// this to evaluate a function at perturbed points.
func (v *Variable) SetData(data *tensor.RawTensor) {
	v.data = data
}

// Grad returns the accumulated gradient, or nil if none has been computed.
func (v *Variable) Grad() *tensor.RawTensor {
	return v.grad
}

// Creator returns the Function that produced this Variable, or nil for a
// leaf.
func (v *Variable) Creator() Function {
	return v.creator
}

// Generation is the longest-path distance from any leaf to this node. It
// orders the backward traversal.
func (v *Variable) Generation() int {
	return v.generation
}

// SetCreator links v to the Function that produced it and derives its
// generation from the creator's.
func (v *Variable) SetCreator(f Function) {
	v.creator = f
	v.generation = f.Generation() + 1
}

// ClearGrad discards the accumulated gradient. Call it between backward
// passes to avoid accumulating across runs.
func (v *Variable) ClearGrad() {
	v.grad = nil
}

func (v *Variable) mustData(op string) *tensor.RawTensor {
	if v.data == nil {
		exceptions.Panicf("autodiff: %s on a Variable with no data", op)
	}
	return v.data
}

// Shape returns the value's shape. Panics if the Variable has no data.
func (v *Variable) Shape() tensor.Shape {
	return v.mustData("Shape").Shape()
}

// NumElements returns the value's element count. Panics if the Variable has
// no data.
func (v *Variable) NumElements() int {
	return v.mustData("NumElements").NumElements()
}

// DType returns the value's data type. Panics if the Variable has no data.
func (v *Variable) DType() tensor.DataType {
	return v.mustData("DType").DType()
}

func (v *Variable) String() string {
	if v.data == nil {
		return "variable(nil)"
	}
	return fmt.Sprintf("variable(%s)", v.data)
}

// Backward computes gradients for this Variable and every ancestor
// reachable through creator links.
//
// If this Variable has no gradient yet it is seeded with ones, the
// conventional gradient of an output with respect to itself. The traversal
// pops the pending Function with the greatest generation first, which
// guarantees that a Function runs only after every downstream consumer has
// contributed its share of the output gradients. Gradients arriving at the
// same Variable through multiple paths are summed.
//
// Unless retainGrad is true, the gradients of each processed Function's own
// outputs are cleared once consumed, bounding retained memory to the live
// frontier of the traversal.
func (v *Variable) Backward(retainGrad bool) {
	if v.creator == nil {
		// A leaf has nothing to propagate.
		return
	}
	if v.grad == nil {
		v.grad = tensor.OnesLike(v.mustData("Backward"))
	}

	pending := &functionQueue{}
	seen := make(map[Function]bool)
	seq := 0
	push := func(f Function) {
		if seen[f] {
			return
		}
		seen[f] = true
		heap.Push(pending, queuedFunction{fn: f, seq: seq})
		seq++
	}
	push(v.creator)

	for pending.Len() > 0 {
		f := heap.Pop(pending).(queuedFunction).fn
		if klog.V(2).Enabled() {
			klog.Infof("autodiff: backward %s generation=%d", FunctionName(f), f.Generation())
		}

		outputs := f.Outputs()
		gys := make([]*tensor.RawTensor, len(outputs))
		for i, y := range outputs {
			if y.grad != nil {
				gys[i] = y.grad
				continue
			}
			// An output no downstream consumer touched still takes part in
			// the vector-Jacobian product; it contributes zeros.
			gys[i] = tensor.ZerosLike(y.mustData("Backward"))
		}

		gxs := f.Backward(gys)
		inputs := f.Inputs()
		if len(gxs) != len(inputs) {
			exceptions.Panicf("autodiff: %s.Backward returned %d gradients for %d inputs",
				FunctionName(f), len(gxs), len(inputs))
		}

		for i, x := range inputs {
			gx := gxs[i]
			if gx == nil {
				continue
			}
			if x.grad == nil {
				x.grad = gx
			} else {
				x.grad = tensor.Add(x.grad, gx)
			}
			if x.creator != nil {
				push(x.creator)
			}
		}

		if !retainGrad {
			for _, y := range outputs {
				y.grad = nil
			}
		}
	}
}

// queuedFunction pairs a pending Function with its insertion sequence so
// equal generations dequeue in a deterministic order.
type queuedFunction struct {
	fn  Function
	seq int
}

// functionQueue is a max-heap of pending Functions keyed on generation.
type functionQueue struct {
	items []queuedFunction
}

func (q *functionQueue) Len() int { return len(q.items) }

func (q *functionQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.fn.Generation() != b.fn.Generation() {
		return a.fn.Generation() > b.fn.Generation()
	}
	return a.seq < b.seq
}

func (q *functionQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

func (q *functionQueue) Push(x any) {
	q.items = append(q.items, x.(queuedFunction))
}

func (q *functionQueue) Pop() any {
	last := q.items[len(q.items)-1]
	q.items = q.items[:len(q.items)-1]
	return last
}
