package autodiff

import (
	"strings"
	"testing"
	"weak"

	"github.com/ember-ml/ember/internal/tensor"
)

func assertPanics(t *testing.T, msg string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic, got none", msg)
		}
	}()
	fn()
}

func TestNewVariable(t *testing.T) {
	data := tensor.FromScalar(3, tensor.Float64)
	v := NewVariable(data)

	if v.Data() != data {
		t.Error("Data should return the tensor passed in")
	}
	if v.Grad() != nil {
		t.Error("a fresh Variable has no gradient")
	}
	if v.Creator() != nil {
		t.Error("a leaf Variable has no creator")
	}
	if v.Generation() != 0 {
		t.Errorf("leaf generation = %d, want 0", v.Generation())
	}
}

func TestNamedVariable(t *testing.T) {
	v := NewNamedVariable(tensor.FromScalar(1, tensor.Float64), "x")
	if v.Name != "x" {
		t.Errorf("Name = %q, want %q", v.Name, "x")
	}
}

func TestVariablePlaceholderPanics(t *testing.T) {
	v := NewVariable(nil)
	assertPanics(t, "Shape on nil data", func() { v.Shape() })
	assertPanics(t, "NumElements on nil data", func() { v.NumElements() })
	assertPanics(t, "DType on nil data", func() { v.DType() })
}

func TestVariableString(t *testing.T) {
	if got := NewVariable(nil).String(); got != "variable(nil)" {
		t.Errorf("String() = %q, want %q", got, "variable(nil)")
	}
	v := NewVariable(tensor.FromScalar(2, tensor.Float64))
	if got := v.String(); !strings.Contains(got, "float64") {
		t.Errorf("String() = %q, should mention the dtype", got)
	}
}

func TestSetCreatorDerivesGeneration(t *testing.T) {
	f := &FunctionBase{generation: 3}
	v := NewVariable(tensor.FromScalar(0, tensor.Float64))
	v.SetCreator(funcOnly{f})

	if v.Generation() != 4 {
		t.Errorf("generation = %d, want creator generation + 1 = 4", v.Generation())
	}
	if v.Creator() == nil {
		t.Error("SetCreator should record the creator")
	}
}

// funcOnly promotes a bare FunctionBase to a Function for bookkeeping tests.
type funcOnly struct{ *FunctionBase }

func TestUnimplementedForwardBackwardPanic(t *testing.T) {
	var b FunctionBase
	assertPanics(t, "default Forward", func() { b.Forward(nil) })
	assertPanics(t, "default Backward", func() { b.Backward(nil) })
}

func TestOutputsPanicsOnReclaimedReference(t *testing.T) {
	// A zero-value weak.Pointer resolves to nil, exactly what a reclaimed
	// output looks like.
	b := &FunctionBase{outputs: []weak.Pointer[Variable]{{}}}
	assertPanics(t, "Outputs with reclaimed reference", func() { b.Outputs() })
}

func TestBackwardOnLeafIsNoOp(t *testing.T) {
	v := NewVariable(tensor.FromScalar(5, tensor.Float64))
	v.Backward(false)
	if v.Grad() != nil {
		t.Error("Backward on a leaf must not seed a gradient")
	}
}

func TestClearGrad(t *testing.T) {
	v := NewVariable(tensor.FromScalar(5, tensor.Float64))
	v.grad = tensor.OnesLike(v.data)
	v.ClearGrad()
	if v.Grad() != nil {
		t.Error("ClearGrad should discard the gradient")
	}
}
