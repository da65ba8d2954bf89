package autodiff_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/autodiff/ops"
	"github.com/ember-ml/ember/internal/tensor"
)

func TestDotGraph(t *testing.T) {
	x := autodiff.NewNamedVariable(tensor.FromScalar(1, tensor.Float64), "x")
	y := ops.Add(ops.Square(x), ops.Exp(x))
	y.Name = "y"

	dot := autodiff.DotGraph(y, false)

	assert.True(t, strings.HasPrefix(dot, "digraph g {\n"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, `label="x"`)
	assert.Contains(t, dot, `label="y"`)
	assert.Contains(t, dot, `label="AddOp"`)
	assert.Contains(t, dot, `label="SquareOp"`)
	assert.Contains(t, dot, `label="ExpOp"`)
	assert.Contains(t, dot, "->")
}

func TestDotGraphVerbose(t *testing.T) {
	data, _ := tensor.FromFloat64([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	x := autodiff.NewNamedVariable(data, "x")
	y := ops.Square(x)

	dot := autodiff.DotGraph(y, true)
	assert.Contains(t, dot, "x: [2 2] float64")
}

func TestDotGraphLeaf(t *testing.T) {
	x := autodiff.NewNamedVariable(tensor.FromScalar(1, tensor.Float64), "x")
	dot := autodiff.DotGraph(x, false)

	// Just the one node, no functions or edges.
	assert.Contains(t, dot, `label="x"`)
	assert.NotContains(t, dot, "->")
}

func TestDotGraphReadsOnly(t *testing.T) {
	x := autodiff.NewVariable(tensor.FromScalar(2, tensor.Float64))
	y := ops.Square(x)

	autodiff.DotGraph(y, true)

	// Export must not disturb a later backward pass.
	y.Backward(false)
	assert.NotNil(t, x.Grad())
}
