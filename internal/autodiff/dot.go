package autodiff

import (
	"fmt"
	"strings"
)

// DotGraph renders the computation graph that produced output as Graphviz
// DOT text. The walk follows creator links and input lists read-only: it
// never touches gradients or creator state, and it skips leaves (Variables
// with no creator).
//
// With verbose set, Variable nodes are labeled with their shape and dtype
// in addition to their name.
func DotGraph(output *Variable, verbose bool) string {
	var sb strings.Builder
	sb.WriteString("digraph g {\n")

	seen := make(map[Function]bool)
	var stack []Function
	push := func(f Function) {
		if f == nil || seen[f] {
			return
		}
		seen[f] = true
		stack = append(stack, f)
	}

	sb.WriteString(dotVariable(output, verbose))
	push(output.creator)

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		sb.WriteString(dotFunction(f))
		for _, x := range f.Inputs() {
			sb.WriteString(dotVariable(x, verbose))
			push(x.creator)
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

func dotVariable(v *Variable, verbose bool) string {
	label := v.Name
	if verbose && v.data != nil {
		if label != "" {
			label += ": "
		}
		label += fmt.Sprintf("%v %s", []int(v.data.Shape()), v.data.DType())
	}
	return fmt.Sprintf("%q [label=%q, color=orange, style=filled]\n", nodeID(v), label)
}

func dotFunction(f Function) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%q [label=%q, color=lightblue, style=filled, shape=box]\n",
		nodeID(f), FunctionName(f))
	for _, x := range f.Inputs() {
		fmt.Fprintf(&sb, "%q -> %q\n", nodeID(x), nodeID(f))
	}
	for _, y := range f.Outputs() {
		fmt.Fprintf(&sb, "%q -> %q\n", nodeID(f), nodeID(y))
	}
	return sb.String()
}

// nodeID identifies a graph node by address; identity, not value, names
// nodes in the export.
func nodeID(x any) string {
	return fmt.Sprintf("%p", x)
}
