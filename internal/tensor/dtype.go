// Package tensor implements the N-dimensional buffer the Ember autodiff
// engine computes on: shape and dtype introspection, element-wise float
// arithmetic, and reshape. It knows nothing about computation graphs.
package tensor

// DataType represents runtime type information for tensor buffers.
type DataType int

// Supported data types. The engine differentiates floating-point math only.
const (
	Float16 DataType = iota
	Float32
	Float64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float16:
		return 2
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float16:
		return "float16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}
