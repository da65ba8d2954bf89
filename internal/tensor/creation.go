package tensor

import "github.com/pkg/errors"

// FromFloat32 creates a Float32 tensor from a slice of values.
func FromFloat32(values []float32, shape Shape) (*RawTensor, error) {
	if len(values) != shape.NumElements() {
		return nil, errors.Errorf("FromFloat32: %d values for shape %v (%d elements)",
			len(values), shape, shape.NumElements())
	}
	t, err := NewRaw(shape, Float32)
	if err != nil {
		return nil, err
	}
	copy(t.AsFloat32(), values)
	return t, nil
}

// FromFloat64 creates a Float64 tensor from a slice of values.
func FromFloat64(values []float64, shape Shape) (*RawTensor, error) {
	if len(values) != shape.NumElements() {
		return nil, errors.Errorf("FromFloat64: %d values for shape %v (%d elements)",
			len(values), shape, shape.NumElements())
	}
	t, err := NewRaw(shape, Float64)
	if err != nil {
		return nil, err
	}
	copy(t.AsFloat64(), values)
	return t, nil
}

// FromScalar creates a zero-dimensional tensor holding a single value.
// Scalars promoted into the graph always take this form; the engine never
// wraps naked numbers.
func FromScalar(value float64, dtype DataType) *RawTensor {
	t := mustNewRaw(Shape{}, dtype)
	t.SetFloat64s([]float64{value})
	return t
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64, dtype DataType) (*RawTensor, error) {
	t, err := NewRaw(shape, dtype)
	if err != nil {
		return nil, err
	}
	fill(t, value)
	return t, nil
}

// FullLike creates a tensor with t's shape and dtype, filled with value.
func FullLike(t *RawTensor, value float64) *RawTensor {
	out := mustNewRaw(t.shape, t.dtype)
	fill(out, value)
	return out
}

// ZerosLike creates a zero tensor with t's shape and dtype.
func ZerosLike(t *RawTensor) *RawTensor {
	return mustNewRaw(t.shape, t.dtype)
}

// OnesLike creates a ones tensor with t's shape and dtype. This is the
// conventional seed gradient of an output with respect to itself.
func OnesLike(t *RawTensor) *RawTensor {
	return FullLike(t, 1)
}

func fill(t *RawTensor, value float64) {
	values := make([]float64, t.NumElements())
	for i := range values {
		values[i] = value
	}
	t.SetFloat64s(values)
}
