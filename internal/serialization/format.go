// Package serialization reads and writes the .ember tensor container: a
// small binary format for persisting named tensors, such as the parameters
// of a fitted model.
//
// Layout:
//
//	magic "EMBR" (4 bytes)
//	format version, uint32 little-endian
//	header size, uint64 little-endian
//	header JSON
//	zero padding to a 64-byte boundary
//	tensor data section (raw buffers, back to back)
//
// The header carries per-tensor metadata (name, dtype, shape, offset, size)
// and a SHA-256 checksum of the data section. Tensors are laid out in
// sorted name order, so writing the same state twice produces identical
// bytes.
package serialization

import (
	"time"

	"github.com/pkg/errors"

	"github.com/ember-ml/ember/internal/tensor"
)

// Format constants.
const (
	MagicBytes    = "EMBR"
	FormatVersion = 1
	DataAlignment = 64 // data section starts on a 64-byte boundary

	// MaxHeaderSize bounds the JSON header so a corrupted size field
	// cannot trigger a huge allocation.
	MaxHeaderSize = 64 << 20
)

const emberVersion = "0.1.0"

// Data type names used in headers.
const (
	DTypeFloat16 = "float16"
	DTypeFloat32 = "float32"
	DTypeFloat64 = "float64"
)

// Header is the JSON header of a .ember file.
type Header struct {
	FormatVersion int               `json:"format_version"`
	EmberVersion  string            `json:"ember_version"`
	CreatedAt     time.Time         `json:"created_at"`
	Tensors       []TensorMeta      `json:"tensors"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	Checksum      string            `json:"checksum"` // hex SHA-256 of the data section
}

// TensorMeta describes one tensor in the data section.
type TensorMeta struct {
	Name   string `json:"name"`
	DType  string `json:"dtype"`
	Shape  []int  `json:"shape"`
	Offset int64  `json:"offset"` // bytes from the start of the data section
	Size   int64  `json:"size"`
}

func dtypeToString(dt tensor.DataType) (string, error) {
	switch dt {
	case tensor.Float16:
		return DTypeFloat16, nil
	case tensor.Float32:
		return DTypeFloat32, nil
	case tensor.Float64:
		return DTypeFloat64, nil
	default:
		return "", errors.Errorf("unsupported dtype %v", dt)
	}
}

func stringToDType(s string) (tensor.DataType, error) {
	switch s {
	case DTypeFloat16:
		return tensor.Float16, nil
	case DTypeFloat32:
		return tensor.Float32, nil
	case DTypeFloat64:
		return tensor.Float64, nil
	default:
		return 0, errors.Errorf("unsupported dtype %q", s)
	}
}
