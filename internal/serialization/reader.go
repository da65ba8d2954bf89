package serialization

import (
	"encoding/binary"
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/ember-ml/ember/internal/tensor"
)

// LoadTensors reads a .ember file and reconstructs its named tensors.
func LoadTensors(path string) (map[string]*tensor.RawTensor, *Header, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "serialization: read file")
	}
	return Unmarshal(data)
}

// Unmarshal decodes a .ember container. The data section checksum and every
// tensor's bounds are validated before any tensor is materialized.
func Unmarshal(data []byte) (map[string]*tensor.RawTensor, *Header, error) {
	const fixedPrefix = 4 + 4 + 8 // magic + version + header size
	if len(data) < fixedPrefix {
		return nil, nil, errors.Wrap(ErrInvalidMagic, "serialization: file too short")
	}
	if string(data[:4]) != MagicBytes {
		return nil, nil, errors.WithStack(ErrInvalidMagic)
	}
	version := binary.LittleEndian.Uint32(data[4:8])
	if version != FormatVersion {
		return nil, nil, errors.Wrapf(ErrUnsupportedVersion, "serialization: version %d", version)
	}
	headerSize := binary.LittleEndian.Uint64(data[8:16])
	if headerSize > MaxHeaderSize {
		return nil, nil, errors.Wrapf(ErrHeaderTooLarge, "serialization: header size %d", headerSize)
	}
	headerEnd := uint64(fixedPrefix) + headerSize
	if headerEnd > uint64(len(data)) {
		return nil, nil, errors.Wrap(ErrHeaderTooLarge, "serialization: header past end of file")
	}

	var header Header
	if err := json.Unmarshal(data[fixedPrefix:headerEnd], &header); err != nil {
		return nil, nil, errors.Wrap(err, "serialization: decode header")
	}

	dataStart := (headerEnd + DataAlignment - 1) / DataAlignment * DataAlignment
	if dataStart > uint64(len(data)) {
		return nil, nil, errors.Wrap(ErrOutOfBounds, "serialization: missing data section")
	}
	dataSection := data[dataStart:]

	if got := checksumHex(dataSection); got != header.Checksum {
		return nil, nil, errors.Wrapf(ErrChecksumMismatch,
			"serialization: computed %s, header says %s", got, header.Checksum)
	}

	tensors := make(map[string]*tensor.RawTensor, len(header.Tensors))
	for _, meta := range header.Tensors {
		raw, err := materialize(meta, dataSection)
		if err != nil {
			return nil, nil, err
		}
		tensors[meta.Name] = raw
	}
	return tensors, &header, nil
}

func materialize(meta TensorMeta, dataSection []byte) (*tensor.RawTensor, error) {
	dtype, err := stringToDType(meta.DType)
	if err != nil {
		return nil, errors.Wrapf(err, "serialization: tensor %q", meta.Name)
	}
	shape := tensor.Shape(meta.Shape)

	// Each term is checked on its own: summing Offset and Size first could
	// overflow int64 on a crafted header and slip past the comparison.
	n := int64(len(dataSection))
	if meta.Offset < 0 || meta.Size < 0 || meta.Offset > n || meta.Size > n-meta.Offset {
		return nil, errors.Wrapf(ErrOutOfBounds, "serialization: tensor %q", meta.Name)
	}
	if want := int64(shape.NumElements() * dtype.Size()); meta.Size != want {
		return nil, errors.Wrapf(ErrSizeMismatch,
			"serialization: tensor %q has %d bytes, shape %v needs %d", meta.Name, meta.Size, shape, want)
	}

	raw, err := tensor.NewRaw(shape, dtype)
	if err != nil {
		return nil, errors.Wrapf(err, "serialization: tensor %q", meta.Name)
	}
	copy(raw.Data(), dataSection[meta.Offset:meta.Offset+meta.Size])
	return raw, nil
}
