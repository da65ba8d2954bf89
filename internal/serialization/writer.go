package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"os"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/ember-ml/ember/internal/tensor"
)

// SaveTensors writes the named tensors to path in .ember format. Tensors
// are laid out in sorted name order; metadata may be nil.
func SaveTensors(path string, tensors map[string]*tensor.RawTensor, metadata map[string]string) error {
	data, err := Marshal(tensors, metadata)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "serialization: write file")
	}
	return nil
}

// Marshal encodes the named tensors as a .ember container.
func Marshal(tensors map[string]*tensor.RawTensor, metadata map[string]string) ([]byte, error) {
	names := make([]string, 0, len(tensors))
	for name := range tensors {
		if name == "" {
			return nil, errors.New("serialization: empty tensor name")
		}
		names = append(names, name)
	}
	sort.Strings(names)

	header := Header{
		FormatVersion: FormatVersion,
		EmberVersion:  emberVersion,
		CreatedAt:     time.Now().UTC(),
		Tensors:       make([]TensorMeta, 0, len(names)),
		Metadata:      metadata,
	}

	var dataSection bytes.Buffer
	for _, name := range names {
		raw := tensors[name]
		if raw == nil {
			return nil, errors.Errorf("serialization: tensor %q is nil", name)
		}
		dtype, err := dtypeToString(raw.DType())
		if err != nil {
			return nil, errors.Wrapf(err, "serialization: tensor %q", name)
		}
		header.Tensors = append(header.Tensors, TensorMeta{
			Name:   name,
			DType:  dtype,
			Shape:  []int(raw.Shape()),
			Offset: int64(dataSection.Len()),
			Size:   int64(raw.ByteSize()),
		})
		dataSection.Write(raw.Data())
	}
	header.Checksum = checksumHex(dataSection.Bytes())

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return nil, errors.Wrap(err, "serialization: marshal header")
	}

	var out bytes.Buffer
	out.WriteString(MagicBytes)
	binary.Write(&out, binary.LittleEndian, uint32(FormatVersion))
	binary.Write(&out, binary.LittleEndian, uint64(len(headerJSON)))
	out.Write(headerJSON)

	if padding := (DataAlignment - out.Len()%DataAlignment) % DataAlignment; padding > 0 {
		out.Write(make([]byte, padding))
	}
	out.Write(dataSection.Bytes())

	return out.Bytes(), nil
}
