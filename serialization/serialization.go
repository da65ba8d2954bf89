// Copyright 2025 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package serialization is the public API for the .ember tensor container,
// used to persist named tensors such as fitted parameters.
package serialization

import (
	"github.com/ember-ml/ember/internal/serialization"
	"github.com/ember-ml/ember/internal/tensor"
)

// Header is the JSON header of a .ember file.
type Header = serialization.Header

// TensorMeta describes one tensor in the data section.
type TensorMeta = serialization.TensorMeta

// Sentinel errors for file-level failures; match with errors.Is.
var (
	ErrInvalidMagic       = serialization.ErrInvalidMagic
	ErrUnsupportedVersion = serialization.ErrUnsupportedVersion
	ErrChecksumMismatch   = serialization.ErrChecksumMismatch
)

// SaveTensors writes the named tensors to path in .ember format.
func SaveTensors(path string, tensors map[string]*tensor.RawTensor, metadata map[string]string) error {
	return serialization.SaveTensors(path, tensors, metadata)
}

// LoadTensors reads a .ember file and reconstructs its named tensors.
func LoadTensors(path string) (map[string]*tensor.RawTensor, *Header, error) {
	return serialization.LoadTensors(path)
}

// Marshal encodes the named tensors as a .ember container in memory.
func Marshal(tensors map[string]*tensor.RawTensor, metadata map[string]string) ([]byte, error) {
	return serialization.Marshal(tensors, metadata)
}

// Unmarshal decodes a .ember container.
func Unmarshal(data []byte) (map[string]*tensor.RawTensor, *Header, error) {
	return serialization.Unmarshal(data)
}
