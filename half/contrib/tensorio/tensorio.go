// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tensorio reads and writes half-precision tensors in the
// safetensors format.
//
// Tensor payloads are little-endian. F16 and BF16 tensors decode through
// the half package's bulk conversions; F32 tensors are read as is.
package tensorio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/nlpodyssey/safetensors"

	"github.com/ajroetker/go-half/half"
)

var (
	// ErrUnsupportedDType is returned for tensors that are not F16, BF16
	// or F32.
	ErrUnsupportedDType = errors.New("tensorio: unsupported dtype")

	// ErrShape is returned when the element count implied by a shape does
	// not match the data.
	ErrShape = errors.New("tensorio: shape does not match data")
)

// Tensor is a named tensor decoded to float32.
type Tensor struct {
	Name   string
	DType  safetensors.DType
	Shape  []uint64
	Values []float32
}

// Read parses a whole safetensors file and decodes every floating-point
// tensor. Tensors of other dtypes are returned in skipped by name.
func Read(b []byte) (tensors []Tensor, skipped []string, err error) {
	st, err := safetensors.Deserialize(b)
	if err != nil {
		return nil, nil, fmt.Errorf("tensorio: %w", err)
	}
	for _, nt := range st.Tensors() {
		values, err := DecodeFloat32s(nt.TensorView)
		if errors.Is(err, ErrUnsupportedDType) {
			skipped = append(skipped, nt.Name)
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("tensor %q: %w", nt.Name, err)
		}
		tensors = append(tensors, Tensor{
			Name:   nt.Name,
			DType:  nt.TensorView.DType(),
			Shape:  nt.TensorView.Shape(),
			Values: values,
		})
	}
	return tensors, skipped, nil
}

// DecodeFloat32s widens an F16, BF16 or F32 tensor to float32.
func DecodeFloat32s(tv safetensors.TensorView) ([]float32, error) {
	data := tv.Data()
	switch tv.DType() {
	case safetensors.F16:
		hs := make([]half.Float16, len(data)/2)
		half.DecodeFloat16sLE(hs, data)
		return half.ToFloat32s(hs), nil
	case safetensors.BF16:
		bs := make([]half.BFloat16, len(data)/2)
		half.DecodeBFloat16sLE(bs, data)
		return half.BFloat16ToFloat32s(bs), nil
	case safetensors.F32:
		out := make([]float32, len(data)/4)
		for i := range out {
			out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDType, tv.DType())
	}
}

// Float16s returns the values of an F16 tensor without widening them.
func Float16s(tv safetensors.TensorView) ([]half.Float16, error) {
	if tv.DType() != safetensors.F16 {
		return nil, fmt.Errorf("%w: want F16, have %s", ErrUnsupportedDType, tv.DType())
	}
	hs := make([]half.Float16, tv.DataLen()/2)
	half.DecodeFloat16sLE(hs, tv.Data())
	return hs, nil
}

// BFloat16s returns the values of a BF16 tensor without widening them.
func BFloat16s(tv safetensors.TensorView) ([]half.BFloat16, error) {
	if tv.DType() != safetensors.BF16 {
		return nil, fmt.Errorf("%w: want BF16, have %s", ErrUnsupportedDType, tv.DType())
	}
	bs := make([]half.BFloat16, tv.DataLen()/2)
	half.DecodeBFloat16sLE(bs, tv.Data())
	return bs, nil
}

// EncodeFloat16 narrows values to an F16 tensor of the given shape.
func EncodeFloat16(shape []uint64, values []float32) (safetensors.TensorView, error) {
	if err := checkShape(shape, len(values)); err != nil {
		return safetensors.TensorView{}, err
	}
	data := half.EncodeFloat16sLE(make([]byte, 0, 2*len(values)), half.FromFloat32s(values))
	return safetensors.NewTensorView(safetensors.F16, shape, data)
}

// EncodeBFloat16 narrows values to a BF16 tensor of the given shape.
func EncodeBFloat16(shape []uint64, values []float32) (safetensors.TensorView, error) {
	if err := checkShape(shape, len(values)); err != nil {
		return safetensors.TensorView{}, err
	}
	data := half.EncodeBFloat16sLE(make([]byte, 0, 2*len(values)), half.BFloat16FromFloat32s(values))
	return safetensors.NewTensorView(safetensors.BF16, shape, data)
}

// Write serializes tensors and optional metadata to w.
func Write(w io.Writer, tensors map[string]safetensors.TensorView, metadata map[string]string) error {
	if err := safetensors.SerializeToWriter(tensors, metadata, w); err != nil {
		return fmt.Errorf("tensorio: %w", err)
	}
	return nil
}

func checkShape(shape []uint64, n int) error {
	if len(shape) == 0 {
		return fmt.Errorf("%w: empty shape", ErrShape)
	}
	count := uint64(1)
	for _, d := range shape {
		count *= d
	}
	if count != uint64(n) {
		return fmt.Errorf("%w: shape %v holds %d elements, have %d", ErrShape, shape, count, n)
	}
	return nil
}

// Stats summarizes the values of a tensor. Min and Max ignore NaNs and
// are NaN when every value is NaN.
type Stats struct {
	Min, Max float32
	NaNs     int
	Infs     int
}

// Summarize computes Stats for values.
func Summarize(values []float32) Stats {
	s := Stats{Min: float32(math.NaN()), Max: float32(math.NaN())}
	for _, v := range values {
		f := float64(v)
		switch {
		case math.IsNaN(f):
			s.NaNs++
			continue
		case math.IsInf(f, 0):
			s.Infs++
		}
		if math.IsNaN(float64(s.Min)) || v < s.Min {
			s.Min = v
		}
		if math.IsNaN(float64(s.Max)) || v > s.Max {
			s.Max = v
		}
	}
	return s
}
