/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package kernel

import (
	"errors"
	"fmt"

	"github.com/rulego/rollwin/aggregator"
	"github.com/rulego/rollwin/types"
)

// ErrUnsupported is returned when a kernel is requested for an
// (element type, operator) pair the type-support predicate rejects
var ErrUnsupported = errors.New("unsupported element type and operator combination")

// foldFunc accumulates one frame and returns the raw value with the
// valid-element count. Folds are closed over nothing mutable; each call
// keeps its accumulator on its own stack.
type foldFunc[T any] func(frame []T) (T, int)

// Kernel is the execution path for one legal (element type, operator)
// pair: an accumulation fold plus the finalizer variant, both selected
// when the kernel is built. The per-row path contains no operator
// branch, no allocation and no shared state, so rows may be computed in
// any order or in parallel.
type Kernel[T types.Element] struct {
	elem types.ElemType
	op   types.AggType
	fold foldFunc[T]
	fin  Finalizer[T]
}

// ElemType returns the descriptor of the kernel's element type
func (k *Kernel[T]) ElemType() types.ElemType { return k.elem }

// AggType returns the kernel's operator
func (k *Kernel[T]) AggType() types.AggType { return k.op }

// Row computes one output row: the frame is accumulated and the result
// finalized into out. An empty frame produces no write at all and Row
// reports false, so the caller can record a null result instead of
// inheriting a division by zero or a meaningless extreme.
func (k *Kernel[T]) Row(out *T, frame []T) bool {
	if len(frame) == 0 {
		return false
	}
	acc, count := k.fold(frame)
	k.fin(out, acc, count)
	return true
}

// ForNumeric builds the kernel for operator op over the arithmetic
// element type T. All five operators are legal on arithmetic types.
func ForNumeric[T types.Arithmetic](op types.AggType) (*Kernel[T], error) {
	elem := types.Of[T]()
	if !types.IsSupported(elem, op) {
		return nil, fmt.Errorf("%w: %s over %s", ErrUnsupported, op, elem)
	}
	k := &Kernel[T]{elem: elem, op: op}
	switch op {
	case types.Min:
		k.fold = foldMin[T]
		k.fin = StoreRaw[T]
	case types.Max:
		k.fold = foldMax[T]
		k.fin = StoreRaw[T]
	case types.Count:
		k.fold = foldCount[T]
		k.fin = StoreRaw[T]
	case types.Sum:
		k.fold = foldSum[T]
		k.fin = StoreRaw[T]
	case types.Avg:
		// same fold as sum; the finalizer performs the division
		k.fold = foldSum[T]
		k.fin = StoreAvg[T]
	}
	return k, nil
}

// ForOrdered builds the kernel for operator op over any ordered element
// type T, wrapped ordinal types included. Only min, max and count are
// legal here; sum and avg require ForNumeric, whose constraint the
// wrapped types cannot satisfy.
func ForOrdered[T types.Element](op types.AggType) (*Kernel[T], error) {
	elem := types.Of[T]()
	k := &Kernel[T]{elem: elem, op: op, fin: StoreRaw[T]}
	switch op {
	case types.Min:
		k.fold = foldMin[T]
	case types.Max:
		k.fold = foldMax[T]
	case types.Count:
		k.fold = foldCount[T]
	default:
		return nil, fmt.Errorf("%w: %s over %s", ErrUnsupported, op, elem)
	}
	return k, nil
}

func foldMin[T types.Element](frame []T) (T, int) {
	var a aggregator.Min[T]
	for _, v := range frame {
		a.Add(v)
	}
	return a.Value(), a.Count()
}

func foldMax[T types.Element](frame []T) (T, int) {
	var a aggregator.Max[T]
	for _, v := range frame {
		a.Add(v)
	}
	return a.Value(), a.Count()
}

func foldCount[T types.Element](frame []T) (T, int) {
	var a aggregator.Counter[T]
	for _, v := range frame {
		a.Add(v)
	}
	return a.Value(), a.Count()
}

func foldSum[T types.Arithmetic](frame []T) (T, int) {
	var a aggregator.Sum[T]
	for _, v := range frame {
		a.Add(v)
	}
	return a.Value(), a.Count()
}
