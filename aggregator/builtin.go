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

package aggregator

import (
	"github.com/rulego/rollwin/types"
)

// Accumulator combines the elements of one window frame into a raw
// accumulated value. The value is raw in the sense that it has not been
// finalized yet; for an average the accumulator produces the sum and
// the finalizer performs the division.
//
// Accumulators are plain value types with no internal references, so a
// fresh one per frame lives on the caller's stack and frames never
// share state.
type Accumulator[T any] interface {
	// Add folds one element into the accumulation
	Add(v T)
	// Value returns the raw accumulated value
	Value() T
	// Count returns the number of elements added so far
	Count() int
}

// Ensure the builtin accumulators implement the interface
var (
	_ Accumulator[int64]           = (*Sum[int64])(nil)
	_ Accumulator[float64]         = (*Min[float64])(nil)
	_ Accumulator[types.Timestamp] = (*Max[types.Timestamp])(nil)
	_ Accumulator[types.Category]  = (*Counter[types.Category])(nil)
)

// Sum accumulates the arithmetic sum of the frame's elements
type Sum[T types.Arithmetic] struct {
	value T
	n     int
}

func (s *Sum[T]) Add(v T) {
	s.value += v
	s.n++
}

func (s *Sum[T]) Value() T { return s.value }

func (s *Sum[T]) Count() int { return s.n }

// Min tracks the smallest element seen in the frame
type Min[T types.Element] struct {
	value T
	n     int
}

func (m *Min[T]) Add(v T) {
	if m.n == 0 || v < m.value {
		m.value = v
	}
	m.n++
}

func (m *Min[T]) Value() T { return m.value }

func (m *Min[T]) Count() int { return m.n }

// Max tracks the largest element seen in the frame
type Max[T types.Element] struct {
	value T
	n     int
}

func (m *Max[T]) Add(v T) {
	if m.n == 0 || v > m.value {
		m.value = v
	}
	m.n++
}

func (m *Max[T]) Value() T { return m.value }

func (m *Max[T]) Count() int { return m.n }

// Counter counts the frame's elements. The count is carried in the
// element type itself so that it can be written to an output slot of
// the same type as the input column.
type Counter[T types.Element] struct {
	n int
}

func (c *Counter[T]) Add(T) { c.n++ }

func (c *Counter[T]) Value() T { return T(c.n) }

func (c *Counter[T]) Count() int { return c.n }
