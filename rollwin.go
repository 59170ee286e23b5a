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

package rollwin

import (
	"errors"
	"fmt"

	"github.com/rulego/rollwin/kernel"
	"github.com/rulego/rollwin/logger"
	"github.com/rulego/rollwin/types"
)

var (
	// ErrEmptyFrame is returned in strict mode when a frame contains no
	// elements
	ErrEmptyFrame = errors.New("window frame contains no elements")
	// ErrLengthMismatch is returned when dst and frames disagree on the
	// number of output rows
	ErrLengthMismatch = errors.New("output and frame slices differ in length")
)

// Frame is the half-open element range [Start, End) visible to one
// output row. How frames are derived from window size and offsets is
// the caller's concern; the engine only consumes them.
type Frame struct {
	Start int
	End   int
}

// Len returns the number of elements in the frame
func (f Frame) Len() int { return f.End - f.Start }

// Plan is a ready-to-run rolling aggregation over one column: the
// kernel for a legal (element type, operator) pair plus run options.
// Build a Plan once per column and operator, then Apply it to as many
// batches as needed.
type Plan[T types.Element] struct {
	kernel *kernel.Kernel[T]
	config config
}

// NewPlan builds a rolling aggregation plan for an arithmetic element
// type. Every operator is legal here.
func NewPlan[T types.Arithmetic](op types.AggType, opts ...Option) (*Plan[T], error) {
	k, err := kernel.ForNumeric[T](op)
	if err != nil {
		return nil, err
	}
	return newPlan(k, opts), nil
}

// NewOrderedPlan builds a rolling aggregation plan for any ordered
// element type, the wrapped ordinal types included. Only min, max and
// count are legal; the type-support predicate rejects the rest.
func NewOrderedPlan[T types.Element](op types.AggType, opts ...Option) (*Plan[T], error) {
	k, err := kernel.ForOrdered[T](op)
	if err != nil {
		return nil, err
	}
	return newPlan(k, opts), nil
}

func newPlan[T types.Element](k *kernel.Kernel[T], opts []Option) *Plan[T] {
	p := &Plan[T]{kernel: k, config: defaultConfig()}
	for _, opt := range opts {
		opt(&p.config)
	}
	logger.Debug("rollwin: built plan %s over %s", k.AggType(), k.ElemType())
	return p
}

// ElemType returns the descriptor of the plan's element type
func (p *Plan[T]) ElemType() types.ElemType { return p.kernel.ElemType() }

// AggType returns the plan's operator
func (p *Plan[T]) AggType() types.AggType { return p.kernel.AggType() }

// Apply computes one aggregate per frame over src and writes the
// results into dst. dst and frames must have equal length; src is the
// input column the frames index into.
//
// The returned validity slice holds one flag per output row. A row with
// an empty frame gets a false flag and its slot in dst is left
// untouched, so the caller can surface it as null. With the
// WithStrictFrames option an empty frame is an error instead.
//
// Each row writes only its own dst slot, so callers are free to shard
// dst/frames and run Apply on the shards concurrently.
func (p *Plan[T]) Apply(dst []T, src []T, frames []Frame) ([]bool, error) {
	if len(dst) != len(frames) {
		return nil, fmt.Errorf("%w: %d outputs, %d frames", ErrLengthMismatch, len(dst), len(frames))
	}
	valid := make([]bool, len(frames))
	for i, f := range frames {
		if f.Start < 0 || f.End > len(src) || f.Start > f.End {
			return nil, fmt.Errorf("frame %d out of range: [%d, %d) over %d elements", i, f.Start, f.End, len(src))
		}
		ok := p.kernel.Row(&dst[i], src[f.Start:f.End])
		if !ok && p.config.strictFrames {
			return nil, fmt.Errorf("%w: frame %d", ErrEmptyFrame, i)
		}
		valid[i] = ok
	}
	return valid, nil
}

// Pair is one legal (element type, operator) combination
type Pair struct {
	Elem types.ElemType
	Agg  types.AggType
}

// Enumerate sweeps the type-support predicate over every combination of
// the given element types and operators and returns the legal pairs.
// This is the plan-time walk a dispatcher performs to decide which
// execution paths to build.
func Enumerate(elems []types.ElemType, ops []types.AggType) []Pair {
	pairs := make([]Pair, 0, len(elems)*len(ops))
	for _, et := range elems {
		for _, op := range ops {
			if types.IsSupported(et, op) {
				pairs = append(pairs, Pair{Elem: et, Agg: op})
			} else {
				logger.Debug("rollwin: skipping unsupported pair %s over %s", op, et)
			}
		}
	}
	return pairs
}
