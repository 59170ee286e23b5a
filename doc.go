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

/*
Package rollwin is a rolling-window aggregation core for columnar data.

Given an input column and one precomputed frame per output row, rollwin
computes min, max, count, sum or avg over the elements each row's frame
makes visible. The engine's two central mechanisms are a type-support
predicate, which decides at plan-build time whether an operator is legal
on an element type, and a finalizer, which turns a raw accumulated value
and a valid-element count into the value stored in the output slot.

# Core Features

• Type-Gated Dispatch - Arithmetic element types support every operator;
wrapped ordinal types (timestamps, dates, durations, category codes)
support min, max and count only, and the illegal paths are never built

• Branch-Free Row Path - The finalizer variant (raw copy vs. divide by
count) is chosen when the plan is built, not per row

• Parallel-Safe Rows - Each row touches only its own output slot, so
callers may shard rows across goroutines freely

• Row Ingestion - The columns package derives typed input columns from
map rows, with expression support via expr-lang

# Getting Started

Rolling average over a numeric column:

	package main

	import (
		"fmt"

		"github.com/rulego/rollwin"
		"github.com/rulego/rollwin/types"
	)

	func main() {
		plan, err := rollwin.NewPlan[float64](types.Avg)
		if err != nil {
			panic(err)
		}

		src := []float64{1, 2, 3, 4, 5}
		// trailing window of up to three elements per row
		frames := make([]rollwin.Frame, len(src))
		for i := range src {
			frames[i] = rollwin.Frame{Start: max(0, i-2), End: i + 1}
		}

		dst := make([]float64, len(src))
		valid, err := plan.Apply(dst, src, frames)
		if err != nil {
			panic(err)
		}
		fmt.Println(dst, valid)
	}

Wrapped ordinal types go through NewOrderedPlan, where the predicate
admits min, max and count and rejects the arithmetic operators:

	latest, err := rollwin.NewOrderedPlan[types.Timestamp](types.Max)
*/
package rollwin
