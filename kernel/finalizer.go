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

import "github.com/rulego/rollwin/types"

// Finalizer turns a raw accumulated value and its valid-element count
// into the value stored in one output slot. Its only effect is a single
// write through out. The variant is chosen once when the kernel is
// built, never branched on per row.
type Finalizer[T any] func(out *T, acc T, count int)

// StoreRaw writes the accumulated value through unchanged. The count is
// ignored. Used for min, max, count and sum.
func StoreRaw[T any](out *T, acc T, _ int) {
	*out = acc
}

// StoreAvg divides the accumulated sum by the valid-element count using
// the element type's native division, then writes the quotient. Integer
// element types truncate. Callers must not pass a zero count; drivers
// in this module skip empty frames before finalization.
func StoreAvg[T types.Arithmetic](out *T, acc T, count int) {
	*out = acc / T(count)
}
