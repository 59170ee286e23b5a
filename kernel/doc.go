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
Package kernel builds the per-(element type, operator) execution paths
of the rolling-window engine and finalizes accumulated values into
output slots.

A Kernel pairs an accumulation fold with one of two finalizer variants.
Both are selected while the plan is being constructed, gated by the
type-support predicate in the types package, so the per-row path carries
no operator branch and an illegal combination never becomes an
executable path at all.

# Finalizer Variants

• StoreRaw - Writes the accumulated value through unchanged; used for
min, max, count and sum

• StoreAvg - Divides the accumulated sum by the valid-element count with
the element type's native division; used for avg only, and only
instantiable for arithmetic element types

# Per-Row Contract

Row touches exactly one output slot and nothing else: no allocation, no
logging, no shared state. Rows may therefore be computed in any order or
fully in parallel by the caller.
*/
package kernel
