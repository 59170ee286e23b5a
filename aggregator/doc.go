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
Package aggregator provides the typed accumulators of the rolling-window
engine.

Each accumulator folds the elements of one window frame into a raw
accumulated value plus a valid-element count. Finalization of that pair
into an output value is not this package's concern; see the kernel
package.

# Core Features

• Typed Accumulation - Generic over the column's element type, no boxing
in the per-frame path

• Capability Split - Sum requires an arithmetic element type; Min, Max
and Counter accept any ordered element type including the wrapped
ordinal types

• Value Semantics - Accumulators are small value structs; one per frame,
no shared state, safe under any parallel frame schedule
*/
package aggregator
