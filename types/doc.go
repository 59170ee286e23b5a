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
Package types defines the shared contracts of the rolling-window engine:
element type descriptors, aggregation operator identifiers, and the
type-support predicate that decides which (element type, operator)
combinations may become execution paths.

# Core Concepts

• Element Types - Descriptors for arithmetic (numeric) and wrapped
(ordinal) column element types

• Aggregation Operators - min, max, count, sum and avg

• Type-Support Predicate - IsSupported answers, from descriptors alone,
whether an operator is legal on an element type; it is evaluated during
plan construction, never per row

• Generic Constraints - Arithmetic and Element mirror the two capability
classes at the Go type level, so an illegal combination such as
averaging timestamps is rejected by the compiler rather than at run time

# Usage

	ok := types.IsSupported(types.TypeTimestamp, types.Avg) // false
	ok = types.IsSupported(types.TypeTimestamp, types.Max)  // true
	ok = types.IsSupported(types.TypeFloat64, types.Avg)    // true
*/
package types
