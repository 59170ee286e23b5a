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
Package columns turns heterogeneous map rows into the typed input
columns the rolling-window kernels consume.

# Core Features

• Derived Columns - Compile an expression once with expr-lang and
evaluate it per row into a float64 column, e.g. "temperature * 1.8 + 32"

• Field Extraction - Pull a single field out of every row as a float64,
int64 or timestamp column with automatic conversion

• Fail Early - Expression and conversion errors surface while the column
is built, never inside the per-row aggregation path
*/
package columns
