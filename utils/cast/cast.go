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

// Package cast provides value conversion helpers for column ingestion,
// backed by spf13/cast with non-panicking default variants.
package cast

import (
	"time"

	spf13cast "github.com/spf13/cast"
)

// ToFloat64E converts v to float64, reporting conversion failure
func ToFloat64E(v interface{}) (float64, error) {
	return spf13cast.ToFloat64E(v)
}

// ToFloat64 converts v to float64, returning def when conversion fails
func ToFloat64(v interface{}, def float64) float64 {
	f, err := spf13cast.ToFloat64E(v)
	if err != nil {
		return def
	}
	return f
}

// ToInt64E converts v to int64, reporting conversion failure
func ToInt64E(v interface{}) (int64, error) {
	return spf13cast.ToInt64E(v)
}

// ToInt64 converts v to int64, returning def when conversion fails
func ToInt64(v interface{}, def int64) int64 {
	n, err := spf13cast.ToInt64E(v)
	if err != nil {
		return def
	}
	return n
}

// ToTimeE converts v to a time.Time. Numeric values are interpreted as
// Unix seconds, strings are parsed with the usual layouts.
func ToTimeE(v interface{}) (time.Time, error) {
	return spf13cast.ToTimeE(v)
}

// ToString converts v to its string form
func ToString(v interface{}) string {
	return spf13cast.ToString(v)
}
