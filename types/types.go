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

package types

// AggType identifies a rolling aggregation operator
type AggType string

const (
	Min   AggType = "min"
	Max   AggType = "max"
	Count AggType = "count"
	Sum   AggType = "sum"
	Avg   AggType = "avg"
)

// Valid reports whether t is one of the known operators
func (t AggType) Valid() bool {
	switch t {
	case Min, Max, Count, Sum, Avg:
		return true
	}
	return false
}

// ElemType describes the semantic type of a column's elements.
// Arithmetic kinds carry plain numeric values; the remaining kinds are
// wrapped ordinal values that support ordering and counting but not
// arithmetic reduction.
type ElemType uint8

const (
	TypeUnknown ElemType = iota
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint64
	TypeFloat32
	TypeFloat64
	TypeTimestamp
	TypeDate
	TypeDuration
	TypeCategory
)

// IsArithmetic reports whether elements of this type support numeric
// reduction (addition and division), as opposed to ordering only
func (t ElemType) IsArithmetic() bool {
	return t >= TypeInt8 && t <= TypeFloat64
}

// String returns the lowercase name of the element type
func (t ElemType) String() string {
	switch t {
	case TypeInt8:
		return "int8"
	case TypeInt16:
		return "int16"
	case TypeInt32:
		return "int32"
	case TypeInt64:
		return "int64"
	case TypeUint8:
		return "uint8"
	case TypeUint16:
		return "uint16"
	case TypeUint32:
		return "uint32"
	case TypeUint64:
		return "uint64"
	case TypeFloat32:
		return "float32"
	case TypeFloat64:
		return "float64"
	case TypeTimestamp:
		return "timestamp"
	case TypeDate:
		return "date"
	case TypeDuration:
		return "duration"
	case TypeCategory:
		return "category"
	default:
		return "unknown"
	}
}

// IsSupported reports whether operator op may be applied to elements of
// type t. Arithmetic element types support every operator. Wrapped
// element types support only min, max and count; summing or averaging
// e.g. timestamps or category codes is not meaningful, even though
// ordering and counting are.
//
// The predicate is a pure function of the two descriptors. It is meant
// to be consulted once, while an execution plan is being built, to
// decide which (element type, operator) paths exist at all; it is never
// re-evaluated per row.
func IsSupported(t ElemType, op AggType) bool {
	if t == TypeUnknown || !op.Valid() {
		return false
	}
	return t.IsArithmetic() || op == Min || op == Max || op == Count
}
