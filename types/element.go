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

import "time"

// Wrapped ordinal value types. Each wraps a fixed-width integer
// representation, so ordering and counting compile for them through the
// Element constraint, while none of them is a member of Arithmetic and
// therefore no summing or averaging path can ever be instantiated over
// them.

// Timestamp is a point in time as milliseconds since the Unix epoch
type Timestamp int64

// Time converts the timestamp back to a time.Time in UTC
func (ts Timestamp) Time() time.Time {
	return time.UnixMilli(int64(ts)).UTC()
}

// TimestampOf converts a time.Time to a Timestamp
func TimestampOf(t time.Time) Timestamp {
	return Timestamp(t.UnixMilli())
}

// Date is a calendar day as days since the Unix epoch
type Date int32

// Duration is an elapsed span in milliseconds
type Duration int64

// Category is a dictionary code referencing an external categorical
// dictionary. Codes order by their dictionary position.
type Category int32

// Arithmetic is the constraint satisfied by plain numeric element
// types. The type set is exact (no ~ terms), so wrapped types such as
// Timestamp never satisfy it even though they are defined on integers.
type Arithmetic interface {
	int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Element is the constraint satisfied by every type a rolling kernel
// can process: the arithmetic types plus the wrapped ordinal types.
// Every member is ordered, so min/max/count compile for all of them.
type Element interface {
	Arithmetic | Timestamp | Date | Duration | Category
}

// Of returns the ElemType descriptor for the Go element type T
func Of[T Element]() ElemType {
	var zero T
	switch any(zero).(type) {
	case int8:
		return TypeInt8
	case int16:
		return TypeInt16
	case int32:
		return TypeInt32
	case int64:
		return TypeInt64
	case uint8:
		return TypeUint8
	case uint16:
		return TypeUint16
	case uint32:
		return TypeUint32
	case uint64:
		return TypeUint64
	case float32:
		return TypeFloat32
	case float64:
		return TypeFloat64
	case Timestamp:
		return TypeTimestamp
	case Date:
		return TypeDate
	case Duration:
		return TypeDuration
	case Category:
		return TypeCategory
	default:
		return TypeUnknown
	}
}
