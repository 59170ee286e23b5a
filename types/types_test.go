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

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var arithmeticTypes = []ElemType{
	TypeInt8, TypeInt16, TypeInt32, TypeInt64,
	TypeUint8, TypeUint16, TypeUint32, TypeUint64,
	TypeFloat32, TypeFloat64,
}

var wrappedTypes = []ElemType{
	TypeTimestamp, TypeDate, TypeDuration, TypeCategory,
}

var allOps = []AggType{Min, Max, Count, Sum, Avg}

func TestIsSupported(t *testing.T) {
	t.Run("arithmetic types support every operator", func(t *testing.T) {
		for _, et := range arithmeticTypes {
			for _, op := range allOps {
				assert.True(t, IsSupported(et, op), "%s/%s", et, op)
			}
		}
	})

	t.Run("wrapped types support min max count only", func(t *testing.T) {
		for _, et := range wrappedTypes {
			assert.True(t, IsSupported(et, Min), "%s/min", et)
			assert.True(t, IsSupported(et, Max), "%s/max", et)
			assert.True(t, IsSupported(et, Count), "%s/count", et)
			assert.False(t, IsSupported(et, Sum), "%s/sum", et)
			assert.False(t, IsSupported(et, Avg), "%s/avg", et)
		}
	})

	t.Run("unknown inputs are unsupported", func(t *testing.T) {
		assert.False(t, IsSupported(TypeUnknown, Min))
		assert.False(t, IsSupported(TypeFloat64, AggType("median")))
		assert.False(t, IsSupported(TypeUnknown, AggType("")))
	})
}

func TestAggTypeValid(t *testing.T) {
	for _, op := range allOps {
		assert.True(t, op.Valid())
	}
	assert.False(t, AggType("stddev").Valid())
	assert.False(t, AggType("").Valid())
}

func TestElemTypeClassification(t *testing.T) {
	for _, et := range arithmeticTypes {
		assert.True(t, et.IsArithmetic(), et.String())
	}
	for _, et := range wrappedTypes {
		assert.False(t, et.IsArithmetic(), et.String())
	}
	assert.False(t, TypeUnknown.IsArithmetic())
}

func TestElemTypeString(t *testing.T) {
	assert.Equal(t, "int32", TypeInt32.String())
	assert.Equal(t, "float64", TypeFloat64.String())
	assert.Equal(t, "timestamp", TypeTimestamp.String())
	assert.Equal(t, "category", TypeCategory.String())
	assert.Equal(t, "unknown", TypeUnknown.String())
	assert.Equal(t, "unknown", ElemType(200).String())
}

func TestOf(t *testing.T) {
	assert.Equal(t, TypeInt8, Of[int8]())
	assert.Equal(t, TypeInt32, Of[int32]())
	assert.Equal(t, TypeInt64, Of[int64]())
	assert.Equal(t, TypeUint16, Of[uint16]())
	assert.Equal(t, TypeFloat32, Of[float32]())
	assert.Equal(t, TypeFloat64, Of[float64]())
	assert.Equal(t, TypeTimestamp, Of[Timestamp]())
	assert.Equal(t, TypeDate, Of[Date]())
	assert.Equal(t, TypeDuration, Of[Duration]())
	assert.Equal(t, TypeCategory, Of[Category]())
}

func TestTimestampConversion(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	ts := TimestampOf(at)
	require.Equal(t, at, ts.Time())

	// ordering follows the underlying representation
	later := TimestampOf(at.Add(time.Second))
	assert.True(t, ts < later)
}
