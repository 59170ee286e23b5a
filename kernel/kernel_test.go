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

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/rollwin/types"
)

func TestForNumeric(t *testing.T) {
	t.Run("sum over int32", func(t *testing.T) {
		k, err := ForNumeric[int32](types.Sum)
		require.NoError(t, err)
		assert.Equal(t, types.TypeInt32, k.ElemType())
		assert.Equal(t, types.Sum, k.AggType())

		var out int32
		ok := k.Row(&out, []int32{4, 5, 6})
		assert.True(t, ok)
		assert.Equal(t, int32(15), out)
	})

	t.Run("avg over int32 truncates", func(t *testing.T) {
		k, err := ForNumeric[int32](types.Avg)
		require.NoError(t, err)

		var out int32
		require.True(t, k.Row(&out, []int32{3, 3, 4}))
		assert.Equal(t, int32(3), out)
	})

	t.Run("avg over int32 exact", func(t *testing.T) {
		k, err := ForNumeric[int32](types.Avg)
		require.NoError(t, err)

		var out int32
		require.True(t, k.Row(&out, []int32{2, 3, 4}))
		assert.Equal(t, int32(3), out)
	})

	t.Run("avg over float64", func(t *testing.T) {
		k, err := ForNumeric[float64](types.Avg)
		require.NoError(t, err)

		var out float64
		require.True(t, k.Row(&out, []float64{1.0, 2.0, 3.0, 4.0}))
		assert.Equal(t, 2.5, out)
	})

	t.Run("min and max over float64", func(t *testing.T) {
		lo, err := ForNumeric[float64](types.Min)
		require.NoError(t, err)
		hi, err := ForNumeric[float64](types.Max)
		require.NoError(t, err)

		frame := []float64{3.5, -1.25, 9.75, 0}
		var out float64
		require.True(t, lo.Row(&out, frame))
		assert.Equal(t, -1.25, out)
		require.True(t, hi.Row(&out, frame))
		assert.Equal(t, 9.75, out)
	})

	t.Run("count over uint64", func(t *testing.T) {
		k, err := ForNumeric[uint64](types.Count)
		require.NoError(t, err)

		var out uint64
		require.True(t, k.Row(&out, []uint64{10, 20, 30}))
		assert.Equal(t, uint64(3), out)
	})

	t.Run("unknown operator is rejected", func(t *testing.T) {
		_, err := ForNumeric[int64](types.AggType("median"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupported)
	})
}

func TestForOrdered(t *testing.T) {
	t.Run("min max count over timestamps", func(t *testing.T) {
		frame := []types.Timestamp{500, 100, 300}

		lo, err := ForOrdered[types.Timestamp](types.Min)
		require.NoError(t, err)
		hi, err := ForOrdered[types.Timestamp](types.Max)
		require.NoError(t, err)
		cnt, err := ForOrdered[types.Timestamp](types.Count)
		require.NoError(t, err)

		var out types.Timestamp
		require.True(t, lo.Row(&out, frame))
		assert.Equal(t, types.Timestamp(100), out)
		require.True(t, hi.Row(&out, frame))
		assert.Equal(t, types.Timestamp(500), out)
		require.True(t, cnt.Row(&out, frame))
		assert.Equal(t, types.Timestamp(3), out)
	})

	t.Run("count over category codes", func(t *testing.T) {
		k, err := ForOrdered[types.Category](types.Count)
		require.NoError(t, err)
		assert.Equal(t, types.TypeCategory, k.ElemType())

		var out types.Category
		require.True(t, k.Row(&out, []types.Category{2, 2, 5, 1, 2, 5, 9}))
		assert.Equal(t, types.Category(7), out)
	})

	t.Run("sum over category codes is rejected", func(t *testing.T) {
		_, err := ForOrdered[types.Category](types.Sum)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupported)
	})

	t.Run("avg over timestamps is rejected", func(t *testing.T) {
		_, err := ForOrdered[types.Timestamp](types.Avg)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupported)
	})
}

func TestKernelRowEmptyFrame(t *testing.T) {
	k, err := ForNumeric[int64](types.Avg)
	require.NoError(t, err)

	out := int64(-42)
	ok := k.Row(&out, nil)
	assert.False(t, ok)
	// the slot is untouched, no division by zero happens
	assert.Equal(t, int64(-42), out)

	ok = k.Row(&out, []int64{})
	assert.False(t, ok)
	assert.Equal(t, int64(-42), out)
}

func TestKernelRowParallel(t *testing.T) {
	// one shared kernel, many concurrent rows, each writing its own slot
	k, err := ForNumeric[int64](types.Sum)
	require.NoError(t, err)

	src := make([]int64, 1000)
	for i := range src {
		src[i] = int64(i)
	}
	out := make([]int64, len(src))

	var wg sync.WaitGroup
	for i := range src {
		wg.Add(1)
		go func(row int) {
			defer wg.Done()
			lo, hi := max(0, row-2), min(len(src), row+1)
			k.Row(&out[row], src[lo:hi])
		}(i)
	}
	wg.Wait()

	for i := range src {
		var want int64
		for j := max(0, i-2); j < min(len(src), i+1); j++ {
			want += src[j]
		}
		assert.Equal(t, want, out[i], "row %d", i)
	}
}
