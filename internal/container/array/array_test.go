// Copyright 2025 The pffkit Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package array_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pffkit/pff/internal/container/array"
)

func compareInt(a, b int) (array.Ordering, error) {
	switch {
	case a < b:
		return array.Less, nil
	case a > b:
		return array.Greater, nil
	default:
		return array.Equal, nil
	}
}

func TestAppendAndIndex(t *testing.T) {
	t.Parallel()

	a := &array.Array[string]{}
	i0 := a.Append("x")
	i1 := a.Append("y")
	assert.Equal(t, 0, i0)
	assert.Equal(t, 1, i1)
	assert.Equal(t, 2, a.Len())

	v, ok := a.ByIndex(1)
	assert.True(t, ok)
	assert.Equal(t, "y", v)

	_, ok = a.ByIndex(2)
	assert.False(t, ok)
}

func TestResizeGrowZeroFills(t *testing.T) {
	t.Parallel()

	a := array.New[int](2)
	require.NoError(t, a.SetByIndex(0, 7))
	require.NoError(t, a.Resize(4, nil))
	assert.Equal(t, []int{7, 0, 0, 0}, a.Slice())
}

func TestResizeShrinkCallsFree(t *testing.T) {
	t.Parallel()

	a := &array.Array[string]{}
	for _, v := range []string{"a", "b", "c", "d"} {
		a.Append(v)
	}

	var freed []string
	require.NoError(t, a.Resize(2, func(v string) { freed = append(freed, v) }))
	assert.Equal(t, []string{"c", "d"}, freed)
	assert.Equal(t, []string{"a", "b"}, a.Slice())
}

func TestClearFreesAndKeepsCapacity(t *testing.T) {
	t.Parallel()

	a := &array.Array[int]{}
	for i := 0; i < 3; i++ {
		a.Append(i)
	}
	var freed int
	a.Clear(func(int) { freed++ })
	assert.Equal(t, 3, freed)
	assert.Equal(t, 0, a.Len())
}

func TestEmptyFreesAndDropsEntries(t *testing.T) {
	t.Parallel()

	a := &array.Array[int]{}
	for i := 0; i < 3; i++ {
		a.Append(i)
	}
	var freed int
	a.Empty(func(int) { freed++ })
	assert.Equal(t, 3, freed)
	assert.Equal(t, 0, a.Len())

	i0 := a.Append(9)
	assert.Equal(t, 0, i0)
	assert.Equal(t, []int{9}, a.Slice())
}

func TestInsertOrderedUnique(t *testing.T) {
	t.Parallel()

	a := &array.Array[int]{}
	for _, v := range []int{3, 1, 4} {
		_, err := a.Insert(v, compareInt, array.UniqueEntries)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{1, 3, 4}, a.Slice())

	_, err := a.Insert(1, compareInt, array.UniqueEntries)
	assert.ErrorIs(t, err, array.AlreadyPresent)
	assert.Equal(t, []int{1, 3, 4}, a.Slice())

	_, err = a.Insert(5, compareInt, array.UniqueEntries)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4, 5}, a.Slice())
}
