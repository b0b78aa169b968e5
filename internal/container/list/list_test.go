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

package list_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pffkit/pff/internal/container/list"
)

func compareInt(a, b int) (list.Ordering, error) {
	switch {
	case a < b:
		return list.Less, nil
	case a > b:
		return list.Greater, nil
	default:
		return list.Equal, nil
	}
}

func TestInsertUnique(t *testing.T) {
	t.Parallel()

	l := &list.List[int]{}
	for _, v := range []int{3, 1, 4} {
		require.NoError(t, l.Insert(list.NewElement(v), compareInt, list.UniqueEntries))
	}
	assert.Equal(t, []int{1, 3, 4}, l.Slice())

	before := l.Slice()
	err := l.Insert(list.NewElement(1), compareInt, list.UniqueEntries)
	assert.ErrorIs(t, err, list.AlreadyPresent)
	assert.Equal(t, before, l.Slice(), "rejected insert must not change the list")

	require.NoError(t, l.Insert(list.NewElement(5), compareInt, list.UniqueEntries))
	assert.Equal(t, []int{1, 3, 4, 5}, l.Slice())
}

func TestInsertStableDuplicates(t *testing.T) {
	t.Parallel()

	type tagged struct {
		key, seq int
	}
	compare := func(a, b tagged) (list.Ordering, error) {
		switch {
		case a.key < b.key:
			return list.Less, nil
		case a.key > b.key:
			return list.Greater, nil
		default:
			return list.Equal, nil
		}
	}

	l := &list.List[tagged]{}
	for i, v := range []tagged{{3, 0}, {1, 0}, {1, 1}, {2, 0}} {
		v.seq = i
		require.NoError(t, l.Insert(list.NewElement(v), compare, list.AllowDuplicates))
	}

	got := l.Slice()
	require.Len(t, got, 4)
	assert.Equal(t, 1, got[0].key)
	assert.Equal(t, 1, got[1].key)
	assert.True(t, got[0].seq < got[1].seq, "equal keys must keep insertion order")
	assert.Equal(t, 2, got[2].key)
	assert.Equal(t, 3, got[3].key)
}

func TestPrependAppendRemove(t *testing.T) {
	t.Parallel()

	l := &list.List[string]{}
	a, b, c := list.NewElement("a"), list.NewElement("b"), list.NewElement("c")
	require.NoError(t, l.Append(a))
	require.NoError(t, l.Append(c))
	require.NoError(t, l.Prepend(b))
	assert.Equal(t, []string{"b", "a", "c"}, l.Slice())
	assert.Equal(t, 3, l.Len())

	require.NoError(t, l.Remove(a))
	assert.Equal(t, []string{"b", "c"}, l.Slice())
	assert.Equal(t, 2, l.Len())

	// a is detached and may be reinserted.
	require.NoError(t, l.Append(a))
	assert.Equal(t, []string{"b", "c", "a"}, l.Slice())
}

func TestByIndexFromNearestEnd(t *testing.T) {
	t.Parallel()

	l := &list.List[int]{}
	for _, v := range []int{10, 20, 30, 40, 50} {
		require.NoError(t, l.Append(list.NewElement(v)))
	}

	for i, want := range []int{10, 20, 30, 40, 50} {
		e, err := l.ByIndex(i)
		require.NoError(t, err)
		assert.Equal(t, want, e.Value)
	}

	_, err := l.ByIndex(5)
	assert.Error(t, err)
	_, err = l.ByIndex(-1)
	assert.Error(t, err)
}

func TestPrependRejectsAttachedElement(t *testing.T) {
	t.Parallel()

	l := &list.List[int]{}
	e := list.NewElement(1)
	require.NoError(t, l.Append(e))
	assert.Error(t, l.Prepend(e))
}

func TestEmptyFreesAndResetsList(t *testing.T) {
	t.Parallel()

	l := &list.List[string]{}
	for _, v := range []string{"a", "b", "c"} {
		require.NoError(t, l.Append(list.NewElement(v)))
	}

	var freed []string
	require.NoError(t, l.Empty(func(v string) { freed = append(freed, v) }))
	assert.Equal(t, []string{"a", "b", "c"}, freed, "free hook runs head to tail")
	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.First())
	assert.Nil(t, l.Last())

	require.NoError(t, l.Append(list.NewElement("d")))
	assert.Equal(t, []string{"d"}, l.Slice())
}

func TestEmptyToleratesNilFree(t *testing.T) {
	t.Parallel()

	l := &list.List[int]{}
	require.NoError(t, l.Append(list.NewElement(1)))
	require.NoError(t, l.Append(list.NewElement(2)))
	require.NoError(t, l.Empty(nil))
	assert.Equal(t, 0, l.Len())
}

func TestCloneRoundTrips(t *testing.T) {
	t.Parallel()

	l := &list.List[[]byte]{}
	require.NoError(t, l.Append(list.NewElement([]byte("alpha"))))
	require.NoError(t, l.Append(list.NewElement([]byte("beta"))))

	clone := l.Clone(func(b []byte) []byte {
		out := make([]byte, len(b))
		copy(out, b)
		return out
	})

	require.Equal(t, l.Len(), clone.Len())
	orig, copied := l.Slice(), clone.Slice()
	for i := range orig {
		assert.Equal(t, orig[i], copied[i])
	}
}
