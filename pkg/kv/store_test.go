package kv

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetSet(t *testing.T) {
	s := New[string, int]()

	s.Set("foo", 42)
	val, ok := s.Get("foo")
	assert.True(t, ok)
	assert.Equal(t, 42, val)

	_, ok = s.Get("bar")
	assert.False(t, ok)
}

func TestStore_Delete(t *testing.T) {
	s := New[string, string]()
	s.Set("key", "value")
	s.Set("other", "value")

	s.Delete("key")
	s.Delete("missing")

	_, ok := s.Get("key")
	assert.False(t, ok)
	assert.Equal(t, []string{"other"}, s.Keys())
}

func TestStore_Clear(t *testing.T) {
	s := New[string, int]()
	s.Set("a", 1)
	s.Set("b", 2)

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Keys())
}

func TestStore_KeysInInsertionOrder(t *testing.T) {
	s := New[string, int]()
	s.Set("b", 1)
	s.Set("a", 2)
	s.Set("b", 3)

	assert.Equal(t, []string{"b", "a"}, s.Keys())
}

func TestStore_BoundedEvictsOldest(t *testing.T) {
	s := NewBounded[string, int](2)
	s.Set("a", 1)
	s.Set("b", 2)
	s.Set("a", 10) // overwrite does not evict
	s.Set("c", 3)

	assert.Equal(t, 2, s.Len())
	_, ok := s.Get("a")
	assert.False(t, ok)
	assert.Equal(t, []string{"b", "c"}, s.Keys())
}

func TestStore_GetOrCompute(t *testing.T) {
	s := New[string, string]()
	calls := 0
	fn := func() (string, error) {
		calls++
		return "rendered", nil
	}

	v, err := s.GetOrCompute("k", fn)
	require.NoError(t, err)
	assert.Equal(t, "rendered", v)

	v, err = s.GetOrCompute("k", fn)
	require.NoError(t, err)
	assert.Equal(t, "rendered", v)
	assert.Equal(t, 1, calls)
}

func TestStore_GetOrCompute_ErrorNotStored(t *testing.T) {
	s := New[string, string]()
	boom := errors.New("boom")

	_, err := s.GetOrCompute("k", func() (string, error) { return "", boom })
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, s.Len())
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewBounded[int, int](50)
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			s.Set(n, n*2)
		}(i)
		go func(n int) {
			defer wg.Done()
			_, _ = s.GetOrCompute(n, func() (int, error) { return n * 2, nil })
		}(i)
	}

	wg.Wait()

	assert.Equal(t, 50, s.Len())
}
