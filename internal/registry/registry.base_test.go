package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("counter", 42)
	assert.NoError(t, err)
	assert.True(t, isNew)

	got, exists := r.Get("counter")
	assert.True(t, exists)
	assert.Equal(t, 42, got)

	isNew, err = r.Register("counter", 7)
	assert.NoError(t, err)
	assert.False(t, isNew)

	got, _ = r.Get("counter")
	assert.Equal(t, 7, got)
}

func TestRegistry_EmptyName(t *testing.T) {
	r := NewRegistry[string]()
	_, err := r.Register("", "x")
	assert.Error(t, err)
}

func TestRegistry_MissingKey(t *testing.T) {
	r := NewRegistry[string]()
	got, exists := r.Get("missing")
	assert.False(t, exists)
	assert.Empty(t, got)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _ = r.Register("shared", n)
			_, _ = r.Get("shared")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, r.Len())
}
