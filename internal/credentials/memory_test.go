package credentials

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseProvider runs the lifecycle shared by every backend:
// empty → set → overwrite → clear → clear again.
func exerciseProvider(t *testing.T, p Provider) {
	t.Helper()

	token, err := p.Get()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, p.Set("first"))
	token, err = p.Get()
	require.NoError(t, err)
	assert.Equal(t, "first", token)

	require.NoError(t, p.Set("second"))
	token, err = p.Get()
	require.NoError(t, err)
	assert.Equal(t, "second", token)

	require.NoError(t, p.Clear())
	token, err = p.Get()
	require.NoError(t, err)
	assert.Empty(t, token)

	assert.NoError(t, p.Clear())
}

func TestMemoryProvider_Lifecycle(t *testing.T) {
	p := NewMemoryProvider()
	defer p.Close()

	exerciseProvider(t, p)
}

func TestMemoryProvider_ConcurrentAccess(t *testing.T) {
	p := NewMemoryProvider()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = p.Set("token")
		}()
		go func() {
			defer wg.Done()
			_, _ = p.Get()
		}()
	}
	wg.Wait()

	token, err := p.Get()
	require.NoError(t, err)
	assert.Equal(t, "token", token)
}
