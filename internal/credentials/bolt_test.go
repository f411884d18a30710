package credentials

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltProvider_Lifecycle(t *testing.T) {
	p, err := NewBoltProvider(filepath.Join(t.TempDir(), "data", "credentials.db"))
	require.NoError(t, err)
	defer p.Close()

	exerciseProvider(t, p)
}

func TestBoltProvider_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.db")

	p, err := NewBoltProvider(path)
	require.NoError(t, err)
	require.NoError(t, p.Set("kept"))
	require.NoError(t, p.Close())

	p, err = NewBoltProvider(path)
	require.NoError(t, err)
	defer p.Close()

	token, err := p.Get()
	require.NoError(t, err)
	assert.Equal(t, "kept", token)
}

func TestBoltProvider_Closed(t *testing.T) {
	p, err := NewBoltProvider(filepath.Join(t.TempDir(), "credentials.db"))
	require.NoError(t, err)
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	_, err = p.Get()
	assert.ErrorIs(t, err, ErrStorageClosed)
	assert.ErrorIs(t, p.Set("x"), ErrStorageClosed)
	assert.ErrorIs(t, p.Clear(), ErrStorageClosed)
}
