package credentials_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-biz-admin/internal/credentials"
	"github.com/MKhiriev/go-biz-admin/internal/mock"
)

func TestFileProvider_StoresSealedValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "credentials.json")
	sealer := mock.NewMockSealer(ctrl)
	p := credentials.NewFileProvider(path, sealer)

	gomock.InOrder(
		sealer.EXPECT().Seal([]byte("plain-token")).Return("c2VhbGVk", nil),
		sealer.EXPECT().Open("c2VhbGVk").Return([]byte("plain-token"), nil),
	)

	require.NoError(t, p.Set("plain-token"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "c2VhbGVk")
	assert.NotContains(t, string(raw), "plain-token")

	token, err := p.Get()
	require.NoError(t, err)
	assert.Equal(t, "plain-token", token)
}

func TestFileProvider_SealFailureKeepsPreviousState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "credentials.json")
	sealer := mock.NewMockSealer(ctrl)
	sealer.EXPECT().Seal(gomock.Any()).Return("", errors.New("entropy exhausted"))

	err := credentials.NewFileProvider(path, sealer).Set("tok")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "seal token")
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFileProvider_OpenFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "credentials.json")
	sealer := mock.NewMockSealer(ctrl)
	openErr := errors.New("tag mismatch")
	gomock.InOrder(
		sealer.EXPECT().Seal(gomock.Any()).Return("blob", nil),
		sealer.EXPECT().Open("blob").Return(nil, openErr),
	)

	p := credentials.NewFileProvider(path, sealer)
	require.NoError(t, p.Set("tok"))

	_, err := p.Get()
	assert.ErrorIs(t, err, openErr)
}
