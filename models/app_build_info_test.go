package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.4.0", "", "9f1c2e")

	assert.Equal(t, "v1.4.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "Build version: v1.4.0\nBuild date: N/A\nBuild commit: 9f1c2e", info.String())
}
