package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	require.NoError(t, Load())

	assert.Equal(t, "images", Current.ImageDir)
	assert.Equal(t, "output", Current.OutputDir)
	assert.Equal(t, 20, Current.MaxImages)
	assert.Equal(t, uint(150), Current.ThumbSize)
	assert.Equal(t, uint8(75), Current.Quality)
	assert.Equal(t, "jpeg", Current.Format)
	assert.Equal(t, 5, Current.Iterations)
	assert.Empty(t, Current.Libraries)
}

/*
TestConfigEnv ...

env:

IMBENCH_ITERATIONS=3
IMBENCH_LIBRARIES='Nfnt,Imaging'
*/
func TestConfigEnv(t *testing.T) {
	t.Setenv("IMBENCH_ITERATIONS", "3")
	t.Setenv("IMBENCH_LIBRARIES", "Nfnt,Imaging")
	t.Setenv("IMBENCH_THUMB_SIZE", "200")
	t.Setenv("IMBENCH_DEVELOP", "true")

	require.NoError(t, Load())
	assert.Equal(t, 3, Current.Iterations)
	assert.Equal(t, []string{"Nfnt", "Imaging"}, Current.Libraries)
	assert.Equal(t, uint(200), Current.ThumbSize)
	assert.True(t, InDevelop())
}

func TestConfigBadEnv(t *testing.T) {
	t.Setenv("IMBENCH_ITERATIONS", "many")
	assert.Error(t, Load())
}
