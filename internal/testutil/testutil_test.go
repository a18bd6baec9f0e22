package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lepinkainen/moviefav/internal/config"
	"github.com/lepinkainen/moviefav/internal/kvstore"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestEnv_Path(t *testing.T) {
	env := NewTestEnv(t)

	path := env.Path("subdir", "file.txt")
	assert.True(t, filepath.IsAbs(path))
	assert.Contains(t, path, "subdir")
	assert.Contains(t, path, "file.txt")
}

func TestTestEnv_WriteReadFile(t *testing.T) {
	env := NewTestEnv(t)

	env.WriteFile("nested/test.txt", []byte("test content"))

	assert.True(t, env.FileExists("nested/test.txt"))
	assert.Equal(t, "test content", env.ReadFileString("nested/test.txt"))
	assert.False(t, env.FileExists("missing.txt"))
}

func TestTestEnv_Chdir(t *testing.T) {
	env := NewTestEnv(t)
	env.WriteFile("work/marker", []byte("x"))

	env.Chdir("work")

	_, err := os.Stat("marker")
	require.NoError(t, err)
}

func TestGoldenHelper_JSON(t *testing.T) {
	env := NewTestEnv(t)
	env.WriteFile("golden/blob.json", []byte(`{"b": 2, "a": 1}`))

	g := NewGoldenHelper(t, env.Path("golden"))
	g.AssertGoldenJSON("blob.json", []byte(`{"a":1,"b":2}`))
	assert.Equal(t, `{"b": 2, "a": 1}`, string(g.MustReadGolden("blob.json")))
}

func TestSetTestConfig(t *testing.T) {
	SetTestConfig(t, WithAPIKey("abc"), WithStorage(kvstore.KindBolt, "/tmp/x.bolt"))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc", cfg.APIKey)
	assert.Equal(t, kvstore.KindBolt, cfg.Storage.Kind)
	assert.Equal(t, "/tmp/x.bolt", cfg.Storage.Path)
}

func TestResetConfig(t *testing.T) {
	viper.Set("leftover", true)

	ResetConfig(t)

	assert.False(t, viper.IsSet("leftover"))
}

func TestGoldenHelper_Bytes(t *testing.T) {
	env := NewTestEnv(t)
	env.WriteFile("golden/out.txt", []byte("line\n"))

	g := NewGoldenHelper(t, env.Path("golden"))
	assert.Equal(t, env.Path("golden", "out.txt"), g.GoldenPath("out.txt"))
	g.AssertGolden("out.txt", []byte("line\n"))
}

func TestSetTestConfig_Redis(t *testing.T) {
	SetTestConfig(t, WithRedisURL("redis://localhost:6379/0"))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, kvstore.KindRedis, cfg.Storage.Kind)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Storage.RedisURL)
}
