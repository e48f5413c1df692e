package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := Default()

	assert.Equal(t, ":5000", c.Server.Addr)
	assert.Equal(t, "data", c.Storage.DataDir)
	assert.Equal(t, 5, c.Wallet.StartingMoney)
	assert.Equal(t, 5, c.Rewards.Easy)
	assert.Equal(t, 15, c.Rewards.Other)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, ":5000", c.Server.Addr)
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chorepet_config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":8080"
wallet:
  starting_money: 50
rewards:
  easy: 2
  other: 7
`), 0o644))

	t.Setenv("CHOREPET_REWARD_EASY", "3")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.Server.Addr)
	assert.Equal(t, 50, c.Wallet.StartingMoney)
	// env wins over the file
	assert.Equal(t, 3, c.Rewards.Easy)
	assert.Equal(t, 7, c.Rewards.Other)
}

func TestLoad_PortEnv(t *testing.T) {
	t.Setenv("PORT", "9999")

	c, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, ":9999", c.Server.Addr)
}
