package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"chorepet/internal/reward"
)

type Config struct {
	Server  Server         `yaml:"server" json:"server"`
	Storage Storage        `yaml:"storage" json:"storage"`
	Wallet  Wallet         `yaml:"wallet" json:"wallet"`
	Rewards reward.Amounts `yaml:"rewards" json:"rewards"`
}

type Server struct {
	Addr string `yaml:"addr" json:"addr"`
}

type Storage struct {
	DataDir string `yaml:"data_dir" json:"data_dir"`
	DBPath  string `yaml:"db_path" json:"db_path"`
}

type Wallet struct {
	StartingMoney int `yaml:"starting_money" json:"starting_money"`
}

func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.Server.Addr) == "" {
		c.Server.Addr = ":5000"
	}
	if strings.TrimSpace(c.Storage.DataDir) == "" {
		c.Storage.DataDir = "data"
	}
	if c.Wallet.StartingMoney <= 0 {
		c.Wallet.StartingMoney = 5
	}
	if c.Rewards.Easy <= 0 {
		c.Rewards.Easy = reward.Default().Easy
	}
	if c.Rewards.Other <= 0 {
		c.Rewards.Other = reward.Default().Other
	}
}

// Load reads the YAML config at path. A missing file is not an error; the
// defaults (plus env overrides) are used instead.
func Load(path string) (*Config, error) {
	var c Config
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			c.applyEnv()
			c.ApplyDefaults()
			return &c, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	c.applyEnv()
	c.ApplyDefaults()
	return &c, nil
}
