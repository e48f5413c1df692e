package config

import (
	"os"
	"strconv"
)

// applyEnv layers environment overrides on top of whatever the YAML file
// set. Empty or malformed values are ignored.
func (c *Config) applyEnv() {
	if v := os.Getenv("CHOREPET_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("PORT"); v != "" {
		// deploy platforms hand us the port alone
		c.Server.Addr = ":" + v
	}
	if v := os.Getenv("CHOREPET_DATA_DIR"); v != "" {
		c.Storage.DataDir = v
	}
	if v := os.Getenv("CHOREPET_DB_PATH"); v != "" {
		c.Storage.DBPath = v
	}
	if v := getEnvInt("CHOREPET_STARTING_MONEY"); v > 0 {
		c.Wallet.StartingMoney = v
	}
	if v := getEnvInt("CHOREPET_REWARD_EASY"); v > 0 {
		c.Rewards.Easy = v
	}
	if v := getEnvInt("CHOREPET_REWARD_OTHER"); v > 0 {
		c.Rewards.Other = v
	}
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}
