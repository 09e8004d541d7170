package test

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// TEST_VALUE_LOG_SIZE keeps the BadgerDB value log small; the
	// default of 20 Go would be wasteful for throwaway test stores.
	ValueLogSize int64 `envconfig:"TEST_VALUE_LOG_SIZE" default:"16777216"`
	// TEST_LIMIT_MESSAGES caps page size for room history reads.
	LimitMessages int `envconfig:"TEST_LIMIT_MESSAGES" default:"100"`
	// TEST_LOG_DEBUG enables debug logging in scenario runs.
	LogDebug bool `envconfig:"TEST_LOG_DEBUG" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
