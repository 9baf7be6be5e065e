// Package config loads process configuration for the cmd/shmpipe demo
// binary; cmd/spscbench takes only flags. None of ring, wakeup or shmalloc read
// configuration themselves; every parameter they need is a plain function
// argument, per the CORE having no CLI/env surface of its own.
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the environment-derived settings used by cmd/shmpipe, which
// adds its own flags on top with pflag.
type Config struct {
	SegmentName     string
	SegmentCapacity int
	LogProd         bool
}

// Load reads a .env file if present, then environment variables, applying
// defaults for anything unset.
func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()
	viper.SetDefault("SHMRING_SEGMENT_NAME", "shmring-demo")
	viper.SetDefault("SHMRING_SEGMENT_CAPACITY", 65536)
	viper.SetDefault("SHMRING_LOG_PROD", false)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("shmring: no config file found: %v", err)
	}

	return &Config{
		SegmentName:     viper.GetString("SHMRING_SEGMENT_NAME"),
		SegmentCapacity: viper.GetInt("SHMRING_SEGMENT_CAPACITY"),
		LogProd:         viper.GetBool("SHMRING_LOG_PROD"),
	}
}
