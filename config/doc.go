// Package config loads configuration for the vmcore runtime.
//
// It uses Viper to read an optional YAML file, an optional .env file loaded
// with godotenv, and VMCORE_-prefixed environment variables, in increasing
// order of precedence. Struct rules are checked with the validation package.
//
// # Usage
//
//	cfg, err := config.Load(config.WithConfigFile("vmcore.yml"))
//	eng, err := random.NewFromConfig(cfg.Random)
//
// Environment variables map to keys by replacing dots with underscores,
// e.g. VMCORE_RANDOM_SEED=42 sets random.seed.
package config
