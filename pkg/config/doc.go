// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// the default .env file (when present) is loaded into the process
// environment once, then struct fields annotated with `env` tags are parsed
// from it. LoadFrom reads explicitly named env files instead, and MustLoad
// panics on failure for configuration the process cannot start without.
//
// # Usage
//
//	var cfg waitloop.Config
//	config.MustLoad(&cfg)
//
//	err := waitloop.Wait(ctx, step, waitloop.WithConfig(cfg))
//
// Any struct with `env` tags works; pkg/waitloop ships one for the wait
// loop's interval and timeout.
package config
