// Package config loads accountkit configuration from YAML files and the
// environment using viper and godotenv.
//
// Load resolves a config.yml and an optional .env file, overlays
// environment variables, and unmarshals the result into the target struct:
//
//	var cfg account.Config
//	err := config.Load("account", &cfg)
//
// Environment variables use underscore-separated upper-case keys; for
// example ACCOUNT_BASE_URL binds to the account.base_url key.
package config
