// Package config provides settings loading for uakit.
//
// Providers receive their options through a Settings mapping, the Go
// equivalent of a scraping framework's settings object. Settings are
// immutable after construction; each provider resolves its own keys at
// build time and fails fast on structurally invalid values.
//
// Settings can be built directly from a map or loaded with Viper from a
// YAML file plus environment variables, with optional .env support via
// godotenv:
//
//	s, err := config.Load("uakit", config.WithConfigFile("uakit.yml"))
//	ua := s.GetString("USER_AGENT", "")
package config
