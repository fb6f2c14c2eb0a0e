package config

import "time"

// Options configures the config loader.
type Options struct {
	// YAMLPath is the path to the primary YAML config file.
	YAMLPath string

	// EnvPath is the path to the fallback .env file, used only when YAML is absent.
	EnvPath string

	// EnvPrefix enables process environment overrides, e.g. prefix "CONSENT"
	// lets CONSENT_CACHE_RETRY override cache.retry. Empty disables overrides.
	EnvPrefix string

	// Defaults are applied before any file is read.
	Defaults map[string]any
}

// ConfigProvider is the interface consumers depend on for reading configuration.
// Implementations must be safe for concurrent use.
type ConfigProvider interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetDuration(key string) time.Duration

	// GetStringMapString returns a nested section flattened to strings,
	// e.g. notification.destinations.<queue>.exchange.
	GetStringMapString(key string) map[string]string

	// IsSet checks whether the key is set in the config.
	IsSet(key string) bool

	// WatchChanges starts watching the config file for changes (YAML only).
	// Non-blocking: spawns a background goroutine.
	WatchChanges()

	// OnChange registers a callback that fires after a successful config reload.
	OnChange(fn func())

	// StopWatching stops delivering change callbacks.
	StopWatching()

	// Source returns which config source is active: "yaml" or "env".
	Source() string
}
