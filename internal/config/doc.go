// Package config provides user configuration management for the wikied client.
//
// This package manages a YAML-based configuration file that stores known wiki
// servers and application preferences. The configuration follows OS-specific
// conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/wikied/config.yaml or $HOME/.config/wikied/config.yaml
//   - macOS: $HOME/.config/wikied/config.yaml
//   - Windows: %LOCALAPPDATA%\wikied\config.yaml
//
// # Security
//
// IMPORTANT: This package NEVER stores session cookies or login credentials.
// Signing in always happens in the browser; the client only detects that a
// session has expired.
//
// # Usage Example
//
//	// Load the global registry
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Register a server
//	registry.EnsureServer("work", "https://wiki.example.com")
//	registry.RecordEdit("work", "rabbit-hole")
//
//	// Save changes atomically
//	if err := registry.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across goroutines.
// File operations are protected by a mutex to ensure atomic writes.
package config
