package config

import "time"

// Registry represents the entire user configuration file.
// This stores known wiki servers and application preferences.
type Registry struct {
	Version int                `yaml:"version"`
	Default string             `yaml:"default,omitempty"` // Name of the server used when none is specified
	Servers map[string]*Server `yaml:"servers,omitempty"` // Keyed by a short user-chosen name
	Prefs   *Preferences       `yaml:"preferences,omitempty"`
}

// Server represents a known wiki server.
// This is keyed by a short name in the Registry (e.g. "work", "home").
type Server struct {
	URL       string    `yaml:"url"`                  // Server root, e.g. "https://wiki.example.com"
	LoginPath string    `yaml:"login_path,omitempty"` // Path of the login page, defaults to /login
	Nickname  string    `yaml:"nickname,omitempty"`   // User-friendly display name
	LastSlug  string    `yaml:"last_slug,omitempty"`  // Slug of the last article edited on this server
	LastUsed  time.Time `yaml:"last_used,omitempty"`  // Last time this server was edited against
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	Browser string `yaml:"browser,omitempty"` // Command used to open login pages; empty means the OS default
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: 1,
		Servers: make(map[string]*Server),
		Prefs:   &Preferences{},
	}
}

// GetServer retrieves a server entry by name.
// Returns nil if the server doesn't exist in the registry.
func (r *Registry) GetServer(name string) *Server {
	return r.Servers[name]
}

// EnsureServer ensures a server entry exists in the registry.
// If the entry doesn't exist, creates a new one with the given URL.
// Returns the entry (existing or newly created).
func (r *Registry) EnsureServer(name, url string) *Server {
	if r.Servers == nil {
		r.Servers = make(map[string]*Server)
	}

	if server, exists := r.Servers[name]; exists {
		return server
	}

	server := &Server{URL: url}
	r.Servers[name] = server

	// First server registered becomes the default
	if r.Default == "" {
		r.Default = name
	}
	return server
}

// RecordEdit updates the last-edited bookkeeping for a server.
func (r *Registry) RecordEdit(name, slug string) {
	server := r.Servers[name]
	if server == nil {
		return
	}
	server.LastSlug = slug
	server.LastUsed = time.Now()
}

// DefaultServer returns the default server entry and its name.
// Returns empty name and nil when no default is configured.
func (r *Registry) DefaultServer() (string, *Server) {
	if r.Default == "" {
		return "", nil
	}
	return r.Default, r.Servers[r.Default]
}
