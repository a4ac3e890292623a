package urls

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// Article returns the full URL for an article on the given server.
// The empty slug addresses the front page, which lives at the server root.
func Article(base, slug string) string {
	base = strings.TrimRight(base, "/")
	if slug == "" {
		return base + "/"
	}
	return base + "/" + url.PathEscape(slug)
}

// Canonical returns the slug as it should appear in the visible location
// after a save. The front page has an empty slug, which is shown as "."
// so the location is never blank.
func Canonical(slug string) string {
	if slug == "" {
		return "."
	}
	return slug
}

// Login returns the login URL for a server. loginPath defaults to "/login"
// when the server entry doesn't configure one.
func Login(base, loginPath string) string {
	if loginPath == "" {
		loginPath = "/login"
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(loginPath, "/")
}

// TitleFromSlug derives a presentable title for an article that doesn't
// exist yet: dashes become spaces and each word is capitalized, so
// "rabbit-hole" becomes "Rabbit Hole". The front page gets a fixed title.
func TitleFromSlug(slug string) string {
	if slug == "" {
		return "Front page"
	}

	words := strings.Split(strings.ReplaceAll(slug, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// OpenInBrowser opens the given URL in the user's browser. If command is
// non-empty it is used as the opener, otherwise the platform default is
// tried. Used by the login prompt; a failure here is not fatal, the caller
// falls back to displaying the URL.
func OpenInBrowser(command, target string) error {
	if command != "" {
		return exec.Command(command, target).Start()
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", target).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", target).Start()
	default:
		return exec.Command("xdg-open", target).Start()
	}
}

// Validate checks that a server base URL is absolute http(s).
func Validate(base string) error {
	u, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("invalid server URL %q: %w", base, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server URL %q must use http or https", base)
	}
	if u.Host == "" {
		return fmt.Errorf("server URL %q has no host", base)
	}
	return nil
}
