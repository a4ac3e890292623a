package main

import (
	"fmt"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/wikied/wikied/internal/article"
	"github.com/wikied/wikied/internal/config"
	"github.com/wikied/wikied/internal/editor"
	"github.com/wikied/wikied/internal/logging"
	"github.com/wikied/wikied/internal/urls"
)

// Command flags
var (
	serverFlag    string
	loginPathFlag string
	browserFlag   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "Server name from the config, or a full URL")
	rootCmd.Flags().StringVar(&loginPathFlag, "login-path", "", "Login page path on the server (default /login)")
	rootCmd.Flags().StringVar(&browserFlag, "browser", "", "Command used to open the login page")

	rootCmd.AddCommand(serversCmd)
	serversCmd.AddCommand(serversAddCmd)
	serversCmd.AddCommand(serversDefaultCmd)
	serversCmd.AddCommand(serversRemoveCmd)
}

// resolveServer picks the wiki server for this run: an explicit URL wins,
// then a named registry entry, then the registry default.
// The returned name is empty when the server came from a raw URL.
func resolveServer(registry *config.Registry) (name string, server *config.Server, err error) {
	if serverFlag != "" {
		// A valid URL is used directly without touching the registry
		if urls.Validate(serverFlag) == nil {
			return "", &config.Server{URL: serverFlag, LoginPath: loginPathFlag}, nil
		}

		if s := registry.GetServer(serverFlag); s != nil {
			return serverFlag, s, nil
		}
		return "", nil, fmt.Errorf("unknown server %q: not a URL and not in the config (see 'wikied servers')", serverFlag)
	}

	if name, s := registry.DefaultServer(); s != nil {
		return name, s, nil
	}
	return "", nil, fmt.Errorf("no server configured: add one with 'wikied servers add <name> <url>' or pass --server <url>")
}

func runEdit(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}
	defer logging.Sync()

	registry, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	name, server, err := resolveServer(registry)
	if err != nil {
		return err
	}

	var slug string
	switch {
	case len(args) == 1 && args[0] != ".":
		slug = args[0]
	case len(args) == 1:
		// "." addresses the front page explicitly
	default:
		slug = server.LastSlug
	}

	loginPath := server.LoginPath
	if loginPathFlag != "" {
		loginPath = loginPathFlag
	}
	browser := ""
	if registry.Prefs != nil {
		browser = registry.Prefs.Browser
	}
	if browserFlag != "" {
		browser = browserFlag
	}

	client := article.NewClient(server.URL)
	model := editor.New(client, slug)
	model.LoginPath = loginPath
	model.BrowserCommand = browser

	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}

	// Remember the last article edited on a named server. The session may
	// have run for a while, so reload first to keep changes written by
	// another wikied process in the meantime.
	if session, ok := final.(editor.Model); ok && name != "" {
		registry, err = config.ReloadRegistry()
		if err != nil {
			logging.Warn("failed to reload config")
			return nil
		}
		registry.RecordEdit(name, session.Slug)
		if err := registry.Save(); err != nil {
			logging.Warn("failed to save config")
		}
	}
	return nil
}

// serversCmd lists known servers when run bare.
var serversCmd = &cobra.Command{
	Use:   "servers",
	Short: "Manage known wiki servers",
	Long: `List and manage the wiki servers stored in the config file.

The default server is used when --server is not given. The first server
added becomes the default automatically.`,
	RunE: runServersList,
}

func runServersList(cmd *cobra.Command, args []string) error {
	registry, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if len(registry.Servers) == 0 {
		fmt.Println("No servers configured.")
		fmt.Println("\nAdd one with 'wikied servers add <name> <url>'")
		return nil
	}

	names := make([]string, 0, len(registry.Servers))
	for name := range registry.Servers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		server := registry.Servers[name]
		marker := " "
		if name == registry.Default {
			marker = "*"
		}
		fmt.Printf("%s %-12s %s\n", marker, name, server.URL)
		if server.Nickname != "" {
			fmt.Printf("               %s\n", server.Nickname)
		}
		if server.LastSlug != "" {
			fmt.Printf("               last edited: %s\n", server.LastSlug)
		}
	}
	return nil
}

var serversAddCmd = &cobra.Command{
	Use:   "add <name> <url>",
	Short: "Add a wiki server",
	Example: `  wikied servers add work https://wiki.example.com
  wikied servers add home http://localhost:8080`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, serverURL := args[0], args[1]

		if err := urls.Validate(serverURL); err != nil {
			return fmt.Errorf("invalid server URL: %w", err)
		}

		registry, err := config.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if registry.GetServer(name) != nil {
			return fmt.Errorf("server %q already exists", name)
		}

		registry.EnsureServer(name, serverURL)
		if err := registry.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Printf("Added server %q (%s)\n", name, serverURL)
		if registry.Default == name {
			fmt.Println("It is now the default server.")
		}
		return nil
	},
}

var serversDefaultCmd = &cobra.Command{
	Use:   "default <name>",
	Short: "Set the default server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		registry, err := config.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if registry.GetServer(name) == nil {
			return fmt.Errorf("unknown server %q", name)
		}

		registry.Default = name
		if err := registry.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Printf("Default server is now %q\n", name)
		return nil
	},
}

var serversRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a wiki server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		registry, err := config.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if registry.GetServer(name) == nil {
			return fmt.Errorf("unknown server %q", name)
		}

		delete(registry.Servers, name)
		if registry.Default == name {
			registry.Default = ""
		}
		if err := registry.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Printf("Removed server %q\n", name)
		return nil
	},
}
