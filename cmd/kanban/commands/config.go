package commands

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage kanban configuration settings.

Configuration is stored in YAML format at:
  ~/.config/kanban/config.yml

Every key can be overridden from the environment with the KANBAN_ prefix,
for example KANBAN_STORAGE_BACKEND=sqlite.

Examples:
  # Show current configuration
  kanban config show

  # Get a specific config value
  kanban config get storage.backend

  # Edit config in editor
  kanban config edit

  # Show config file location
  kanban config path

  # Reset config to defaults
  kanban config reset`,
	Annotations: map[string]string{skipContainer: "true"},
}

// configShowCmd shows the current configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Show the effective configuration: the config file merged over the defaults,
with environment overrides applied.

Examples:
  # Show in YAML format (default)
  kanban config show

  # Show in JSON format
  kanban config show --output json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if formatter.Structured() {
			return formatter.Print(cfg)
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		printer.Print("%s", data)
		return nil
	},
}

// configGetCmd gets a specific config value
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a config value",
	Long: `Get a specific configuration value by key.

Use dot notation for nested values.

Examples:
  # Get the storage backend
  kanban config get storage.backend

  # Get the move key bindings
  kanban config get keybindings.move`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := lookupConfigKey(args[0])
		if err != nil {
			return err
		}

		if formatter.Structured() {
			return formatter.Print(value)
		}

		switch v := value.(type) {
		case map[string]interface{}, []interface{}:
			data, err := yaml.Marshal(v)
			if err != nil {
				return fmt.Errorf("failed to marshal value: %w", err)
			}
			printer.Print("%s", data)
		default:
			printer.Println("%v", v)
		}
		return nil
	},
}

// configEditCmd opens the config file in an editor
var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit config in editor",
	Long: `Open the configuration file in your default editor.

The editor is determined by the EDITOR environment variable (default: vi).
A running TUI picks up the saved changes.

Examples:
  # Edit config with default editor
  kanban config edit

  # Edit with specific editor
  EDITOR=nano kanban config edit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := loader.GetConfigPath()

		// Get editor from environment or use default
		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vi"
		}

		printer.Info("Opening config file: %s", configPath)
		printer.Subtle("Editor: %s", editor)

		// Open editor
		editorCmd := exec.Command(editor, configPath)
		editorCmd.Stdin = os.Stdin
		editorCmd.Stdout = os.Stdout
		editorCmd.Stderr = os.Stderr

		if err := editorCmd.Run(); err != nil {
			return fmt.Errorf("failed to run editor: %w", err)
		}

		if _, err := loader.Load(); err != nil {
			printer.Warning("Config no longer loads: %v", err)
			return nil
		}

		printer.Success("Config file edited")
		return nil
	},
}

// configPathCmd shows the config file path
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config file location",
	Long: `Show the path to the configuration file.

Examples:
  # Show config path
  kanban config path`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printer.Println("%s", loader.GetConfigPath())
		return nil
	},
}

// configResetCmd resets the config to defaults
var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset config to defaults",
	Long: `Reset the configuration to default values.

WARNING: This will overwrite your current configuration.
The saved board is not touched.

Examples:
  # Reset config (with confirmation)
  kanban config reset

  # Reset without confirmation
  kanban config reset --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		configPath := loader.GetConfigPath()

		// Confirm reset unless --force is used
		if !force && !confirm(cmd, "About to reset configuration at %s to defaults", configPath) {
			printer.Info("Reset cancelled")
			return nil
		}

		if _, err := loader.Reset(); err != nil {
			return fmt.Errorf("failed to reset config: %w", err)
		}

		printer.Success("Config reset: %s", configPath)
		return nil
	},
}

// lookupConfigKey walks a dotted key through the effective config
func lookupConfigKey(key string) (interface{}, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	var tree interface{}
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	current := tree
	for _, part := range strings.Split(key, ".") {
		node, ok := current.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("config key '%s' not found", key)
		}
		current, ok = node[part]
		if !ok {
			return nil, fmt.Errorf("config key '%s' not found", key)
		}
	}

	return current, nil
}

func init() {
	rootCmd.AddCommand(configCmd)

	// Add subcommands
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configResetCmd)

	// configResetCmd flags
	configResetCmd.Flags().Bool("force", false, "Reset without confirmation")
}
