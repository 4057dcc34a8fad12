package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"kanban/internal/domain/entity"
)

const (
	defaultConfigFileName = "config.yml"
	defaultConfigDirName  = ".config/kanban"
	defaultDataDirName    = ".local/share/kanban"
	defaultLogFileName    = "kanban.log"

	// EnvPrefix prefixes environment overrides, e.g. KANBAN_STORAGE_BACKEND
	EnvPrefix = "KANBAN"

	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"

	DefaultCollection    = "kanban-state"
	DefaultDocument      = "current-state"
	DefaultDragThreshold = 8
)

// Config holds application configuration
type Config struct {
	Storage     StorageConfig     `yaml:"storage" mapstructure:"storage"`
	Log         LogConfig         `yaml:"log" mapstructure:"log"`
	Board       BoardConfig       `yaml:"board" mapstructure:"board"`
	TUI         TUIConfig         `yaml:"tui" mapstructure:"tui"`
	Keybindings KeybindingsConfig `yaml:"keybindings" mapstructure:"keybindings"`
}

// StorageConfig holds storage-related configuration
type StorageConfig struct {
	Backend    string      `yaml:"backend" mapstructure:"backend"`
	DataPath   string      `yaml:"data_path" mapstructure:"data_path"`
	Collection string      `yaml:"collection" mapstructure:"collection"`
	Document   string      `yaml:"document" mapstructure:"document"`
	Format     string      `yaml:"format" mapstructure:"format"`
	Redis      RedisConfig `yaml:"redis" mapstructure:"redis"`
}

// RedisConfig holds the connection settings for the redis backend
type RedisConfig struct {
	Addr     string `yaml:"addr" mapstructure:"addr"`
	Password string `yaml:"password" mapstructure:"password"`
	DB       int    `yaml:"db" mapstructure:"db"`
}

// LogConfig holds logging configuration. File "-" logs to stderr.
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
	File  string `yaml:"file" mapstructure:"file"`
}

// BoardConfig holds board behaviour settings
type BoardConfig struct {
	Locale string `yaml:"locale" mapstructure:"locale"`
}

// TUIConfig holds TUI configuration
type TUIConfig struct {
	DragThreshold int          `yaml:"drag_threshold" mapstructure:"drag_threshold"`
	Styles        StylesConfig `yaml:"styles" mapstructure:"styles"`
}

// StylesConfig holds color and styling configuration
type StylesConfig struct {
	Column        ColumnStyle `yaml:"column" mapstructure:"column"`
	FocusedColumn ColumnStyle `yaml:"focused_column" mapstructure:"focused_column"`
	DropColumn    ColumnStyle `yaml:"drop_column" mapstructure:"drop_column"`
	ColumnTitle   TextStyle   `yaml:"column_title" mapstructure:"column_title"`
	Task          TextStyle   `yaml:"task" mapstructure:"task"`
	SelectedTask  TextStyle   `yaml:"selected_task" mapstructure:"selected_task"`
	Description   TextStyle   `yaml:"description" mapstructure:"description"`
	DragOverlay   TextStyle   `yaml:"drag_overlay" mapstructure:"drag_overlay"`
	Search        TextStyle   `yaml:"search" mapstructure:"search"`
	Help          TextStyle   `yaml:"help" mapstructure:"help"`
	Error         TextStyle   `yaml:"error" mapstructure:"error"`
}

// ColumnStyle represents column styling
type ColumnStyle struct {
	PaddingVertical   int    `yaml:"padding_vertical" mapstructure:"padding_vertical"`
	PaddingHorizontal int    `yaml:"padding_horizontal" mapstructure:"padding_horizontal"`
	BorderStyle       string `yaml:"border_style" mapstructure:"border_style"`
	BorderColor       string `yaml:"border_color" mapstructure:"border_color"`
}

// TextStyle represents text styling
type TextStyle struct {
	Foreground        string `yaml:"foreground,omitempty" mapstructure:"foreground"`
	Background        string `yaml:"background,omitempty" mapstructure:"background"`
	Bold              bool   `yaml:"bold,omitempty" mapstructure:"bold"`
	Italic            bool   `yaml:"italic,omitempty" mapstructure:"italic"`
	PaddingVertical   int    `yaml:"padding_vertical,omitempty" mapstructure:"padding_vertical"`
	PaddingHorizontal int    `yaml:"padding_horizontal,omitempty" mapstructure:"padding_horizontal"`
	Align             string `yaml:"align,omitempty" mapstructure:"align"`
}

// KeybindingsConfig holds keybinding configuration
type KeybindingsConfig struct {
	Up         []string `yaml:"up" mapstructure:"up"`
	Down       []string `yaml:"down" mapstructure:"down"`
	Left       []string `yaml:"left" mapstructure:"left"`
	Right      []string `yaml:"right" mapstructure:"right"`
	Move       []string `yaml:"move" mapstructure:"move"`
	Add        []string `yaml:"add" mapstructure:"add"`
	AddList    []string `yaml:"add_list" mapstructure:"add_list"`
	Rename     []string `yaml:"rename" mapstructure:"rename"`
	Edit       []string `yaml:"edit" mapstructure:"edit"`
	Delete     []string `yaml:"delete" mapstructure:"delete"`
	DeleteList []string `yaml:"delete_list" mapstructure:"delete_list"`
	Sort       []string `yaml:"sort" mapstructure:"sort"`
	Search     []string `yaml:"search" mapstructure:"search"`
	Quit       []string `yaml:"quit" mapstructure:"quit"`
}

// Validate checks the settings that cannot be repaired with a default
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite, BackendRedis:
	default:
		return fmt.Errorf("%w: %q", entity.ErrUnknownBackend, c.Storage.Backend)
	}

	switch c.Storage.Format {
	case "json", "yaml", "yml":
	default:
		return fmt.Errorf("%w: %q", entity.ErrUnknownFormat, c.Storage.Format)
	}

	if c.Storage.Backend == BackendRedis && c.Storage.Redis.Addr == "" {
		return fmt.Errorf("storage.redis.addr is required for the redis backend")
	}

	return nil
}

// LogPath returns the resolved log destination, "-" for stderr
func (c *Config) LogPath() string {
	if c.Log.File == "" {
		return filepath.Join(c.Storage.DataPath, defaultLogFileName)
	}
	return c.Log.File
}

// Loader handles loading and saving configuration
type Loader struct {
	configPath string
	homeDir    string
}

// NewLoader creates a loader for ~/.config/kanban/config.yml
func NewLoader() (*Loader, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return &Loader{
		configPath: filepath.Join(homeDir, defaultConfigDirName, defaultConfigFileName),
		homeDir:    homeDir,
	}, nil
}

// NewLoaderAt creates a loader for an explicit config file
func NewLoaderAt(path string) *Loader {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = filepath.Dir(path)
	}
	return &Loader{
		configPath: path,
		homeDir:    homeDir,
	}
}

// Load loads the configuration, creating defaults if it doesn't exist.
// Values missing from the file fall back to defaults and every key can be
// overridden from the environment.
func (l *Loader) Load() (*Config, error) {
	if _, err := os.Stat(l.configPath); os.IsNotExist(err) {
		if _, err := l.createDefaultConfig(); err != nil {
			return nil, err
		}
	}

	defaults, err := yaml.Marshal(DefaultConfig(l.homeDir))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal default config: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return nil, fmt.Errorf("failed to read default config: %w", err)
	}

	v.SetConfigFile(l.configPath)
	if err := v.MergeInConfig(); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	config.applyFallbacks()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", l.configPath, err)
	}

	return &config, nil
}

// Save persists the configuration to disk
func (l *Loader) Save(config *Config) error {
	configDir := filepath.Dir(l.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(l.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Reset overwrites the config file with defaults
func (l *Loader) Reset() (*Config, error) {
	return l.createDefaultConfig()
}

// GetConfigPath returns the path to the config file
func (l *Loader) GetConfigPath() string {
	return l.configPath
}

// createDefaultConfig creates and saves a default configuration
func (l *Loader) createDefaultConfig() (*Config, error) {
	config := DefaultConfig(l.homeDir)

	if err := l.Save(config); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(config.Storage.DataPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return config, nil
}

// applyFallbacks fills values that an override may have blanked out
func (c *Config) applyFallbacks() {
	if c.Storage.Collection == "" {
		c.Storage.Collection = DefaultCollection
	}
	if c.Storage.Document == "" {
		c.Storage.Document = DefaultDocument
	}
	if c.TUI.DragThreshold <= 0 {
		c.TUI.DragThreshold = DefaultDragThreshold
	}
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	c.Storage.Format = strings.ToLower(strings.TrimSpace(c.Storage.Format))
	if c.Storage.Format == "yml" {
		c.Storage.Format = "yaml"
	}
}

// DefaultConfig returns the configuration written on first run
func DefaultConfig(homeDir string) *Config {
	dataDir := filepath.Join(homeDir, defaultDataDirName)

	return &Config{
		Storage: StorageConfig{
			Backend:    BackendFile,
			DataPath:   dataDir,
			Collection: DefaultCollection,
			Document:   DefaultDocument,
			Format:     "json",
			Redis: RedisConfig{
				Addr: "localhost:6379",
			},
		},
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(dataDir, defaultLogFileName),
		},
		Board: BoardConfig{
			Locale: "en",
		},
		TUI: TUIConfig{
			DragThreshold: DefaultDragThreshold,
			Styles: StylesConfig{
				Column: ColumnStyle{
					PaddingVertical:   0,
					PaddingHorizontal: 1,
					BorderStyle:       "rounded",
					BorderColor:       "240",
				},
				FocusedColumn: ColumnStyle{
					PaddingVertical:   0,
					PaddingHorizontal: 1,
					BorderStyle:       "rounded",
					BorderColor:       "62",
				},
				DropColumn: ColumnStyle{
					PaddingVertical:   0,
					PaddingHorizontal: 1,
					BorderStyle:       "double",
					BorderColor:       "#A8DADC",
				},
				ColumnTitle: TextStyle{
					Foreground: "99",
					Bold:       true,
					Align:      "center",
				},
				Task: TextStyle{
					Foreground:        "252",
					PaddingHorizontal: 1,
				},
				SelectedTask: TextStyle{
					Foreground:        "230",
					Background:        "62",
					Bold:              true,
					PaddingHorizontal: 1,
				},
				Description: TextStyle{
					Foreground:        "#888888",
					Italic:            true,
					PaddingHorizontal: 2,
				},
				DragOverlay: TextStyle{
					Foreground:        "230",
					Background:        "#5A4FCF",
					Bold:              true,
					PaddingHorizontal: 1,
				},
				Search: TextStyle{
					Foreground:        "#FFE66D",
					PaddingHorizontal: 1,
				},
				Help: TextStyle{
					Foreground:        "241",
					PaddingVertical:   1,
					PaddingHorizontal: 2,
				},
				Error: TextStyle{
					Foreground:        "#FF6B6B",
					Bold:              true,
					PaddingHorizontal: 2,
				},
			},
		},
		Keybindings: KeybindingsConfig{
			Up:         []string{"up", "k"},
			Down:       []string{"down", "j"},
			Left:       []string{"left", "h"},
			Right:      []string{"right", "l"},
			Move:       []string{"m"},
			Add:        []string{"a"},
			AddList:    []string{"n"},
			Rename:     []string{"r"},
			Edit:       []string{"e", "enter"},
			Delete:     []string{"d"},
			DeleteList: []string{"D"},
			Sort:       []string{"s"},
			Search:     []string{"/"},
			Quit:       []string{"q", "ctrl+c"},
		},
	}
}
