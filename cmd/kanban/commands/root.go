package commands

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"kanban/cmd/kanban/output"
	"kanban/internal/di"
	"kanban/internal/infrastructure/config"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"

	// Global flags
	outputFormat string
	configPath   string
	quiet        bool

	// Shared instances
	loader    *config.Loader
	cfg       *config.Config
	container *di.Container
	cleanup   func()
	printer   *output.Printer
	formatter *output.Formatter
)

// skipContainer marks commands that only need configuration
const skipContainer = "skip-container"

var multiSpaceRE = regexp.MustCompile(`\s{2,}`)
var uuidLikeRE = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kanban",
	Short: "Terminal-based Kanban board",
	Long: `kanban is a terminal Kanban board: named lists of tasks, moved around
with the keyboard or by dragging them with the mouse.

The board is saved as a single document in a JSON or YAML file, a SQLite
database, or Redis, depending on configuration.

Lists and tasks can be referenced by id or by exact name.

Examples:
  # Launch interactive TUI
  kanban
  kanban tui

  # Show the whole board
  kanban board show

  # Create a list and add a task to it
  kanban list add "To Do"
  kanban task add "To Do" "Ship release" --description "v2"

  # Find tasks by name
  kanban task list --search ship

  # Move a task to another list
  kanban task move "Ship release" Done`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configPath != "" {
			loader = config.NewLoaderAt(configPath)
		} else {
			loader, err = config.NewLoader()
			if err != nil {
				return fmt.Errorf("failed to create config loader: %w", err)
			}
		}

		// Initialize output formatter
		format, err := output.ParseFormat(outputFormat)
		if err != nil {
			return err
		}
		formatter = output.NewFormatter(format, cmd.OutOrStdout())
		printer = output.NewPrinter(cmd.OutOrStdout()).Quiet(quiet)

		cfg, err = loader.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if skipsContainer(cmd) {
			return nil
		}

		container, cleanup, err = di.InitializeContainer(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize container: %w", err)
		}

		// The TUI restores in the background so the first frame is not delayed
		if !launchesTUI(cmd) {
			container.Store.Restore(getContext())
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	shutdown()
	if err != nil {
		output.NewPrinter(os.Stderr).Error("%v", err)
		os.Exit(1)
	}
}

// shutdown writes pending board changes and releases storage
func shutdown() {
	if cleanup != nil {
		cleanup()
		cleanup = nil
	}
	container = nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json, yaml, fzf")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")

	// Version flag
	rootCmd.Flags().BoolP("version", "v", false, "Show version information")

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			printVersion(cmd.OutOrStdout())
			return nil
		}

		// Default behavior: launch TUI
		if len(args) == 0 {
			return tuiCmd.RunE(cmd, args)
		}
		return cmd.Help()
	}
}

// printVersion prints version information
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "kanban version %s\n", Version)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(w, "  Built:      %s\n", BuildDate)
}

// getContext returns a context for command execution
func getContext() context.Context {
	return context.Background()
}

// skipsContainer reports whether cmd runs without storage.
// Commands are matched by position and name so rootCmd's initializer can call it.
func skipsContainer(cmd *cobra.Command) bool {
	if v, _ := cmd.Flags().GetBool("version"); v && !cmd.HasParent() {
		return true
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipContainer] == "true" {
			return true
		}
	}
	return false
}

func launchesTUI(cmd *cobra.Command) bool {
	return !cmd.HasParent() || (cmd.Name() == "tui" && !cmd.Parent().HasParent())
}

// confirm asks a yes/no question on the command's input
func confirm(cmd *cobra.Command, format string, args ...interface{}) bool {
	printer.Warning(format, args...)
	printer.Print("Type 'yes' to confirm: ")

	reader := bufio.NewReader(cmd.InOrStdin())
	answer, _ := reader.ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "yes" || answer == "y"
}

// resolveArgs fills missing positional arguments from piped input, so
// "kanban task list -o fzf | fzf | kanban task delete" works.
func resolveArgs(cmd *cobra.Command, args []string, expected int) ([]string, error) {
	if len(args) >= expected {
		return args, nil
	}

	pipedArgs, err := readPipedArgs(cmd.InOrStdin(), expected)
	if err != nil {
		return nil, err
	}

	needed := expected - len(args)
	available := len(args) + len(pipedArgs)
	if len(pipedArgs) < needed {
		return nil, fmt.Errorf("accepts %d arg(s), received %d", expected, available)
	}

	resolved := append([]string{}, pipedArgs[:needed]...)
	resolved = append(resolved, args...)
	return resolved, nil
}

func readPipedArgs(in io.Reader, expected int) ([]string, error) {
	if f, ok := in.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return nil, err
		}
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return nil, nil
		}
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}

	return extractArgsFromInput(data, expected), nil
}

func extractArgsFromInput(data []byte, expected int) []string {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	bestScore := -1
	var best []string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tokens, score := parsePipedLine(line, expected)
		if len(tokens) < expected {
			continue
		}

		if score > bestScore {
			bestScore = score
			best = tokens
		}
	}

	if len(best) == 0 {
		return nil
	}
	return best
}

func parsePipedLine(line string, expected int) ([]string, int) {
	if strings.Contains(line, "\t") {
		return splitFields(line, func(r rune) bool { return r == '\t' }), 3
	}
	if multiSpaceRE.MatchString(line) {
		return multiSpaceRE.Split(line, -1), 2
	}

	fields := strings.Fields(line)
	if expected == 1 && len(fields) > 1 {
		if uuidLikeRE.MatchString(fields[0]) {
			return []string{fields[0]}, 2
		}
		return []string{line}, 1
	}

	return fields, 1
}

func splitFields(input string, split func(rune) bool) []string {
	fields := strings.FieldsFunc(input, split)
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		if field == "" {
			continue
		}
		out = append(out, field)
	}
	return out
}
