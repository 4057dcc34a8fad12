package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanban/internal/application/dto"
	"kanban/internal/infrastructure/config"
)

// cli runs commands against a config file in a temp directory
type cli struct {
	t          *testing.T
	configPath string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, config.NewLoaderAt(path).Save(config.DefaultConfig(dir)))
	return &cli{t: t, configPath: path}
}

func (c *cli) run(args ...string) (string, error) {
	return c.runWithInput("", args...)
}

func (c *cli) runWithInput(stdin string, args ...string) (string, error) {
	c.t.Helper()
	resetFlags(rootCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--config", c.configPath}, args...))

	err := rootCmd.Execute()
	shutdown()
	return buf.String(), err
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()
	out, err := c.run(args...)
	require.NoError(c.t, err, out)
	return out
}

func (c *cli) board() dto.BoardDTO {
	c.t.Helper()
	var board dto.BoardDTO
	require.NoError(c.t, json.Unmarshal([]byte(c.mustRun("board", "show", "-o", "json")), &board))
	return board
}

// resetFlags puts every flag back to its default between runs
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func TestCLI_AddListsAndTasksPersist(t *testing.T) {
	c := newCLI(t)

	c.mustRun("list", "add", "To Do")
	c.mustRun("list", "add", "Done")
	out := c.mustRun("task", "add", "To Do", "Ship release", "--description", "v2")
	assert.Contains(t, out, "Created task: Ship release in To Do")

	board := c.board()
	require.Len(t, board.Lists, 2)
	assert.Equal(t, "To Do", board.Lists[0].Name)
	assert.Equal(t, "Done", board.Lists[1].Name)
	require.Len(t, board.Lists[0].Tasks, 1)
	assert.Equal(t, "Ship release", board.Lists[0].Tasks[0].Name)
	assert.Equal(t, "v2", board.Lists[0].Tasks[0].Description)
}

func TestCLI_MoveTaskByName(t *testing.T) {
	c := newCLI(t)
	c.mustRun("list", "add", "To Do")
	c.mustRun("list", "add", "Done")
	c.mustRun("task", "add", "To Do", "Ship release")

	out := c.mustRun("task", "move", "Ship release", "Done")
	assert.Contains(t, out, "Moved Ship release to Done")

	out = c.mustRun("task", "move", "Ship release", "Done")
	assert.Contains(t, out, "already in Done")

	board := c.board()
	assert.Empty(t, board.Lists[0].Tasks)
	require.Len(t, board.Lists[1].Tasks, 1)
}

func TestCLI_SearchAndFZFOutput(t *testing.T) {
	c := newCLI(t)
	c.mustRun("list", "add", "To Do")
	for _, name := range []string{"Buy groceries", "Write report", "Buy tickets"} {
		c.mustRun("task", "add", "To Do", name)
	}

	out := c.mustRun("task", "list", "--search", "BUY", "-o", "fzf")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	fields := strings.Split(lines[0], "\t")
	require.Len(t, fields, 3)
	assert.Equal(t, "Buy groceries", fields[1])
	assert.Equal(t, "To Do", fields[2])

	var board dto.BoardDTO
	require.NoError(t, json.Unmarshal([]byte(c.mustRun("board", "show", "-s", "buy", "-o", "json")), &board))
	assert.Equal(t, 2, board.TaskCount)
	assert.Equal(t, 3, board.TotalTasks)
}

func TestCLI_DeletePipedTask(t *testing.T) {
	c := newCLI(t)
	c.mustRun("list", "add", "To Do")
	c.mustRun("task", "add", "To Do", "Write report")
	c.mustRun("task", "add", "To Do", "Buy tickets")
	selected := strings.Split(strings.TrimSpace(c.mustRun("task", "list", "-s", "report", "-o", "fzf")), "\n")[0]

	out, err := c.runWithInput(selected+"\n", "task", "delete")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Deleted task: Write report")

	tasks := c.board().Lists[0].Tasks
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy tickets", tasks[0].Name)
}

func TestCLI_DeleteListConfirmation(t *testing.T) {
	c := newCLI(t)
	c.mustRun("list", "add", "Archive")
	c.mustRun("task", "add", "Archive", "old")

	out, err := c.runWithInput("n\n", "list", "delete", "Archive")
	require.NoError(t, err)
	assert.Contains(t, out, "its 1 task(s)")
	assert.Contains(t, out, "Delete cancelled")
	assert.Len(t, c.board().Lists, 1)

	_, err = c.runWithInput("yes\n", "list", "delete", "Archive")
	require.NoError(t, err)
	assert.Empty(t, c.board().Lists)
}

func TestCLI_RenameAndSortList(t *testing.T) {
	c := newCLI(t)
	c.mustRun("list", "add", "To Do")
	c.mustRun("task", "add", "To Do", "Ship release")
	c.mustRun("task", "add", "To Do", "Ask Al")

	c.mustRun("list", "rename", "To Do", "Backlog")
	c.mustRun("list", "sort", "Backlog")

	list := c.board().Lists[0]
	assert.Equal(t, "Backlog", list.Name)
	require.Len(t, list.Tasks, 2)
	assert.Equal(t, "Ask Al", list.Tasks[0].Name)
	assert.Equal(t, "Ship release", list.Tasks[1].Name)
}

func TestCLI_UpdateTask(t *testing.T) {
	c := newCLI(t)
	c.mustRun("list", "add", "To Do")
	c.mustRun("task", "add", "To Do", "Write report", "-d", "quarterly")

	_, err := c.run("task", "update", "Write report")
	assert.Error(t, err, "no flags means nothing to update")

	c.mustRun("task", "update", "Write report", "--name", "Write summary")

	task := c.board().Lists[0].Tasks[0]
	assert.Equal(t, "Write summary", task.Name)
	assert.Equal(t, "quarterly", task.Description, "unchanged fields are kept")
}

func TestCLI_RejectsBadInput(t *testing.T) {
	c := newCLI(t)
	c.mustRun("list", "add", "To Do")

	_, err := c.run("list", "add", "   ")
	assert.Error(t, err)

	_, err = c.run("task", "add", "Nope", "x")
	assert.Error(t, err)

	_, err = c.run("board", "show", "-o", "xml")
	assert.Error(t, err)

	assert.Len(t, c.board().Lists, 1)
}

func TestCLI_BoardReset(t *testing.T) {
	c := newCLI(t)
	c.mustRun("list", "add", "To Do")

	out := c.mustRun("board", "reset", "--yes")
	assert.Contains(t, out, "Board reset")

	assert.Empty(t, c.board().Lists)
}

func TestCLI_QuietSuppressesMessages(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("-q", "list", "add", "To Do")

	assert.Empty(t, out)
}

func TestCLI_Config(t *testing.T) {
	c := newCLI(t)

	assert.Equal(t, c.configPath, strings.TrimSpace(c.mustRun("config", "path")))
	assert.Equal(t, "file", strings.TrimSpace(c.mustRun("config", "get", "storage.backend")))
	assert.Contains(t, c.mustRun("config", "show"), "drag_threshold: 8")

	_, err := c.run("config", "get", "storage.nope")
	assert.Error(t, err)
}

func TestCLI_Version(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("--version")

	assert.Contains(t, out, "kanban version dev")
}

func TestCLI_SQLiteBackend(t *testing.T) {
	c := newCLI(t)
	t.Setenv("KANBAN_STORAGE_BACKEND", "sqlite")

	c.mustRun("list", "add", "To Do")

	board := c.board()
	require.Len(t, board.Lists, 1)
	assert.Equal(t, "To Do", board.Lists[0].Name)
}

func TestExtractArgsFromInput(t *testing.T) {
	id := "01890a5d-ac96-774b-bcce-b302099a8057"

	assert.Equal(t, []string{id, "Write report", "To Do"},
		extractArgsFromInput([]byte(id+"\tWrite report\tTo Do\n"), 1))
	assert.Equal(t, []string{id},
		extractArgsFromInput([]byte(id+" Write report\n"), 1))
	assert.Equal(t, []string{"Write report"},
		extractArgsFromInput([]byte("Write report\n"), 1))
	assert.Equal(t, []string{"Write report", "Done"},
		extractArgsFromInput([]byte("Write report   Done\n"), 2))
	assert.Nil(t, extractArgsFromInput([]byte("\n\n"), 1))
}

func TestCommandRouting(t *testing.T) {
	assert.True(t, launchesTUI(rootCmd))
	assert.True(t, launchesTUI(tuiCmd))
	assert.False(t, launchesTUI(boardShowCmd))
	assert.False(t, launchesTUI(taskMoveCmd))

	assert.False(t, skipsContainer(rootCmd))
	assert.False(t, skipsContainer(taskAddCmd))
	assert.True(t, skipsContainer(configGetCmd))
	assert.True(t, skipsContainer(completionCmd))

	require.NoError(t, rootCmd.Flags().Set("version", "true"))
	t.Cleanup(func() { resetFlags(rootCmd) })
	assert.True(t, skipsContainer(rootCmd))
	assert.False(t, skipsContainer(listAddCmd))
}
