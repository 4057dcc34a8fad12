package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"kanban/internal/infrastructure/config"
)

// keyMap holds the board-mode bindings
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Move       key.Binding
	Add        key.Binding
	AddList    key.Binding
	Rename     key.Binding
	Edit       key.Binding
	Delete     key.Binding
	DeleteList key.Binding
	Sort       key.Binding
	Search     key.Binding
	Quit       key.Binding
}

// Form, search and confirm prompts use fixed keys
var (
	submitKey  = key.NewBinding(key.WithKeys("enter"))
	cancelKey  = key.NewBinding(key.WithKeys("esc"))
	nextField  = key.NewBinding(key.WithKeys("tab", "shift+tab"))
	confirmYes = key.NewBinding(key.WithKeys("y", "Y"))
	confirmNo  = key.NewBinding(key.WithKeys("n", "N", "esc"))
)

var keys = newKeyMap(config.DefaultConfig("").Keybindings)

// InitKeybindings rebuilds the key map from config
func InitKeybindings(cfg *config.Config) {
	keys = newKeyMap(cfg.Keybindings)
}

func newKeyMap(kb config.KeybindingsConfig) keyMap {
	return keyMap{
		Up:         binding(kb.Up, "up"),
		Down:       binding(kb.Down, "down"),
		Left:       binding(kb.Left, "prev list"),
		Right:      binding(kb.Right, "next list"),
		Move:       binding(kb.Move, "move →"),
		Add:        binding(kb.Add, "add task"),
		AddList:    binding(kb.AddList, "new list"),
		Rename:     binding(kb.Rename, "rename list"),
		Edit:       binding(kb.Edit, "edit task"),
		Delete:     binding(kb.Delete, "delete task"),
		DeleteList: binding(kb.DeleteList, "delete list"),
		Sort:       binding(kb.Sort, "sort"),
		Search:     binding(kb.Search, "search"),
		Quit:       binding(kb.Quit, "quit"),
	}
}

func binding(keyNames []string, desc string) key.Binding {
	if len(keyNames) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(keyNames...),
		key.WithHelp(strings.Join(keyNames, "/"), desc),
	)
}

// helpBindings returns the bindings shown in the footer, in display order.
// Sort is left out while the list cannot be sorted.
func (k keyMap) helpBindings(sortable bool) []key.Binding {
	bindings := []key.Binding{
		k.Add, k.Edit, k.Delete, k.Move,
		k.AddList, k.Rename, k.DeleteList,
	}
	if sortable {
		bindings = append(bindings, k.Sort)
	}
	return append(bindings, k.Search, k.Quit)
}
