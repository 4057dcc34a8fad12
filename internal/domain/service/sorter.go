package service

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"kanban/internal/domain/entity"
)

// DefaultLocale is used when no sort locale is configured
const DefaultLocale = "en"

// Sorter orders tasks by name using locale-aware collation
type Sorter struct {
	mu       sync.Mutex
	collator *collate.Collator
	locale   language.Tag
}

// NewSorter creates a Sorter for the given BCP 47 locale
func NewSorter(locale string) (*Sorter, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid sort locale %q: %w", locale, err)
	}
	return &Sorter{
		collator: collate.New(tag),
		locale:   tag,
	}, nil
}

// SortTasks returns a new slice holding tasks in ascending name order.
// Tasks with equal names keep their relative order. The input is not modified.
func (s *Sorter) SortTasks(tasks []entity.Task) []entity.Task {
	sorted := make([]entity.Task, len(tasks))
	copy(sorted, tasks)

	// collate.Collator keeps internal buffers, so a single sort holds the lock throughout
	s.mu.Lock()
	defer s.mu.Unlock()
	sort.SliceStable(sorted, func(i, j int) bool {
		return s.collator.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})
	return sorted
}
