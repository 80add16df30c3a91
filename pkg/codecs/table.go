package codecs

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// UnknownName is the conventional label for tags missing from the table
const UnknownName = "Unknown"

// ID is a 16-bit WAVE format tag
type ID uint16

func (id ID) String() string {
	return fmt.Sprintf("0x%04X", uint16(id))
}

func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ParseID accepts decimal ("353") or hex with a 0x prefix ("0x0161")
func ParseID(s string) (ID, error) {
	digits := strings.TrimSpace(s)

	base := 10
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
		base = 16
	}

	v, err := strconv.ParseUint(digits, base, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid codec id %q: %w", s, err)
	}

	return ID(v), nil
}

// Entry is a single id/name pair
type Entry struct {
	ID   ID     `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// Table is a read-only codec name table
type Table struct {
	names map[ID]string
	ids   []ID // ascending
}

// NewTable builds a table from a copy of names
func NewTable(names map[ID]string) *Table {
	t := &Table{
		names: make(map[ID]string, len(names)),
		ids:   make([]ID, 0, len(names)),
	}

	for id, name := range names {
		t.names[id] = name
		t.ids = append(t.ids, id)
	}
	sort.Slice(t.ids, func(i, j int) bool { return t.ids[i] < t.ids[j] })

	return t
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process-wide built-in table
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = NewTable(builtinNames())
	})
	return defaultTable
}

// Lookup resolves id against the built-in table
func Lookup(id ID) (string, bool) {
	return Default().Lookup(id)
}

// Lookup returns the name registered for id.
// ok is false when id is not in the table.
func (t *Table) Lookup(id ID) (name string, ok bool) {
	name, ok = t.names[id]
	return name, ok
}

// Name returns the name for id or fallback when it is not registered
func (t *Table) Name(id ID, fallback string) string {
	if name, ok := t.names[id]; ok {
		return name
	}
	return fallback
}

// Len returns the number of registered ids
func (t *Table) Len() int {
	return len(t.ids)
}

// IDs returns all registered ids in ascending order
func (t *Table) IDs() []ID {
	ids := make([]ID, len(t.ids))
	copy(ids, t.ids)
	return ids
}

// Entries returns all pairs ordered by id
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.ids))
	for _, id := range t.ids {
		entries = append(entries, Entry{ID: id, Name: t.names[id]})
	}
	return entries
}

// Search returns the entries whose name contains term, ignoring case.
// Results are ordered by id.
func (t *Table) Search(term string) []Entry {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(term))

	var matches []Entry
	for _, id := range t.ids {
		name := t.names[id]
		if strings.Contains(fold.String(name), needle) {
			matches = append(matches, Entry{ID: id, Name: name})
		}
	}
	return matches
}
