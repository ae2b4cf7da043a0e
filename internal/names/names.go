// Package names canonicalises the display names players use at the table.
//
// Players rejoin under slightly different names across sessions; the table
// maps every raw display name onto one canonical identity. A name that is
// already canonical resolves to itself. Any other name is a configuration
// error: the table must be extended before the logs can be processed.
package names

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrUnmappedName is the sentinel matched by UnmappedNameError.
var ErrUnmappedName = errors.New("names: unmapped player name")

// UnmappedNameError reports a raw name the table cannot resolve.
type UnmappedNameError struct {
	Name string
}

func (e *UnmappedNameError) Error() string {
	return fmt.Sprintf("names: player %q is not in the name table", e.Name)
}

func (e *UnmappedNameError) Unwrap() error { return ErrUnmappedName }

// Table resolves raw display names to canonical names.
type Table struct {
	aliases   map[string]string
	canonical map[string]struct{}
}

// NewTable builds a table from raw -> canonical entries.
func NewTable(entries map[string]string) *Table {
	t := &Table{
		aliases:   make(map[string]string, len(entries)),
		canonical: make(map[string]struct{}, len(entries)),
	}
	for raw, canon := range entries {
		t.Add(raw, canon)
	}
	return t
}

// Add registers an alias. Later entries for the same raw name replace earlier ones.
func (t *Table) Add(raw, canonical string) {
	canonical = normalize(canonical)
	t.aliases[normalize(raw)] = canonical
	t.canonical[canonical] = struct{}{}
}

// Resolve returns the canonical name for raw.
func (t *Table) Resolve(raw string) (string, error) {
	key := normalize(raw)
	if canon, ok := t.aliases[key]; ok {
		return canon, nil
	}
	if _, ok := t.canonical[key]; ok {
		return key, nil
	}
	return "", &UnmappedNameError{Name: raw}
}

// Len returns the number of aliases.
func (t *Table) Len() int {
	return len(t.aliases)
}

// Canonical returns the sorted set of canonical names.
func (t *Table) Canonical() []string {
	out := make([]string, 0, len(t.canonical))
	for name := range t.canonical {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func normalize(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}
