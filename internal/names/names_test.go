package names

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableResolve(t *testing.T) {
	table := NewTable(map[string]string{
		"alice_2":   "alice",
		"Bobby":     "bob",
		"Zoe\u0301": "zoe", // decomposed accent
	})

	tests := []struct {
		raw  string
		want string
	}{
		{"alice_2", "alice"},
		{"alice", "alice"},
		{" Bobby ", "bob"},
		{"bob", "bob"},
		{"Zo\u00e9", "zoe"}, // precomposed form of the same name
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := table.Resolve(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTableResolveUnmapped(t *testing.T) {
	table := NewTable(map[string]string{"alice_2": "alice"})

	_, err := table.Resolve("mallory")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnmappedName))

	var unmapped *UnmappedNameError
	require.True(t, errors.As(err, &unmapped))
	assert.Equal(t, "mallory", unmapped.Name)
}

func TestTableCanonical(t *testing.T) {
	table := NewTable(map[string]string{"b1": "bob", "a1": "alice", "a2": "alice"})
	assert.Equal(t, []string{"alice", "bob"}, table.Canonical())
	assert.Equal(t, 3, table.Len())
}

func TestDecode(t *testing.T) {
	entries, err := Decode(strings.NewReader("alice_2: alice\n\"bob @ home\": bob\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"alice_2": "alice", "bob @ home": "bob"}, entries)

	for _, empty := range []string{"", "# no names yet\n", "\n\n"} {
		entries, err = Decode(strings.NewReader(empty))
		require.NoError(t, err, "input %q", empty)
		assert.Empty(t, entries)
	}

	_, err = Decode(strings.NewReader("- not\n- a map\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.yaml")
	require.NoError(t, os.WriteFile(path, []byte("carol99: carol\n"), 0o644))

	entries, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"carol99": "carol"}, entries)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
