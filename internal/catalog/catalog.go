// Package catalog provides the registry of recognized indicator and function
// tokens used by the expression editor. Each entry pairs a matchable token
// with the canonical call text inserted on completion.
package catalog

import (
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/rxtech-lab/argo-board/pkg/errors"
)

// Entry is a single catalog entry. Token is the text matched against the
// word under the cursor; Expansion is inserted verbatim on completion, with
// placeholder arguments left for the user to fill in.
type Entry struct {
	Token     string `yaml:"token" json:"token" validate:"required"`
	Expansion string `yaml:"expansion" json:"expansion" validate:"required"`
}

// Catalog is an ordered registry of entries. Lookup preserves declaration
// order so common entries can be ranked first; it never sorts alphabetically.
type Catalog struct {
	entries []Entry
	index   map[string]int
	mu      sync.RWMutex
}

// NewCatalog creates a catalog populated with the built-in entries.
func NewCatalog() *Catalog {
	c := &Catalog{
		entries: nil,
		index:   make(map[string]int),
		mu:      sync.RWMutex{},
	}

	for _, e := range builtinEntries {
		// Built-in tokens are unique by construction.
		_ = c.Register(e)
	}

	return c
}

// NewEmptyCatalog creates a catalog with no entries.
func NewEmptyCatalog() *Catalog {
	return &Catalog{
		entries: nil,
		index:   make(map[string]int),
		mu:      sync.RWMutex{},
	}
}

// Register appends an entry to the catalog. Tokens are unique
// (case-insensitive); registering a duplicate fails.
func (c *Catalog) Register(entry Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := strings.ToLower(entry.Token)
	if key == "" {
		return errors.New(errors.ErrCodeMissingParameter, "catalog entry token must not be empty")
	}

	if _, exists := c.index[key]; exists {
		return errors.Newf(errors.ErrCodeDuplicateEntry, "catalog entry %q already registered", entry.Token)
	}

	c.index[key] = len(c.entries)
	c.entries = append(c.entries, entry)

	return nil
}

// Lookup returns every entry whose token starts with prefix
// (case-insensitive), in declaration order. Unknown prefixes yield an empty
// sequence; lookup never fails.
func (c *Catalog) Lookup(prefix string) []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	prefix = strings.ToLower(prefix)

	var matches []Entry

	for _, e := range c.entries {
		if strings.HasPrefix(strings.ToLower(e.Token), prefix) {
			matches = append(matches, e)
		}
	}

	return matches
}

// Expansion returns the expansion text for an exact token match. The second
// return value reports whether the token is known.
func (c *Catalog) Expansion(token string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[strings.ToLower(token)]
	if !ok {
		return "", false
	}

	return c.entries[i].Expansion, true
}

// Entries returns a copy of every entry in declaration order.
func (c *Catalog) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Entry, len(c.entries))
	copy(out, c.entries)

	return out
}

// catalogFile is the shape of a YAML catalog extension file.
type catalogFile struct {
	Entries []Entry `yaml:"entries"`
}

// LoadYAML registers additional entries from YAML data. Entries are appended
// after the existing ones, so built-ins keep their ranking.
func (c *Catalog) LoadYAML(data []byte) error {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse catalog file", err)
	}

	for _, e := range file.Entries {
		if err := c.Register(e); err != nil {
			return err
		}
	}

	return nil
}

// LoadFile registers additional entries from a YAML file on disk.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to read catalog file %s", path)
	}

	return c.LoadYAML(data)
}
