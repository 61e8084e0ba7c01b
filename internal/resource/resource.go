package resource

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/matzehuels/bnrepo/pkg/errors"
	"github.com/matzehuels/bnrepo/pkg/observability"
)

// Suffix is the file extension of every embedded payload.
const Suffix = ".json.flate"

//go:embed networks/*.json.flate
var embedded embed.FS

// Default is the table of payloads embedded in this binary.
var Default = mustTable(embedded, "networks")

type entry struct {
	data []byte
	once sync.Once
	text string
	err  error
}

// Table maps resource names to compressed payloads and caches their
// inflated text. A Table is safe for concurrent use.
type Table struct {
	entries map[string]*entry
	names   []string
}

// NewTable loads every *.json.flate file directly under dir in fsys.
// The resource name is the file name without Suffix.
func NewTable(fsys fs.FS, dir string) (*Table, error) {
	matches, err := fs.Glob(fsys, path.Join(dir, "*"+Suffix))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list %s", dir)
	}

	t := &Table{entries: make(map[string]*entry, len(matches))}
	for _, m := range matches {
		name := strings.TrimSuffix(path.Base(m), Suffix)
		if err := errors.ValidateResourceStem(name); err != nil {
			return nil, err
		}
		data, err := fs.ReadFile(fsys, m)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", m)
		}
		t.entries[name] = &entry{data: data}
		t.names = append(t.names, name)
	}
	slices.Sort(t.names)
	return t, nil
}

func mustTable(fsys fs.FS, dir string) *Table {
	t, err := NewTable(fsys, dir)
	if err != nil {
		panic(err)
	}
	return t
}

// Names returns the sorted names of all resources in the table.
func (t *Table) Names() []string { return slices.Clone(t.names) }

// Compressed returns a copy of the compressed payload for name.
func (t *Table) Compressed(name string) ([]byte, bool) {
	e, ok := t.entries[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(e.data), true
}

// Text returns the inflated payload for name, decompressing it on first use.
// Every call for the same name returns the same text, or the same
// CORRUPT_RESOURCE error if the payload is malformed. Unknown names fail
// with INVALID_INPUT.
func (t *Table) Text(name string) (string, error) {
	e, ok := t.entries[name]
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidInput, "no embedded resource %q", name)
	}
	e.once.Do(func() {
		start := time.Now()
		e.text, e.err = Inflate(e.data)
		if e.err != nil {
			e.err = fmt.Errorf("resource %q: %w", name, e.err)
		}
		observability.Resource().OnInflate(name, len(e.data), len(e.text), time.Since(start), e.err)
	})
	return e.text, e.err
}
