package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"sync"

	"github.com/skiff-sh/scaffold/pkg/collection"
	"github.com/skiff-sh/scaffold/pkg/except"
)

//go:embed definitions/*.yaml
var definitions embed.FS

// Catalog a set of definitions keyed by name.
type Catalog struct {
	defs map[string]*Definition
}

func New(defs ...*Definition) (*Catalog, error) {
	out := &Catalog{defs: make(map[string]*Definition, len(defs))}
	for _, v := range defs {
		if _, ok := out.defs[v.Name]; ok {
			return nil, fmt.Errorf("definition %s: %w", v.Name, except.ErrExists)
		}
		out.defs[v.Name] = v
	}
	return out, nil
}

// FromFS loads every *.yaml, *.yml and *.json definition directly within dir.
func FromFS(f fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(f, dir)
	if err != nil {
		return nil, err
	}

	defs := make([]*Definition, 0, len(entries))
	for _, v := range entries {
		if v.IsDir() {
			continue
		}

		switch path.Ext(v.Name()) {
		case ".yaml", ".yml", ".json":
		default:
			continue
		}

		fp := path.Join(dir, v.Name())
		b, err := fs.ReadFile(f, fp)
		if err != nil {
			return nil, err
		}

		def, err := Load(b)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fp, err)
		}
		defs = append(defs, def)
	}

	return New(defs...)
}

// Default the catalog of scaffolds shipped with the binary.
func Default() (*Catalog, error) {
	return defaultCatalog()
}

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return FromFS(definitions, "definitions")
})

func (c *Catalog) Get(name string) (*Definition, error) {
	v, ok := c.defs[name]
	if !ok {
		return nil, fmt.Errorf("scaffold %s: %w", name, except.ErrNotFound)
	}
	return v, nil
}

// Names sorted.
func (c *Catalog) Names() []string {
	out := collection.Keys(c.defs)
	slices.Sort(out)
	return out
}

// List definitions sorted by name.
func (c *Catalog) List() []*Definition {
	return collection.Map(c.Names(), func(e string) *Definition {
		return c.defs[e]
	})
}
