package scaffold

import (
	"path"

	"github.com/skiff-sh/scaffold/pkg/collection"
)

// Entry a single file of a scaffold. Path is relative to the base directory
// and always uses forward slashes.
type Entry struct {
	Path    string `yaml:"path"              json:"path"`
	Content string `yaml:"content,omitempty" json:"content,omitempty"`
}

// Manifest an ordered list of entries. The directory tree is implied by the
// directory portion of each path.
type Manifest []Entry

// Dirs returns every directory implied by the manifest, ancestors included,
// in the order they are first needed. The base directory itself is omitted.
func (m Manifest) Dirs() []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(m))
	for _, v := range m {
		var chain []string
		for d := path.Dir(path.Clean(v.Path)); d != "." && d != "/"; d = path.Dir(d) {
			chain = append(chain, d)
		}

		for i := len(chain) - 1; i >= 0; i-- {
			if _, ok := seen[chain[i]]; ok {
				continue
			}
			seen[chain[i]] = struct{}{}
			out = append(out, chain[i])
		}
	}
	return out
}

// Paths the file paths of the manifest in order.
func (m Manifest) Paths() []string {
	return collection.Map(m, func(e Entry) string {
		return e.Path
	})
}
