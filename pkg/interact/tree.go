package interact

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

var enumeratorStyle = lipgloss.NewStyle().Foreground(faint).MarginRight(1)

// Tree renders slash separated paths as a directory tree under root.
// Directories sort before files, both keep their first-seen order.
func Tree(root string, paths []string) string {
	r := newNode(root)
	for _, p := range paths {
		cur := r
		parts := strings.Split(strings.Trim(p, "/"), "/")
		for i, part := range parts {
			cur = cur.child(part, i < len(parts)-1)
		}
	}

	return r.render().String()
}

type node struct {
	Name  string
	IsDir bool
	Dirs  []*node
	Files []*node
}

func newNode(name string) *node {
	return &node{Name: name, IsDir: true}
}

func (n *node) child(name string, isDir bool) *node {
	list := &n.Files
	if isDir {
		list = &n.Dirs
	}

	for _, v := range *list {
		if v.Name == name {
			return v
		}
	}

	c := &node{Name: name, IsDir: isDir}
	*list = append(*list, c)
	return c
}

func (n *node) render() *tree.Tree {
	t := tree.Root(InfoString(n.Name + "/")).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumeratorStyle)
	for _, d := range n.Dirs {
		t.Child(d.render())
	}

	for _, f := range n.Files {
		t.Child(f.Name)
	}
	return t
}
