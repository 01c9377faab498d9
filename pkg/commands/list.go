package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/skiff-sh/scaffold/pkg/catalog"
	"github.com/skiff-sh/scaffold/pkg/interact"
)

type ListAction struct {
	Catalog *catalog.Catalog
}

func NewListAction(c *catalog.Catalog) *ListAction {
	return &ListAction{Catalog: c}
}

func (l *ListAction) Act(_ context.Context) error {
	defs := l.Catalog.List()
	width := 0
	for _, v := range defs {
		width = max(width, lipgloss.Width(v.Name))
	}

	name := lipgloss.NewStyle().Width(width).MarginRight(2)
	for _, v := range defs {
		interact.Print(fmt.Sprintf(
			"%s%s %s",
			interact.InfoString(name.Render(v.Name)),
			v.DisplayTitle(),
			interact.FaintString(fmt.Sprintf("(%d files, %s)", len(v.Files), v.Base)),
		))
	}
	return nil
}

type ShowAction struct {
	Catalog *catalog.Catalog
}

func NewShowAction(c *catalog.Catalog) *ShowAction {
	return &ShowAction{Catalog: c}
}

func (s *ShowAction) Act(_ context.Context, name string) error {
	if name == "" {
		return errors.New("scaffold name is required")
	}

	def, err := s.Catalog.Get(name)
	if err != nil {
		return err
	}

	interact.Info(def.DisplayTitle())
	if def.Description != "" {
		interact.Print(def.Description)
	}
	interact.Print(interact.Tree(def.Base, def.Files.Paths()))
	return nil
}
