package catalog

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/skiff-sh/scaffold/pkg/except"
	"github.com/skiff-sh/scaffold/pkg/scaffold"
)

// SupportedVersions the definition format versions this build understands.
var SupportedVersions, _ = semver.NewConstraint(">= 1.0.0, < 2.0.0")

var caser = cases.Title(language.English)

// Definition a named scaffold.
type Definition struct {
	// Version of the definition format, not of the scaffold.
	Version     string `yaml:"version"`
	Name        string `yaml:"name"`
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
	// Base default directory the scaffold is written to, relative to the
	// project root.
	Base string `yaml:"base"`
	// Message printed once the scaffold has been written.
	Message string            `yaml:"message,omitempty"`
	Files   scaffold.Manifest `yaml:"files"`
}

// DisplayTitle the title, or the name in title case if no title is set.
func (d *Definition) DisplayTitle() string {
	if d.Title != "" {
		return d.Title
	}
	return caser.String(strings.ReplaceAll(d.Name, "-", " "))
}

func (d *Definition) SuccessMessage() string {
	if d.Message != "" {
		return d.Message
	}
	return fmt.Sprintf("%s folder structure created successfully!", d.DisplayTitle())
}

// Load validates data against the definition schema and decodes it.
func Load(data []byte) (*Definition, error) {
	res, err := Validate(data)
	if err != nil {
		return nil, err
	}

	err = res.Err()
	if err != nil {
		return nil, err
	}

	out := new(Definition)
	err = yaml.Unmarshal(data, out)
	if err != nil {
		return nil, fmt.Errorf("decoding definition: %w", err)
	}

	err = out.check()
	if err != nil {
		return nil, fmt.Errorf("definition %s: %w", out.Name, err)
	}

	return out, nil
}

func LoadFile(fp string) (*Definition, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, err
	}

	out, err := Load(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fp, err)
	}
	return out, nil
}

func (d *Definition) check() error {
	v, err := semver.NewVersion(d.Version)
	if err != nil {
		return fmt.Errorf("version %q: %w", d.Version, errors.Join(except.ErrInvalid, err))
	}

	if !SupportedVersions.Check(v) {
		return fmt.Errorf("version %s is not supported (%s): %w", v, SupportedVersions, except.ErrInvalid)
	}

	base := path.Clean(d.Base)
	if path.IsAbs(base) || base == ".." || strings.HasPrefix(base, "../") {
		return fmt.Errorf("base %s must be relative to the project root: %w", d.Base, except.ErrInvalid)
	}

	return nil
}
