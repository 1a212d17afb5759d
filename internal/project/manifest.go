package project

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is the decoded rcl.toml. Only the sections the tools consume
// are modeled; unknown keys are ignored.
type Manifest struct {
	Package PackageSection `toml:"package"`
	Parser  ParserSection  `toml:"parser"`
}

// PackageSection is the [package] table.
type PackageSection struct {
	Name string `toml:"name"`
}

// ParserSection is the [parser] table. Zero values mean "use the
// built-in default".
type ParserSection struct {
	MaxDepth       uint `toml:"max_depth"`
	MaxDiagnostics int  `toml:"max_diagnostics"`
}

// LoadManifest parses an rcl.toml file.
func LoadManifest(path string) (Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if meta.IsDefined("package", "name") {
		m.Package.Name = strings.TrimSpace(m.Package.Name)
	}
	return m, nil
}

// LoadNearestManifest walks up from startDir and loads the first
// rcl.toml found. ok is false when no manifest exists; that is not an
// error.
func LoadNearestManifest(startDir string) (Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return Manifest{}, ok, err
	}
	m, err := LoadManifest(path)
	if err != nil {
		return Manifest{}, true, err
	}
	return m, true, nil
}
