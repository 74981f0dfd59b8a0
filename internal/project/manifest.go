// Package project находит и декодирует манифест ripple.toml.
//
// The manifest is the per-package configuration surface: metadata in
// [package] and the statement-termination gate in [syntax]. It is read
// once per invocation and handed down as immutable values.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file that marks a project root.
const ManifestName = "ripple.toml"

// ErrManifestNotFound reports that no ripple.toml exists between the
// start directory and the filesystem root.
var ErrManifestNotFound = errors.New("ripple.toml not found")

// PackageSection is the [package] table.
type PackageSection struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// SyntaxSection is the [syntax] table.
//
// NewlineTermination — это указатель, чтобы отличать «не задано» от
// явного false: незаданное значение наследует умолчание (включено).
type SyntaxSection struct {
	NewlineTermination *bool `toml:"newline_termination"`
}

// Manifest is the decoded ripple.toml.
type Manifest struct {
	Package PackageSection `toml:"package"`
	Syntax  SyntaxSection  `toml:"syntax"`

	// Dir is the directory the manifest was loaded from, absolute.
	Dir string `toml:"-"`
}

// NewlineTermination resolves the [syntax] gate with its default.
func (m *Manifest) NewlineTermination() bool {
	if m == nil || m.Syntax.NewlineTermination == nil {
		return true
	}
	return *m.Syntax.NewlineTermination
}

// LoadManifest decodes the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		// Неизвестные ключи не фатальны, но молча глотать их нельзя.
		return nil, fmt.Errorf("decode %s: unknown key %q", path, undecoded[0].String())
	}
	abs, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	m.Dir = abs
	return &m, nil
}

// FindManifest walks from dir upward and loads the nearest ripple.toml.
// Returns ErrManifestNotFound when the walk hits the filesystem root.
func FindManifest(dir string) (*Manifest, error) {
	cur, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	for {
		candidate := filepath.Join(cur, ManifestName)
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return LoadManifest(candidate)
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return nil, ErrManifestNotFound
		}
		cur = parent
	}
}

// DefaultManifest returns the configuration used when no manifest exists:
// termination enabled, no package metadata.
func DefaultManifest(dir string) *Manifest {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	return &Manifest{Dir: abs}
}
