// Package config — .zhpatch.yaml configuration file support.
//
// When a .zhpatch.yaml file exists in the project root, zhpatch reads
// defaults from it: the store path, the routing threshold, batch size,
// the local engine command, and extra file extensions or excluded
// directories. Command-line flags always win over file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the default config file name.
const FileName = ".zhpatch.yaml"

// File is the top-level .zhpatch.yaml structure.
type File struct {
	// Store is the translation store path (default "translations.json").
	Store string `yaml:"store,omitempty"`
	// Threshold routes strings between remote and local engines.
	// -1 = all local, 0 = all remote. Nil means the built-in default.
	Threshold *int `yaml:"threshold,omitempty"`
	// BatchSize caps how many strings go into one remote request.
	BatchSize int `yaml:"batch_size,omitempty"`
	// LocalCommand is the offline engine binary (default "argos-translate").
	LocalCommand string `yaml:"local_command,omitempty"`
	// Backup toggles pre-apply backups. Nil means enabled.
	Backup *bool `yaml:"backup,omitempty"`
	// Extensions adds file extensions to the processable set (".vue").
	Extensions []string `yaml:"extensions,omitempty"`
	// ExcludeDirs adds directory names to skip while walking.
	ExcludeDirs []string `yaml:"exclude_dirs,omitempty"`
}

// Load reads and validates .zhpatch.yaml from the given directory.
// Returns nil if no .zhpatch.yaml exists.
func Load(rootDir string) (*File, error) {
	path := filepath.Join(rootDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if f.BatchSize < 0 {
		return nil, fmt.Errorf("%s: batch_size must be positive", path)
	}
	for i, ext := range f.Extensions {
		if ext == "" || ext[0] != '.' {
			return nil, fmt.Errorf("%s: extension #%d must start with a dot", path, i+1)
		}
	}

	return &f, nil
}

// BackupEnabled reports whether pre-apply backups are on (the default).
func (f *File) BackupEnabled() bool {
	return f.Backup == nil || *f.Backup
}
