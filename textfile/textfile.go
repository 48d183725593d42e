// Package textfile handles reading and writing the text files zhpatch
// operates on. Legacy multi-language codebases mix encodings, so reads try a
// fixed list of candidate encodings (UTF-8, GBK, GB2312, UTF-16) and report
// which one decoded cleanly; writes reuse that encoding so a patched file
// keeps its original byte representation.
//
// The package also owns the text-file predicate: the extension allowlist,
// hidden-file rule, and the set of directories never worth descending into.
package textfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// Extensions is the allowlist of file extensions considered processable
// text: source code, markup, config, and data files.
var Extensions = map[string]bool{
	".py": true, ".js": true, ".html": true, ".htm": true, ".css": true,
	".json": true, ".xml": true, ".txt": true, ".md": true,
	".php": true, ".java": true, ".cpp": true, ".c": true, ".h": true,
	".ts": true, ".tsx": true, ".jsx": true, ".vue": true,
	".go": true, ".rs": true, ".rb": true, ".pl": true, ".sh": true,
	".bat": true, ".yml": true, ".yaml": true, ".ini": true,
	".cfg": true, ".conf": true, ".log": true, ".sql": true,
	".csv": true, ".tsv": true,
}

// SkipDirs contains directory names never scanned or modified:
// version-control metadata, dependency caches, and virtual environments.
var SkipDirs = map[string]bool{
	".git":         true,
	".svn":         true,
	".hg":          true,
	"node_modules": true,
	"__pycache__":  true,
	".vscode":      true,
	"vendor":       true,
	"venv":         true,
	".venv":        true,
	"env":          true,
	".env":         true,
}

// IsTextFile reports whether path has a processable text extension.
// Hidden files are rejected regardless of extension.
func IsTextFile(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") {
		return false
	}
	return Extensions[strings.ToLower(filepath.Ext(path))]
}

// Encoding identifies one candidate file encoding.
type Encoding struct {
	// Name is the label reported to the user (utf-8, gbk, ...).
	Name string

	enc encoding.Encoding // nil means plain UTF-8
}

// Candidates lists the encodings tried on read, in order. GB2312 has no
// standalone codec in x/text; GB18030 is a strict superset and decodes
// everything GB2312 can.
var Candidates = []Encoding{
	{Name: "utf-8"},
	{Name: "gbk", enc: simplifiedchinese.GBK},
	{Name: "gb18030", enc: simplifiedchinese.GB18030},
	{Name: "utf-16", enc: unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)},
}

// DecodeError reports a file that none of the candidate encodings could
// decode. Callers skip the file and continue.
type DecodeError struct {
	Path string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %s with any of the supported encodings", e.Path)
}

// Read reads path trying each candidate encoding in order and returns the
// decoded content together with the encoding that succeeded. A decode is
// considered clean when it produces no replacement characters. Returns a
// *DecodeError when every candidate fails.
func Read(path string) (string, Encoding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", Encoding{}, err
	}

	for _, cand := range Candidates {
		if cand.enc == nil {
			if utf8.Valid(data) {
				return string(data), cand, nil
			}
			continue
		}
		decoded, err := cand.enc.NewDecoder().Bytes(data)
		if err != nil {
			continue
		}
		// x/text decoders substitute U+FFFD for undecodable bytes rather
		// than failing; treat any substitution as a failed candidate.
		if strings.ContainsRune(string(decoded), utf8.RuneError) {
			continue
		}
		return string(decoded), cand, nil
	}

	return "", Encoding{}, &DecodeError{Path: path}
}

// Write writes content to path encoded with enc — normally the encoding
// returned by Read for the same file.
func Write(path string, content string, enc Encoding) error {
	data := []byte(content)
	if enc.enc != nil {
		encoded, err := enc.enc.NewEncoder().Bytes(data)
		if err != nil {
			return fmt.Errorf("encoding %s as %s: %w", path, enc.Name, err)
		}
		data = encoded
	}

	info, err := os.Stat(path)
	mode := os.FileMode(0644)
	if err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, data, mode)
}

// WalkOptions adjusts tree walking.
type WalkOptions struct {
	// Exclude holds base names of files or directories to skip (e.g. the
	// translation store itself, or project-configured directories).
	Exclude map[string]bool
	// ExtraExtensions extends the Extensions allowlist for this walk.
	ExtraExtensions []string
}

func (o WalkOptions) isText(path string) bool {
	if IsTextFile(path) {
		return true
	}
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, extra := range o.ExtraExtensions {
		if ext == extra {
			return true
		}
	}
	return false
}

// Walk visits every processable text file under root in tree-walk order,
// skipping SkipDirs, hidden files, backup trees, and excluded names.
// fn errors abort the walk.
func Walk(root string, opts WalkOptions, fn func(path string) error) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entry, keep walking
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (SkipDirs[name] || opts.Exclude[name] || strings.HasSuffix(name, "__backup")) {
				return filepath.SkipDir
			}
			return nil
		}
		if opts.Exclude[name] || !opts.isText(path) {
			return nil
		}
		return fn(path)
	})
}

// List returns the processable text files under root, sorted.
func List(root string, opts WalkOptions) ([]string, error) {
	var files []string
	err := Walk(root, opts, func(path string) error {
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
