// Package store implements the persisted translation map: Chinese source
// string → English translation, accumulated across runs as a JSON file.
//
// Failed translations are recorded as bracket-tagged placeholders of the
// form "[REASON: original text]". Placeholders keep the failure visible in
// the store but are excluded both from substitution and from the
// already-translated set, so they are retried on the next run. This is the
// tool's sole resumability mechanism.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultFileName is the default store file name.
const DefaultFileName = "translations.json"

// Placeholder reason codes.
const (
	ReasonRemoteNotReady = "REMOTE_NOT_READY"
	ReasonRemoteError    = "REMOTE_ERROR"
	ReasonLocalNotReady  = "LOCAL_NOT_READY"
	ReasonLocalError     = "LOCAL_ERROR"
)

// Store maps a Chinese source string to its English translation or to an
// error placeholder.
type Store map[string]string

// FormatError reports a store file that exists but is not valid JSON.
// It is fatal to a run: proceeding would risk overwriting translations
// that are merely unreadable, not absent.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("store file %s is not valid JSON: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Placeholder builds an error placeholder value for a failed translation.
func Placeholder(reason, original string) string {
	return "[" + reason + ": " + original + "]"
}

// IsPlaceholder reports whether a stored value is an error placeholder.
func IsPlaceholder(value string) bool {
	return strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]")
}

// Load reads a store from path. A missing file yields an empty store;
// a present but unparsable file yields a *FormatError.
func Load(path string) (Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Store{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var s Store
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, &FormatError{Path: path, Err: err}
	}
	if s == nil {
		s = Store{}
	}
	return s, nil
}

// Save writes the store to path as UTF-8 JSON with non-ASCII characters
// written literally. The file is written to a temp path in the same
// directory and renamed into place so a crash mid-write never leaves a
// half-written file at the canonical path.
func (s Store) Save(path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("marshaling store: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".zhpatch-store-*")
	if err != nil {
		return fmt.Errorf("creating temp store file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing %s: %w", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// Merge returns existing with updates' keys added or overwritten.
// Existing keys not re-supplied by updates are preserved unchanged.
func Merge(existing, updates Store) Store {
	merged := make(Store, len(existing)+len(updates))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range updates {
		merged[k] = v
	}
	return merged
}

// Translated returns the set of keys holding a successful translation.
// Placeholder entries are excluded so failed strings are retried.
func (s Store) Translated() map[string]bool {
	done := make(map[string]bool)
	for k, v := range s {
		if !IsPlaceholder(v) {
			done[k] = true
		}
	}
	return done
}

// Applicable returns the subset of the store usable for substitution:
// every entry whose value is a real translation, not a placeholder.
func (s Store) Applicable() Store {
	out := make(Store)
	for k, v := range s {
		if !IsPlaceholder(v) {
			out[k] = v
		}
	}
	return out
}

// Failed returns the keys holding error placeholders, sorted.
func (s Store) Failed() []string {
	var keys []string
	for k, v := range s {
		if IsPlaceholder(v) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Stats returns total, translated, and failed entry counts.
func (s Store) Stats() (total, translated, failed int) {
	total = len(s)
	for _, v := range s {
		if IsPlaceholder(v) {
			failed++
		} else {
			translated++
		}
	}
	return
}
