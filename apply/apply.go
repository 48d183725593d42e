// Package apply rewrites files, substituting stored Chinese strings with
// their English translations.
//
// Substitution is longest-match-first: if a shorter key is a substring of
// a longer one ("系统" inside "系统设置"), replacing the shorter key first
// would corrupt the longer match and the more specific translation would
// never apply. Sorting keys by descending length makes every longer phrase
// win before its fragments are considered, which also makes a second run
// over the same file a no-op.
package apply

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/han-tools/zhpatch/store"
	"github.com/han-tools/zhpatch/textfile"
)

// Pair is one substitution: a Chinese key and its translation.
type Pair struct {
	Key         string
	Translation string
}

// Summary is the result of an apply run. It is a plain value returned to
// the caller; the engine keeps no global counters.
type Summary struct {
	// FilesScanned counts files read (including unchanged ones).
	FilesScanned int
	// FilesModified counts files whose content changed and was rewritten.
	FilesModified int
	// Replacements is the cumulative occurrence count across all files.
	Replacements int
	// Skipped lists files no candidate encoding could decode.
	Skipped []string
	// Failed lists files that could not be written, with the error.
	Failed []string
}

// Pairs converts a store into substitution pairs: placeholder entries are
// dropped, and the rest sorted by descending key length (ties broken
// lexicographically so runs are deterministic).
func Pairs(s store.Store) []Pair {
	var pairs []Pair
	for k, v := range s.Applicable() {
		pairs = append(pairs, Pair{Key: k, Translation: v})
	}
	sort.Slice(pairs, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(pairs[i].Key), utf8.RuneCountInString(pairs[j].Key)
		if li != lj {
			return li > lj
		}
		return pairs[i].Key < pairs[j].Key
	})
	return pairs
}

// escapeQuotes backslash-prefixes quote characters so a translation
// dropped inside a quoted string literal does not terminate it.
func escapeQuotes(s string) string {
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return s
}

// Text replaces every occurrence of every pair key in content, in the
// order given (callers pass the output of Pairs). Returns the rewritten
// content and the total occurrence count.
func Text(content string, pairs []Pair) (string, int) {
	replaced := 0
	for _, p := range pairs {
		n := strings.Count(content, p.Key)
		if n == 0 {
			continue
		}
		content = strings.ReplaceAll(content, p.Key, escapeQuotes(p.Translation))
		replaced += n
	}
	return content, replaced
}

// File applies pairs to a single file, writing back with the encoding that
// decoded it, and only when the content actually changed.
func File(path string, pairs []Pair) (modified bool, replacements int, err error) {
	content, enc, err := textfile.Read(path)
	if err != nil {
		return false, 0, err
	}

	updated, n := Text(content, pairs)
	if updated == content {
		return false, 0, nil
	}
	if err := textfile.Write(path, updated, enc); err != nil {
		return false, 0, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, n, nil
}

// Tree applies pairs to every processable text file under root. Files are
// processed independently: a decode or write failure is recorded in the
// summary and the walk continues.
func Tree(root string, pairs []Pair, opts textfile.WalkOptions) Summary {
	var sum Summary
	_ = textfile.Walk(root, opts, func(path string) error {
		sum.FilesScanned++
		modified, n, err := File(path, pairs)
		if err != nil {
			var de *textfile.DecodeError
			if errors.As(err, &de) {
				sum.Skipped = append(sum.Skipped, path)
			} else {
				sum.Failed = append(sum.Failed, fmt.Sprintf("%s: %v", path, err))
			}
			return nil
		}
		if modified {
			sum.FilesModified++
			sum.Replacements += n
		}
		return nil
	})
	return sum
}
