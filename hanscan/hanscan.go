// Package hanscan extracts Chinese text fragments from arbitrary text.
//
// A fragment is a run of characters from three CJK Unicode blocks:
// Unified Ideographs (U+4E00–U+9FFF), Unified Ideographs Extension A
// (U+3400–U+4DBF), and Compatibility Ideographs (U+F900–U+FAFF).
//
// Two complementary passes are applied. The loose pass captures whole
// phrases — Chinese characters possibly joined by whitespace or Chinese
// punctuation — which translate better as a unit. The strict pass captures
// every maximal contiguous ideograph run, so a fragment glued to Latin text
// (e.g. the "传感器采样" in "传感器采样Rate") is still found on its own.
// The union of both passes is returned; the substitution engine needs both
// to guarantee full coverage.
package hanscan

import (
	"regexp"
	"sort"
	"strings"
)

// han matches a single character in any of the three CJK blocks.
const han = `[\x{4e00}-\x{9fff}\x{3400}-\x{4dbf}\x{f900}-\x{faff}]`

// interior characters permitted inside a loose phrase: ideographs,
// whitespace, and the common Chinese punctuation marks. Latin letters
// terminate a phrase immediately. Go's \s is ASCII-only, so the Unicode
// spaces that join Chinese phrases (ideographic space U+3000, NBSP,
// U+2000–U+200A) are listed explicitly.
const interior = `[\x{4e00}-\x{9fff}\x{3400}-\x{4dbf}\x{f900}-\x{faff}\s\x{00a0}\x{2000}-\x{200a}\x{3000}，。、：；！？]`

var (
	// loosePattern: a phrase bounded by ideographs with permitted interior
	// characters, or a single ideograph when no such span exists.
	loosePattern = regexp.MustCompile(han + interior + `*` + han + `|` + han)

	// strictPattern: maximal contiguous ideograph runs only.
	strictPattern = regexp.MustCompile(han + `+`)

	// hanChar reports whether a string contains at least one ideograph.
	hanChar = regexp.MustCompile(han)
)

// ContainsHan reports whether s contains at least one Chinese character.
func ContainsHan(s string) bool {
	return hanChar.MatchString(s)
}

// Extract returns the deduplicated set of Chinese fragments in text,
// sorted lexicographically for deterministic output. Results are trimmed
// of surrounding whitespace and always contain at least one ideograph.
// Empty input yields an empty (nil) result.
func Extract(text string) []string {
	if text == "" {
		return nil
	}

	raw := loosePattern.FindAllString(text, -1)
	raw = append(raw, strictPattern.FindAllString(text, -1)...)

	cleaned := make(map[string]bool)
	for _, m := range raw {
		c := strings.TrimSpace(m)
		if c != "" && ContainsHan(c) {
			cleaned[c] = true
		}
	}
	if len(cleaned) == 0 {
		return nil
	}

	out := make([]string, 0, len(cleaned))
	for c := range cleaned {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// ExtractSet is like Extract but returns the fragments as a set.
func ExtractSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, s := range Extract(text) {
		set[s] = true
	}
	return set
}
