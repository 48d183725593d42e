// PO catalog import/export. Exporting lets reviewers fix machine
// translations in standard gettext tooling; importing merges the reviewed
// msgstr values back into the store.

package store

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// ImportPO parses a gettext PO catalog and returns its entries as a Store:
// msgid → msgstr. Entries with an empty msgstr are skipped, as are msgstr
// values that look like error placeholders (re-importing an exported
// catalog must not resurrect failures as translations).
func ImportPO(path string) (Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	po := gotext.NewPo()
	po.Parse(data)

	imported := Store{}
	for _, tr := range po.GetDomain().GetTranslations() {
		msgstr := tr.Get()
		if tr.ID == "" || msgstr == "" || msgstr == tr.ID || IsPlaceholder(msgstr) {
			continue
		}
		imported[tr.ID] = msgstr
	}
	return imported, nil
}

// ExportPO writes the store as a PO catalog. Successful translations become
// translated entries; placeholder entries are exported with an empty msgstr
// and a translator comment carrying the failure, so the catalog shows
// exactly what still needs human attention.
func (s Store) ExportPO(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)

	// Minimal header; the catalog is a review artifact, not a runtime one.
	fmt.Fprintln(w, `msgid ""`)
	fmt.Fprintln(w, `msgstr ""`)
	fmt.Fprintln(w, `"Content-Type: text/plain; charset=UTF-8\n"`)
	fmt.Fprintln(w, `"Language: en\n"`)
	fmt.Fprintln(w, `"X-Source-Language: zh-CN\n"`)

	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintln(w)
		v := s[k]
		if IsPlaceholder(v) {
			fmt.Fprintf(w, "# %s\n", v)
			v = ""
		}
		fmt.Fprintf(w, "msgid %s\n", poQuote(k))
		fmt.Fprintf(w, "msgstr %s\n", poQuote(v))
	}

	return w.Flush()
}

// poQuote produces a PO-style quoted string.
func poQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	return `"` + s + `"`
}
