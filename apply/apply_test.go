package apply

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/han-tools/zhpatch/store"
	"github.com/han-tools/zhpatch/textfile"
)

func TestLongestMatchFirst(t *testing.T) {
	pairs := Pairs(store.Store{
		"系统":   "system",
		"系统设置": "system settings",
	})

	got, n := Text("系统设置", pairs)
	if got != "system settings" {
		t.Fatalf("got %q, want %q", got, "system settings")
	}
	if n != 1 {
		t.Fatalf("replacements = %d, want 1", n)
	}
}

func TestPairsOrderAndFiltering(t *testing.T) {
	pairs := Pairs(store.Store{
		"系统":   "system",
		"系统设置": "system settings",
		"网络":   store.Placeholder(store.ReasonRemoteError, "网络"),
	})
	if len(pairs) != 2 {
		t.Fatalf("placeholder not filtered: %v", pairs)
	}
	if pairs[0].Key != "系统设置" || pairs[1].Key != "系统" {
		t.Fatalf("not longest-first: %v", pairs)
	}
}

func TestTextReplacesAllOccurrences(t *testing.T) {
	pairs := Pairs(store.Store{"你好": "hello"})
	got, n := Text("你好，你好，你好", pairs)
	if got != "hello，hello，hello" {
		t.Fatalf("got %q", got)
	}
	if n != 3 {
		t.Fatalf("replacements = %d, want 3", n)
	}
}

func TestTextEscapesQuotes(t *testing.T) {
	pairs := Pairs(store.Store{"提示": `say "hi" or 'hey'`})
	got, _ := Text(`msg = "提示"`, pairs)
	want := `msg = "say \"hi\" or \'hey\'"`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTextIdempotent(t *testing.T) {
	pairs := Pairs(store.Store{
		"系统设置": "system settings",
		"你好":   "hello",
	})
	once, n1 := Text(`系统设置 你好 世界`, pairs)
	if n1 == 0 {
		t.Fatal("first pass made no replacements")
	}
	twice, n2 := Text(once, pairs)
	if twice != once || n2 != 0 {
		t.Fatalf("second pass changed content (%d replacements): %q", n2, twice)
	}
}

func TestFileEndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.js")
	if err := os.WriteFile(path, []byte(`var x = "你好世界";`), 0644); err != nil {
		t.Fatal(err)
	}

	pairs := Pairs(store.Store{"你好世界": "Hello World"})
	modified, n, err := File(path, pairs)
	if err != nil {
		t.Fatal(err)
	}
	if !modified || n != 1 {
		t.Fatalf("modified=%v n=%d", modified, n)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `var x = "Hello World";` {
		t.Fatalf("file content = %q", data)
	}

	// Second run must be a no-op.
	modified, n, err = File(path, pairs)
	if err != nil {
		t.Fatal(err)
	}
	if modified || n != 0 {
		t.Fatalf("second run modified=%v n=%d, want no-op", modified, n)
	}
}

func TestFileUnchangedNotRewritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("plain english"), 0644); err != nil {
		t.Fatal(err)
	}
	before, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	modified, _, err := File(path, Pairs(store.Store{"你好": "hello"}))
	if err != nil {
		t.Fatal(err)
	}
	if modified {
		t.Fatal("file without keys reported as modified")
	}
	after, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Fatal("unchanged file was rewritten")
	}
}

func TestFileKeepsGBKEncoding(t *testing.T) {
	// "你好" in GBK; after substitution the file must stay GBK-encodable.
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte{0xC4, 0xE3, 0xBA, 0xC3}, 0644); err != nil {
		t.Fatal(err)
	}
	modified, _, err := File(path, Pairs(store.Store{"你好": "hello"}))
	if err != nil {
		t.Fatal(err)
	}
	if !modified {
		t.Fatal("expected modification")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello" {
		t.Fatalf("content = % X", data)
	}
}

func TestTreeSummary(t *testing.T) {
	root := t.TempDir()
	write := func(rel, content string) string {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		return path
	}
	write("a.py", `print("你好")`)
	write("sub/b.js", "你好 你好")
	write("c.txt", "nothing chinese")
	// Invalid in every candidate encoding: lone continuation bytes, odd length.
	undecodable := filepath.Join(root, "bad.txt")
	if err := os.WriteFile(undecodable, []byte{0xFF, 0x80, 0x81}, 0644); err != nil {
		t.Fatal(err)
	}

	sum := Tree(root, Pairs(store.Store{"你好": "hello"}), textfile.WalkOptions{})

	if sum.FilesScanned != 4 {
		t.Fatalf("scanned = %d, want 4", sum.FilesScanned)
	}
	if sum.FilesModified != 2 {
		t.Fatalf("modified = %d, want 2", sum.FilesModified)
	}
	if sum.Replacements != 3 {
		t.Fatalf("replacements = %d, want 3", sum.Replacements)
	}
	if len(sum.Skipped) != 1 || sum.Skipped[0] != undecodable {
		t.Fatalf("skipped = %v", sum.Skipped)
	}
}

func TestBackupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.py")
	if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}
	backup, err := BackupFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if backup != path+".backup" {
		t.Fatalf("backup path = %s", backup)
	}
	data, err := os.ReadFile(backup)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "content" {
		t.Fatalf("backup content = %q", data)
	}
}

func TestBackupTree(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "proj")
	for rel, content := range map[string]string{
		"a.py":           "x",
		"sub/b.js":       "y",
		".git/HEAD":      "ref",
		"node_modules/m": "dep",
	} {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	backup, err := BackupTree(dir)
	if err != nil {
		t.Fatal(err)
	}
	if backup != dir+BackupSuffix {
		t.Fatalf("backup path = %s", backup)
	}

	if _, err := os.Stat(filepath.Join(backup, "sub/b.js")); err != nil {
		t.Fatalf("nested file missing from backup: %v", err)
	}
	if _, err := os.Stat(filepath.Join(backup, ".git")); !os.IsNotExist(err) {
		t.Fatal(".git must not be backed up")
	}
	if _, err := os.Stat(filepath.Join(backup, "node_modules")); !os.IsNotExist(err) {
		t.Fatal("node_modules must not be backed up")
	}

	// A second call must not overwrite the existing backup.
	if err := os.WriteFile(filepath.Join(dir, "a.py"), []byte("changed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := BackupTree(dir); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(backup, "a.py"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "x" {
		t.Fatalf("existing backup overwritten: %q", data)
	}
}
