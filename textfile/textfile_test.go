package textfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsTextFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"main.py", true},
		{"index.HTML", true},
		{"config.yaml", true},
		{"data.csv", true},
		{"binary.exe", false},
		{"archive.tar.gz", false},
		{".hidden.py", false},
		{"noext", false},
	}
	for _, c := range cases {
		if got := IsTextFile(c.path); got != c.want {
			t.Errorf("IsTextFile(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}

func TestReadUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("系统设置"), 0644); err != nil {
		t.Fatal(err)
	}
	content, enc, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if content != "系统设置" || enc.Name != "utf-8" {
		t.Fatalf("got %q via %s", content, enc.Name)
	}
}

func TestReadGBKAndWriteBack(t *testing.T) {
	// "你好" in GBK.
	gbk := []byte{0xC4, 0xE3, 0xBA, 0xC3}
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, gbk, 0644); err != nil {
		t.Fatal(err)
	}

	content, enc, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if content != "你好" {
		t.Fatalf("decoded %q, want 你好", content)
	}
	if enc.Name != "gbk" {
		t.Fatalf("encoding = %s, want gbk", enc.Name)
	}

	// Write back through the same encoding and confirm the bytes match.
	if err := Write(path, content, enc); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(gbk) {
		t.Fatalf("round trip produced % X, want % X", data, gbk)
	}
}

func TestReadUTF16(t *testing.T) {
	// BOM + "你好" in UTF-16LE.
	data := []byte{0xFF, 0xFE, 0x60, 0x4F, 0x7D, 0x59}
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	content, enc, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if content != "你好" || enc.Name != "utf-16" {
		t.Fatalf("got %q via %s", content, enc.Name)
	}
}

func TestWalkFiltersTree(t *testing.T) {
	root := t.TempDir()
	mk := func(rel, content string) {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	mk("src/app.py", "x")
	mk("src/app.pyc", "x")
	mk("src/.hidden.py", "x")
	mk(".git/config.py", "x")
	mk("node_modules/pkg/index.js", "x")
	mk("src__backup/app.py", "x")
	mk("translations.json", "{}")
	mk("data.json", "{}")

	files, err := List(root, WalkOptions{Exclude: map[string]bool{"translations.json": true}})
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]bool{
		filepath.Join(root, "src/app.py"): true,
		filepath.Join(root, "data.json"):  true,
	}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %d entries", files, len(want))
	}
	for _, f := range files {
		if !want[f] {
			t.Fatalf("unexpected file %s in %v", f, files)
		}
	}
}

func TestWalkExtraExtensionsAndExcludedDirs(t *testing.T) {
	root := t.TempDir()
	mk := func(rel string) {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	mk("page.svelte")
	mk(".hidden.svelte")
	mk("generated/out.py")
	mk("src/app.py")

	files, err := List(root, WalkOptions{
		Exclude:         map[string]bool{"generated": true},
		ExtraExtensions: []string{".svelte"},
	})
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]bool{
		filepath.Join(root, "page.svelte"): true,
		filepath.Join(root, "src/app.py"):  true,
	}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %d entries", files, len(want))
	}
	for _, f := range files {
		if !want[f] {
			t.Fatalf("unexpected file %s", f)
		}
	}
}

func TestReadPreservesEncodingForASCII(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.sh")
	if err := os.WriteFile(path, []byte("echo hi\n"), 0755); err != nil {
		t.Fatal(err)
	}
	_, enc, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if enc.Name != "utf-8" {
		t.Fatalf("ASCII should decode as utf-8, got %s", enc.Name)
	}
	// Write must keep the original file mode.
	if err := Write(path, "echo bye\n", enc); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0755 {
		t.Fatalf("mode = %v, want 0755", info.Mode().Perm())
	}
}
