package apply

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/han-tools/zhpatch/textfile"
)

// BackupSuffix is appended to a directory path to form its backup sibling.
const BackupSuffix = "__backup"

// BackupTree copies dir to a sibling path suffixed __backup, skipping
// version-control, dependency-cache, and virtualenv directories. If the
// backup path already exists a previous run made it; it is left untouched
// and the existing path is returned.
func BackupTree(dir string) (string, error) {
	clean := strings.TrimRight(dir, string(os.PathSeparator))
	backup := clean + BackupSuffix

	if _, err := os.Stat(backup); err == nil {
		return backup, nil
	}

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != dir && (textfile.SkipDirs[name] || strings.HasSuffix(name, BackupSuffix)) {
				return filepath.SkipDir
			}
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			info, err := d.Info()
			if err != nil {
				return err
			}
			return os.MkdirAll(filepath.Join(backup, rel), info.Mode().Perm())
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		return copyFile(path, filepath.Join(backup, rel))
	})
	if err != nil {
		return "", fmt.Errorf("backing up %s: %w", dir, err)
	}
	return backup, nil
}

// BackupFile copies a single file to <path>.backup.
func BackupFile(path string) (string, error) {
	backup := path + ".backup"
	if err := copyFile(path, backup); err != nil {
		return "", fmt.Errorf("backing up %s: %w", path, err)
	}
	return backup, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
