package fileutils

import (
	"io"
	"os"
	"path/filepath"
)

// CopyTree recursively copies the directory tree rooted at src into dst,
// creating dst and any nested directories as needed. Files are copied as
// opaque bytes.
func CopyTree(src, dst string) error {
	abs, err := filepath.Abs(src)
	if err != nil {
		return err
	}

	return filepath.WalkDir(abs, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return err
		}

		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
