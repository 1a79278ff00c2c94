// Package fs provides file-based storage for localized fonts and
// generated stylesheets.
package fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileExists reports whether a regular file exists at path.
func FileExists(path string) (bool, error) {
	fi, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return fi.Mode().IsRegular(), nil
}

// WriteFileAtomic streams r into path. Data is written to a uniquely named
// temporary sibling first and renamed into place, so readers never observe
// a partially written file. Concurrent writers of the same path race
// benignly: the last rename wins. Parent directories are created as needed.
func WriteFileAtomic(path string, r io.Reader) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, err
	}

	tmp := path + "." + uuid.NewString() + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmp)
		return n, err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return n, err
	}
	return n, nil
}
