package xfs

import (
	"io/fs"
	"os"
	"path/filepath"
)

const (
	DefaultDirPerm  fs.FileMode = 0755 // drwxr-xr-x
	DefaultFilePerm fs.FileMode = 0644 // -rw-r--r--
)

// Exists returns whether the given file or directory exists
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// WriteFile writes data to filename atomically: data goes to a temporary
// file in the same directory, which is then renamed over filename. Readers
// see either the old or the new content, never a partial write.
//
// An existing file keeps its permission bits; a new one gets
// DefaultFilePerm. Missing parent directories are created.
func WriteFile(filename string, data []byte) (err error) {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, DefaultDirPerm); err != nil {
		return err
	}
	perm := DefaultFilePerm
	if info, err := os.Stat(filename); err == nil {
		perm = info.Mode().Perm()
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filename)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), perm); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filename)
}
