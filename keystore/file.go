package keystore

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Write stores the keystore document at name, creating it atomically so a
// crash never leaves a truncated keystore behind.
func (k *Keystore) Write(name string, perm fs.FileMode) error {
	data, err := k.Marshal()
	if err != nil {
		return err
	}
	dir := filepath.Dir(name)
	fd, err := os.CreateTemp(dir, ".keystore-*")
	if err != nil {
		return err
	}
	defer os.Remove(fd.Name())
	if _, err := fd.Write(data); err != nil {
		fd.Close()
		return err
	}
	// os.CreateTemp always creates the file with 0600
	if perm != 0600 {
		if err := fd.Chmod(perm); err != nil {
			fd.Close()
			return err
		}
	}
	if err := fd.Sync(); err != nil {
		fd.Close()
		return err
	}
	if err := fd.Close(); err != nil {
		return err
	}
	return os.Rename(fd.Name(), name)
}

// Read loads and parses a keystore document from a file.
func Read(name string) (*Keystore, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
