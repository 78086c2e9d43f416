package persistence

import (
	"os"
	"path/filepath"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/save"
)

// WriteFile encodes doc and atomically replaces path with the result.
// The document is written to a temporary file in the same directory and
// renamed into place, so readers never observe a partial catalog.
func WriteFile(path string, format save.Format, doc Document) error {
	format = format.Resolve(path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.NewIOError("create directory", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.NewIOError("create", path, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if err := Encode(tmp, format, doc); err != nil {
		_ = tmp.Close()
		if errors.IsValidationError(err) {
			return err
		}
		return errors.NewIOError("write", path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.NewIOError("sync", path, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.NewIOError("close", path, err)
	}
	if err := os.Chmod(tmpName, constants.FilePermissions); err != nil {
		return errors.NewIOError("chmod", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.NewIOError("rename", path, err)
	}
	committed = true
	return nil
}

// ReadFile decodes the catalog document stored at path.
// A missing or unreadable file is an *errors.IOError; undecodable content
// is an *errors.CorruptDataError.
func ReadFile(path string, format save.Format) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, errors.NewIOError("open", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only

	return Decode(f, format.Resolve(path), path)
}

// Exists reports whether a regular file exists at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
