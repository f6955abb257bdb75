package fsutil

import (
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/juju/errors"
)

// DirPerm is the mode for every directory the splitter creates.
const DirPerm os.FileMode = 0o755

// PrepareDir ensures path exists as an empty directory. Whatever is already
// at path (a directory with contents or a plain file) is removed first.
func PrepareDir(fs billy.Filesystem, path string) error {
	exists, err := Exists(fs, path)
	if err != nil {
		return err
	}
	if exists {
		if err := util.RemoveAll(fs, path); err != nil {
			return errors.Annotatef(err, "remove %s", path)
		}
	}
	if err := fs.MkdirAll(path, DirPerm); err != nil {
		return errors.Annotatef(err, "create %s", path)
	}
	return nil
}

// Exists reports whether anything is present at path, without following a
// final symlink.
func Exists(fs billy.Filesystem, path string) (bool, error) {
	_, err := fs.Lstat(path)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, errors.Annotatef(err, "stat %s", path)
	}
}

// IsDir reports whether path exists and is a directory.
func IsDir(fs billy.Filesystem, path string) (bool, error) {
	fi, err := fs.Stat(path)
	switch {
	case err == nil:
		return fi.IsDir(), nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, errors.Annotatef(err, "stat %s", path)
	}
}

// ReadDir returns the entries of path in the order the filesystem lists them.
func ReadDir(fs billy.Filesystem, path string) ([]os.FileInfo, error) {
	entries, err := fs.ReadDir(path)
	if err != nil {
		return nil, errors.Annotatef(err, "list %s", path)
	}
	return entries, nil
}

// EntryIsDir reports whether fi, an entry listed in dir, is a directory.
// Listings carry Lstat information, so a symlink is resolved to its target;
// a dangling symlink is not a directory.
func EntryIsDir(fs billy.Filesystem, dir string, fi os.FileInfo) (bool, error) {
	if fi.Mode()&os.ModeSymlink == 0 {
		return fi.IsDir(), nil
	}
	return IsDir(fs, fs.Join(dir, fi.Name()))
}

// SubdirNames returns the names of the immediate subdirectories of path,
// including symlinks to directories, in listing order. Other entries are
// ignored.
func SubdirNames(fs billy.Filesystem, path string) ([]string, error) {
	entries, err := ReadDir(fs, path)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, fi := range entries {
		isDir, err := EntryIsDir(fs, path, fi)
		if err != nil {
			return nil, err
		}
		if isDir {
			names = append(names, fi.Name())
		}
	}
	return names, nil
}
