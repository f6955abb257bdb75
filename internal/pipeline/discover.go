package pipeline

import (
	"github.com/go-git/go-billy/v5"

	"github.com/backmassage/datasplit/internal/fsutil"
)

// DiscoverClasses returns the class labels under sourceDir: the names of its
// immediate subdirectories (symlinked ones included), in listing order.
// Plain files at the source root (licenses, readmes) are not classes.
func DiscoverClasses(fs billy.Filesystem, sourceDir string) ([]string, error) {
	return fsutil.SubdirNames(fs, sourceDir)
}

// ListImages returns the image file names in classDir, in listing order.
// Nested directories cannot be copied as plain files; their names are
// returned separately so the caller can report them.
func ListImages(fs billy.Filesystem, classDir string) (images, nested []string, err error) {
	entries, err := fsutil.ReadDir(fs, classDir)
	if err != nil {
		return nil, nil, err
	}
	for _, fi := range entries {
		isDir, err := fsutil.EntryIsDir(fs, classDir, fi)
		if err != nil {
			return nil, nil, err
		}
		if isDir {
			nested = append(nested, fi.Name())
		} else {
			images = append(images, fi.Name())
		}
	}
	return images, nested, nil
}
