package fsutil

import (
	"io"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/juju/errors"
)

// CopyFile copies the file at src into dstDir under the same base name and
// returns the number of bytes written. Content and permission bits are
// copied; the source is left untouched and an existing destination is
// truncated.
func CopyFile(fs billy.Filesystem, src, dstDir string) (int64, error) {
	fi, err := fs.Stat(src)
	if err != nil {
		return 0, errors.Annotatef(err, "stat %s", src)
	}
	if !fi.Mode().IsRegular() {
		return 0, errors.NotSupportedf("copy of non-regular file %s", src)
	}

	in, err := fs.Open(src)
	if err != nil {
		return 0, errors.Annotatef(err, "open %s", src)
	}
	defer in.Close()

	dst := fs.Join(dstDir, fi.Name())
	perm := fi.Mode().Perm()
	out, err := fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return 0, errors.Annotatef(err, "create %s", dst)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return n, errors.Annotatef(err, "copy %s to %s", src, dst)
	}
	if err := out.Close(); err != nil {
		return n, errors.Annotatef(err, "close %s", dst)
	}

	// OpenFile modes are subject to the umask; set the source bits explicitly.
	if ch, ok := fs.(billy.Change); ok {
		if err := ch.Chmod(dst, perm); err != nil {
			return n, errors.Annotatef(err, "chmod %s", dst)
		}
	}
	return n, nil
}
