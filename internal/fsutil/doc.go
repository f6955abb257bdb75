// Package fsutil holds the filesystem operations the splitter is built from:
// preparing an empty output directory, listing class and image entries, and
// copying a file into a directory. Everything works on a go-billy
// filesystem so the same code runs against the OS (osfs) and in memory
// (memfs).
//
// Errors are annotated with the offending path and never retried.
package fsutil
