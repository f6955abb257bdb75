// Package pipeline implements the splitter: class discovery, output tree
// preparation, per-class planning, file copy, progress reporting, and run
// statistics.
//
// Run is strictly sequential. Classes are processed in the order the
// filesystem lists them, and files within a class likewise, which together
// with a fixed seed makes the split reproducible. The first error aborts the
// run; partially written output is left in place and rebuilt from scratch by
// the next run.
package pipeline
