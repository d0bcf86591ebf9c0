// Package scanner finds e-book files below a directory.
//
// The walk uses an explicit stack of directory frames, so deep trees never grow the call
// stack, and visits entries depth-first in the order os.ReadDir returns them. Symbolic links
// are followed; each resolved directory is read once, which also breaks link cycles.
// Hidden entries and the configured excluded directory names are skipped.
//
// A scan stops as soon as one more supported file would exceed MaxFiles and reports that
// through Result.Truncated. Errors below the root are logged and skipped; only an invalid
// root or a cancelled context fail the scan.
package scanner
