// Package checks holds the individual integrity checks: the books table schema against the
// catalog model, and per-extension file counts on disk against the catalog.
package checks
