// Package integrity compares a library directory with the catalog without changing either.
//
// # Checks Provided
//
//   - Counts: files per extension on disk against catalog records under the same root.
//   - Plan: the inserts and deletes a scan of the root would perform right now.
//   - Schema: the books table carries every column the catalog model uses.
//
// # HTTP Endpoints
//
//   - GET /integrity?dirPath=... : Runs all checks for a directory.
//   - GET /integrity/schema : Runs the schema check.
package integrity
