// Package scan exposes catalog reconciliation over HTTP and on a schedule.
//
// Scans are synchronous. The Service holds a mutex so only one scan writes at a time,
// and identical concurrent requests (same root, same dry-run flag) are collapsed into a
// single run whose result every caller receives.
//
// Endpoints:
//   - POST /scan: {dirPath, dryRun} -> {message, addedCount, removedCount, totalFound, truncated}
package scan
