// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which defines whether it is enabled and how
// its routes are mounted.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(router fiber.Router) error
//	}
//
// # Manager
//
// The Manager keeps features in registration order. LoadAll skips disabled features and
// mounts the rest, so modules like books, stats, scan and integrity are wired and tested in
// isolation.
package loader
