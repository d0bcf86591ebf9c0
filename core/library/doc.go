// Package library holds the settings that describe a user's book collection: which roots
// are rescanned and when, how unnamed authors are stored, where the seed dataset lives, and
// how stored paths map onto the local filesystem.
package library
