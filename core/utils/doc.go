// Package utils converts loosely typed values decoded from dataset JSON, where a title such
// as 1984 may arrive as a number and a rating as a string.
package utils
