// Package dataset moves the catalog in and out of flat files.
//
// Importer reads the JSON dataset (an array of book objects with camelCase keys) from
// disk or from the object storage bucket. Numeric fields may arrive as numbers or strings.
// Exporter writes the whole table as JSON or CSV to a file, an HTTP response or the bucket.
// Cleaner tidies titles and authors in place.
package dataset
