// Package storage wraps the MinIO client for the dataset files kept in an S3 compatible
// bucket.
//
// The Client interface only carries the calls the dataset importer and exporter make, which
// keeps core/storage/mocks small. EnsureBucket creates the target bucket on first export.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
//	    return err
//	}
package storage
