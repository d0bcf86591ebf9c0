// Package config loads application settings.
//
// Values come from environment variables, optionally seeded from a .env file, with defaults
// taken from the `default` struct tags of each section. Keys are upper-cased and joined with
// an underscore: server.port is SERVER_PORT, library.roots is LIBRARY_ROOTS. List values are
// comma separated.
//
// # Configuration Structure
//
//   - Server: port, API key, static client directory, CORS origins
//   - Database: sqlite or mysql connection
//   - Log: level and format
//   - Storage: MinIO/S3 bucket for dataset files
//   - Scanner: file cap, extensions, excluded directory names
//   - Library: rescan roots and schedule, unknown author label, dataset path, path mapping
//   - Classifier: genre classification batching, retries and remote API
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
