package storage

// Config holds configuration for the object storage used for dataset files.
type Config struct {
	// Enabled turns bucket-backed import and export on.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Endpoint is the host of the S3 compatible service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket holds dataset exports.
	Bucket string `mapstructure:"bucket" default:"library"`
	// Prefix is prepended to every object name.
	Prefix string `mapstructure:"prefix" default:"datasets/"`
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds connection setup and the wait for response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// ObjectName joins the configured prefix and name.
func (c Config) ObjectName(name string) string {
	return c.Prefix + name
}
