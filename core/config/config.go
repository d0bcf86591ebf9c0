package config

import (
	"reflect"
	"strings"

	"ebook-library/core/database"
	"ebook-library/core/library"
	"ebook-library/core/logger"
	"ebook-library/core/scanner"
	"ebook-library/core/server"
	"ebook-library/core/storage"
	"ebook-library/feature/genre"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Database holds configuration for the catalog database.
	Database database.Config `mapstructure:"database"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Storage holds configuration for the dataset bucket.
	Storage storage.Config `mapstructure:"storage"`
	// Scanner holds the directory walk limits.
	Scanner scanner.Config `mapstructure:"scanner"`
	// Library describes roots, rescans and path mapping.
	Library library.Config `mapstructure:"library"`
	// Classifier holds the genre classification settings.
	Classifier genre.Config `mapstructure:"classifier"`
}

// LoadConfig loads configuration from environment variables and the .env file in path.
func LoadConfig(path string) (*Config, error) {
	// 1. Overlay the .env file, when present, onto the process environment
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	// 2. Register every key with its tag default
	v := viper.New()
	bindValues(v, Config{}, "")

	// 3. Map environment variables to nested keys (e.g. LIBRARY_UNKNOWN_AUTHOR -> library.unknown_author)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Decode into the typed sections
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the struct and registers every 'mapstructure' key with its 'default' tag.
// Slice defaults are comma separated and split during Unmarshal.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// Accept pointers to structs as well
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		// Untagged fields are not configuration
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// Nested section: recurse with the dotted prefix
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
