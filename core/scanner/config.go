package scanner

// Config holds the scanner limits and filters.
type Config struct {
	// MaxFiles caps the number of files a single scan returns.
	MaxFiles int `mapstructure:"max_files" default:"10000"`
	// Extensions is the allow-list of lowercase extensions without the leading dot.
	Extensions []string `mapstructure:"extensions" default:"pdf,epub,mobi,azw3,docx,txt,cbr,cbz"`
	// ExcludedDirs are directory names never descended into.
	ExcludedDirs []string `mapstructure:"excluded_dirs" default:"node_modules,$RECYCLE.BIN,System Volume Information"`
}

const DefaultMaxFiles = 10000

var (
	DefaultExtensions   = []string{"pdf", "epub", "mobi", "azw3", "docx", "txt", "cbr", "cbz"}
	DefaultExcludedDirs = []string{"node_modules", "$RECYCLE.BIN", "System Volume Information"}
)

// withDefaults fills zero values.
func (c Config) withDefaults() Config {
	if c.MaxFiles <= 0 {
		c.MaxFiles = DefaultMaxFiles
	}
	if len(c.Extensions) == 0 {
		c.Extensions = DefaultExtensions
	}
	if c.ExcludedDirs == nil {
		c.ExcludedDirs = DefaultExcludedDirs
	}
	return c
}
