package library

import "strings"

// Config describes the user's library and its maintenance schedule.
type Config struct {
	// Roots are the directories rescanned on schedule.
	Roots []string `mapstructure:"roots" default:""`
	// RescanCron is a cron expression for scheduled rescans. Empty disables them.
	RescanCron string `mapstructure:"rescan_cron" default:""`
	// UnknownAuthor is stored when a file name carries no author.
	UnknownAuthor string `mapstructure:"unknown_author" default:"Bilinmiyor"`
	// DatasetPath is the JSON dataset imported into an empty catalog at startup.
	DatasetPath string `mapstructure:"dataset_path" default:"ebooks_dataset.json"`
	// ImportOnEmpty enables the startup import.
	ImportOnEmpty bool `mapstructure:"import_on_empty" default:"true"`
	// PathMapFrom and PathMapTo rewrite a stored path prefix before touching the local disk,
	// e.g. a catalog built on Windows ("E:\") opened on macOS ("/Volumes/Books/").
	PathMapFrom string `mapstructure:"path_map_from" default:""`
	PathMapTo   string `mapstructure:"path_map_to" default:""`
}

// MapPath applies the configured prefix mapping to p. When the source prefix is a
// Windows path, the remaining backslashes become forward slashes.
func (c Config) MapPath(p string) string {
	if c.PathMapFrom == "" {
		return p
	}
	if len(p) < len(c.PathMapFrom) || !strings.EqualFold(p[:len(c.PathMapFrom)], c.PathMapFrom) {
		return p
	}

	rest := p[len(c.PathMapFrom):]
	if strings.Contains(c.PathMapFrom, `\`) {
		rest = strings.ReplaceAll(rest, `\`, "/")
	}
	return c.PathMapTo + rest
}
