package genre

import "time"

// Config holds the classification settings.
type Config struct {
	// BatchSize is the number of books sent in one remote request.
	BatchSize int `mapstructure:"batch_size" default:"20"`
	// DelayMs is the minimum spacing between remote requests.
	DelayMs int `mapstructure:"delay_ms" default:"800"`
	// MaxRetries is how many times a failed remote request is retried.
	MaxRetries int `mapstructure:"max_retries" default:"3"`
	// BackoffMs is the first retry delay; it doubles on every attempt.
	BackoffMs int `mapstructure:"backoff_ms" default:"1600"`
	// APIURL is an OpenAI compatible chat completions endpoint.
	APIURL string `mapstructure:"api_url" default:"https://api.openai.com/v1/chat/completions"`
	// APIKey enables the remote classifier. Empty means rules only.
	APIKey string `mapstructure:"api_key" default:""`
	// Model is the chat model name.
	Model string `mapstructure:"model" default:"gpt-3.5-turbo"`
	// MinConfidence is the keyword score a rule match needs.
	MinConfidence float64 `mapstructure:"min_confidence" default:"0.75"`
	// TimeoutSeconds bounds one remote request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// FallbackGenre is stored when the remote answer has no usable line for a book.
	FallbackGenre string `mapstructure:"fallback_genre" default:"Diğer"`
}

func (c Config) withDefaults() Config {
	if c.BatchSize <= 0 {
		c.BatchSize = 20
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.MinConfidence <= 0 {
		c.MinConfidence = 0.75
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	if c.FallbackGenre == "" {
		c.FallbackGenre = "Diğer"
	}
	if c.Model == "" {
		c.Model = "gpt-3.5-turbo"
	}
	return c
}

// Delay returns DelayMs as a duration.
func (c Config) Delay() time.Duration {
	return time.Duration(c.DelayMs) * time.Millisecond
}

// Backoff returns the wait before retry number attempt (starting at 0).
func (c Config) Backoff(attempt int) time.Duration {
	return time.Duration(c.BackoffMs) * time.Millisecond << attempt
}

// RemoteEnabled reports whether a remote classifier can be built.
func (c Config) RemoteEnabled() bool {
	return c.APIKey != "" && c.APIURL != ""
}
