package gemini

import "time"

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// DefaultFlashConfig is the fast/cheap model used for per-error analysis.
func DefaultFlashConfig(apiKey string) Config {
	return Config{
		APIKey:  apiKey,
		Model:   "gemini-1.5-flash",
		BaseURL: defaultBaseURL,
		Timeout: 45 * time.Second,
	}
}

// DefaultProConfig is the higher-capability model used for project-wide
// analysis.
func DefaultProConfig(apiKey string) Config {
	return Config{
		APIKey:  apiKey,
		Model:   "gemini-1.5-pro",
		BaseURL: defaultBaseURL,
		Timeout: 60 * time.Second,
	}
}
