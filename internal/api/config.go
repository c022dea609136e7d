package api

import "time"

// Config binds the API endpoint settings from the environment
// (API_BASE_URL, API_TIMEOUT, API_LANG, API_DEBUG).
type Config struct {
	BaseURL string `split_words:"true" default:"http://localhost:8080/api"`
	Timeout int    `default:"15"`
	Lang    string `default:"en"`
	Debug   bool   `default:"false"` // dump request/response pairs through the logger
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return 0
	}
	return time.Duration(c.Timeout) * time.Second
}
