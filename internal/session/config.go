package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Kind selects the Store implementation.
type Kind string

const (
	KindMemory Kind = "memory"
	KindFile   Kind = "file"
	KindRedis  Kind = "redis"
)

// Config binds SESSION_STORE, SESSION_DIR, SESSION_PROFILE and SESSION_TTL.
type Config struct {
	Store   string `default:"file"`
	Dir     string
	Profile string `default:"default"`
	TTL     string `default:"720h"`
}

func (c Config) Kind() (Kind, error) {
	switch k := Kind(strings.ToLower(c.Store)); k {
	case KindMemory, KindFile, KindRedis:
		return k, nil
	case "":
		return KindFile, nil
	default:
		return "", fmt.Errorf("unknown session store %q", c.Store)
	}
}

// Home resolves the directory holding file based state, ~/.trendify by default.
func (c Config) Home() (string, error) {
	if c.Dir != "" {
		return c.Dir, nil
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".trendify"), nil
}

func (c Config) ParsedTTL() (time.Duration, error) {
	if c.TTL == "" {
		return 0, nil
	}
	ttl, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 0, fmt.Errorf("invalid SESSION_TTL %q: %w", c.TTL, err)
	}
	return ttl, nil
}
