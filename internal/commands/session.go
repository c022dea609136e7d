package commands

import (
	"context"
	"fmt"

	"github.com/trendify-core/client/internal/session"
	logx "github.com/trendify-core/client/pkg/logger"
)

// openSession builds the configured session store. The returned closer, if
// any, releases the backing connection.
func openSession(ctx context.Context, cfg AppConfig) (session.Store, func() error, error) {
	kind, err := cfg.Session.Kind()
	if err != nil {
		return nil, nil, err
	}

	switch kind {
	case session.KindMemory:
		return session.NewMemoryStore(), nil, nil

	case session.KindRedis:
		ttl, err := cfg.Session.ParsedTTL()
		if err != nil {
			return nil, nil, err
		}
		rdb, err := cfg.Redis.New(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		logx.Debug().Str("profile", cfg.Session.Profile).Dur("ttl", ttl).Msg("using redis session store")
		return session.NewRedisStore(rdb, cfg.Session.Profile, ttl), rdb.Close, nil

	default:
		dir, err := cfg.Session.Home()
		if err != nil {
			return nil, nil, err
		}
		fs := session.NewFileStore(dir, cfg.Session.Profile)
		logx.Debug().Str("path", fs.Path()).Msg("using file session store")
		return fs, nil, nil
	}
}
