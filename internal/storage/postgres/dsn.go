package postgres

import (
	"fmt"
	"net/url"

	"github.com/projhub/projhub-backend/config"
)

// DSN builds the connection string for the hosted store. The service key is
// injected as the password when the URL does not already carry one, which is
// how Supabase connection URLs are usually handed out.
func DSN(cfg *config.DatabaseConfig) (string, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return "", fmt.Errorf("parse store url: %w", err)
	}

	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("unsupported store url scheme %q", u.Scheme)
	}

	if u.User == nil {
		u.User = url.UserPassword("postgres", cfg.Key)
	} else if _, ok := u.User.Password(); !ok {
		u.User = url.UserPassword(u.User.Username(), cfg.Key)
	}

	return u.String(), nil
}
