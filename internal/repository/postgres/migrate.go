package postgres

import "strings"

// MigrateURL rewrites a postgres:// DSN for the golang-migrate pgx/v5 driver.
func MigrateURL(dsn string) string {
	for _, scheme := range []string{"postgresql://", "postgres://"} {
		if strings.HasPrefix(dsn, scheme) {
			return "pgx5://" + strings.TrimPrefix(dsn, scheme)
		}
	}
	return dsn
}
