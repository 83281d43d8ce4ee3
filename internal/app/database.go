package app

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const maxTracedQueryLength = 512

// dsnInfo is the parsed view of DB_URL that the pool and the spans need.
type dsnInfo struct {
	DSN    string
	DBName string
	Host   string
}

// parseDSN accepts URL and key/value DSNs. URL DSNs get application_name unless
// the operator already set one.
func parseDSN(raw, applicationName string) dsnInfo {
	raw = strings.TrimSpace(raw)
	info := dsnInfo{DSN: raw}

	if parsed, err := url.Parse(raw); err == nil && parsed.Scheme != "" {
		info.DBName = strings.TrimPrefix(parsed.Path, "/")
		info.Host = parsed.Hostname()

		query := parsed.Query()
		if applicationName = strings.TrimSpace(applicationName); applicationName != "" && query.Get("application_name") == "" {
			query.Set("application_name", applicationName)
			parsed.RawQuery = query.Encode()
			info.DSN = parsed.String()
		}
		return info
	}

	for _, token := range strings.Fields(raw) {
		key, value, ok := strings.Cut(token, "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"'`)
		switch key {
		case "dbname":
			info.DBName = value
		case "host":
			info.Host = value
		}
	}
	return info
}

// traceQuery collapses whitespace and caps the statement recorded on spans.
func traceQuery(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	cut := maxTracedQueryLength
	for cut > 0 && !utf8.RuneStart(normalized[cut]) {
		cut--
	}
	return normalized[:cut] + "..."
}

func (a *App) openDB(ctx context.Context) (*sqlx.DB, error) {
	info := parseDSN(a.cfg.DBURL, a.cfg.ServiceName)
	db, err := otelsqlx.Open("postgres", info.DSN,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL, semconv.ServerAddress(info.Host)),
		otelsql.WithDBName(info.DBName),
		otelsql.WithQueryFormatter(traceQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(dbMaxOpenConns)
	db.SetMaxIdleConns(dbMaxIdleConns)
	db.SetConnMaxLifetime(dbConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, dependencyTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres %s/%s: %w", info.Host, info.DBName, err)
	}

	a.closers = append(a.closers, db.Close)
	a.logger.Info("postgres connected", "host", info.Host, "db", info.DBName)
	return db, nil
}
