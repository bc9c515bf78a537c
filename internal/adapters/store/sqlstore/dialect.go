package sqlstore

import (
	"fmt"
	"strconv"
	"strings"
)

type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

func ParseDialect(raw string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sqlite", "sqlite3":
		return DialectSQLite, nil
	case "postgres", "postgresql", "pg":
		return DialectPostgres, nil
	default:
		return "", fmt.Errorf("unsupported store driver %q", raw)
	}
}

// driverName is the database/sql driver registered for the dialect.
func (d Dialect) driverName() string {
	return string(d)
}

func (d Dialect) schema() []string {
	blob, integer := "BLOB", "INTEGER"
	if d == DialectPostgres {
		blob, integer = "BYTEA", "BIGINT"
	}

	var stmts []string
	for _, table := range []string{modelsTable, historiesTable} {
		stmts = append(stmts,
			fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (session_id TEXT PRIMARY KEY, payload %s NOT NULL, expires_at %s NOT NULL)", table, blob, integer),
			fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s_expires_at ON %s (expires_at)", table, table),
		)
	}
	return stmts
}

// rebind rewrites ? placeholders into the dialect's form.
func (d Dialect) rebind(query string) string {
	if d != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// lockClause is appended to reads made inside a write transaction.
func (d Dialect) lockClause() string {
	if d == DialectPostgres {
		return " FOR UPDATE"
	}
	return ""
}
