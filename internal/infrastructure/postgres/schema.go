package postgres

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
)

// Schema es el DDL de las tablas companies, industries, companies_industries e invoices.
// Es idempotente (IF NOT EXISTS).
//
//go:embed schema.sql
var Schema string

// ApplySchema ejecuta Schema sentencia por sentencia.
func ApplySchema(ctx context.Context, q Querier) error {
	for _, stmt := range strings.Split(Schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
