package database

import "context"

// Database is read-only access to the reporting database: enough for the
// agent to discover tables, inspect schemas, and run SELECT queries. DML
// never passes the guard, whatever the model asks for.
type Database interface {
	ListTables(ctx context.Context) ([]string, error)
	TableSchema(ctx context.Context, table string) (string, error)
	RunQuery(ctx context.Context, query string) (string, error)
	Close() error
}
