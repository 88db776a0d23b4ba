package repository

import "context"

// SchemaRepository creates the fixed table set.
type SchemaRepository interface {
	// EnsureSchema creates each table only if it does not already exist.
	EnsureSchema(ctx context.Context) error
}
