// Package datastore writes favorites into a flat SQLite table that tools
// such as Datasette can browse directly.
package datastore

// Store defines the interface for table-oriented exports
type Store interface {
	// Connect establishes a connection to the data store
	Connect() error

	// CreateTable creates a new table with the given schema if it doesn't exist
	CreateTable(schema string) error

	// ReplaceAll deletes every row of table and inserts records in one transaction
	ReplaceAll(table string, records []map[string]any) error

	// Close closes the connection to the data store
	Close() error
}
