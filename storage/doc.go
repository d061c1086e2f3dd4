// Package storage defines the persistence contract for classified
// patch records. The SQLite implementation lives in storage/sqlite.
package storage
