// Package sqlite implements the patch store on an embedded SQLite
// database via the pure-Go modernc.org/sqlite driver.
package sqlite
