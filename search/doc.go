// Package search shapes raw, user-supplied query parameters into
// validated store criteria and exposes the read-side operations of the
// patch database.
package search
