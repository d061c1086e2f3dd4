// Package rawstore archives raw gazette documents in BadgerDB, keyed
// by publication date. It keeps the unprocessed scraper output around
// so a day can be reclassified without re-downloading, and skips
// rewrites when a document's content checksum has not changed.
package rawstore
