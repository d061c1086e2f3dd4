// Package server exposes the patch database over HTTP. The single
// endpoint, GET /api/patches, mirrors the query dimensions of the
// search engine through URL parameters.
package server
