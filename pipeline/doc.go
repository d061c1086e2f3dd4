// Package pipeline orchestrates one date's classification run:
// idempotency check, document loading, chunked classification with
// rotating credentials, validation, and transactional persistence of
// the impactful outcomes.
package pipeline
