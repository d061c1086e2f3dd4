// Package classify turns raw gazette documents into impact outcomes
// through an external LLM endpoint.
//
// The pipeline it supports is: documents are grouped into contiguous
// chunks by a Batcher, each chunk is rendered into a single Spanish
// classification prompt under a token budget, the prompt is sent by a
// Client with one credential from a rotating KeyPool, and the reply is
// parsed and checked by a Validator before anything reaches storage.
//
// Rate-limit failures rotate through the whole pool exactly once per
// request via WithRotatingKeys; any other error aborts the request
// immediately.
package classify
