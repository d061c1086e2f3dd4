// Copyright 2025 The Patch-BOE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package classify

import (
	"errors"
	"strings"
)

var (
	// ErrNoCredentials indicates the key pool was built without any API keys.
	ErrNoCredentials = errors.New("no API credentials configured")

	// ErrEmptyResponse indicates the endpoint returned no text.
	ErrEmptyResponse = errors.New("model returned no content")

	// ErrMalformedReply indicates the reply held no parseable results payload.
	ErrMalformedReply = errors.New("malformed classifier reply")

	// ErrKeyPoolExhausted indicates every credential hit the rate limit.
	ErrKeyPoolExhausted = errors.New("all API credentials exhausted")

	// ErrPromptTooLarge indicates a chunk prompt exceeds the token ceiling
	// even after reduction. The chunk is skipped.
	ErrPromptTooLarge = errors.New("prompt exceeds the token ceiling")
)

// IsRateLimit reports whether err looks like the endpoint's throttling
// signal. The endpoint surfaces it only through the message, so this
// matches the "429" status and "rate limit" wording.
func IsRateLimit(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "rate limit") || strings.Contains(msg, "429")
}
