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


package rawstore

import "log/slog"

// NewMemoryArchive creates an in-memory archive for testing.
// Caller must close it when done.
func NewMemoryArchive() (*Archive, error) {
	b, err := openBackend("", true)
	if err != nil {
		return nil, err
	}
	return &Archive{
		backend: b,
		logger:  slog.Default().With("component", "rawstore"),
	}, nil
}
