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


package pipeline

import "errors"

var (
	// ErrNoDocuments indicates the source produced no documents for
	// the requested date.
	ErrNoDocuments = errors.New("no documents for date")

	// ErrSourceRequired indicates the pipeline was built without a
	// document source.
	ErrSourceRequired = errors.New("document source is required")

	// ErrClassifierRequired indicates the pipeline was built without a
	// classifier.
	ErrClassifierRequired = errors.New("classifier is required")

	// ErrStoreRequired indicates the pipeline was built without a
	// patch store.
	ErrStoreRequired = errors.New("patch store is required")

	// ErrKeyPoolRequired indicates the pipeline was built without a
	// credential pool.
	ErrKeyPoolRequired = errors.New("key pool is required")
)
