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

import "errors"

var (
	// ErrNotFound indicates the requested date has no archived documents.
	ErrNotFound = errors.New("not found in archive")

	// ErrNoDocuments indicates an import source produced zero documents.
	ErrNoDocuments = errors.New("no documents to archive")
)
