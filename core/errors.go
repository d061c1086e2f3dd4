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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidImpactType indicates a label outside the buff/nerf/update enum.
	ErrInvalidImpactType = errors.New("invalid impact type")

	// ErrInvalidCategory indicates a category outside the fixed taxonomy.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidOutcome indicates a classification Outcome failed validation.
	ErrInvalidOutcome = errors.New("invalid classification outcome")

	// ErrInvalidPatchRecord indicates a PatchRecord failed validation.
	ErrInvalidPatchRecord = errors.New("invalid patch record")

	// ErrEmptySummary indicates the Summary field is empty.
	ErrEmptySummary = errors.New("summary cannot be empty")

	// ErrRelevanceOutOfRange indicates a relevance score outside [1,100].
	ErrRelevanceOutOfRange = errors.New("relevance must be between 1 and 100")

	// ErrInvalidDate indicates a date string that is not a real YYYYMMDD date.
	ErrInvalidDate = errors.New("invalid date, expected YYYYMMDD")

	// ErrNotImpactful indicates an attempt to persist a neutral outcome.
	ErrNotImpactful = errors.New("only buff and nerf records are persisted")
)
