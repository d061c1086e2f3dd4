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

import "fmt"

// ValidateOutcome validates a classification Outcome according to
// domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - Type must be one of buff/nerf/update
//   - Category, when set, must belong to the fixed taxonomy
//   - Summary must not be empty
//   - Relevance must be within [1,100]
func ValidateOutcome(outcome *Outcome) error {
	if outcome == nil {
		return fmt.Errorf("%w: outcome is nil", ErrInvalidOutcome)
	}

	if outcome.ID == "" {
		return fmt.Errorf("%w: document id is empty", ErrInvalidOutcome)
	}

	switch outcome.Type {
	case ImpactPositive, ImpactNegative, ImpactNeutral:
	default:
		return fmt.Errorf("%w: %w: %q", ErrInvalidOutcome, ErrInvalidImpactType, outcome.Type)
	}

	if outcome.Category != "" && !ValidCategory(outcome.Category) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidOutcome, ErrInvalidCategory, outcome.Category)
	}

	if outcome.Summary == "" {
		return fmt.Errorf("%w: %w", ErrInvalidOutcome, ErrEmptySummary)
	}

	if outcome.Relevance < 1 || outcome.Relevance > 100 {
		return fmt.Errorf("%w: %w: got %d", ErrInvalidOutcome, ErrRelevanceOutOfRange, outcome.Relevance)
	}

	return nil
}

// ValidatePatchRecord validates a PatchRecord before persistence.
//
// Validation rules:
//   - ID and Title must not be empty
//   - Date must be a real YYYYMMDD date
//   - Type must be impactful (neutral records are never persisted)
//   - Summary and Relevance follow the Outcome rules
func ValidatePatchRecord(record *PatchRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidPatchRecord)
	}

	if record.ID == "" {
		return fmt.Errorf("%w: document id is empty", ErrInvalidPatchRecord)
	}

	if !ValidDate(record.Date) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidPatchRecord, ErrInvalidDate, record.Date)
	}

	if record.Title == "" {
		return fmt.Errorf("%w: title is empty", ErrInvalidPatchRecord)
	}

	if !record.Type.Impactful() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidPatchRecord, ErrNotImpactful, record.Type)
	}

	if record.Category != "" && !ValidCategory(record.Category) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidPatchRecord, ErrInvalidCategory, record.Category)
	}

	if record.Summary == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPatchRecord, ErrEmptySummary)
	}

	if record.Relevance < 1 || record.Relevance > 100 {
		return fmt.Errorf("%w: %w: got %d", ErrInvalidPatchRecord, ErrRelevanceOutOfRange, record.Relevance)
	}

	return nil
}
