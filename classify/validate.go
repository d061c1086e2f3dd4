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
	"fmt"
	"log/slog"
	"strings"

	"github.com/guillermop2002/Patch-Boe/core"
)

// Validator converts raw classifier items into validated outcomes.
type Validator struct {
	// RequireCategory controls whether an unknown category rejects the
	// item. When false the category is cleared instead.
	RequireCategory bool

	logger *slog.Logger
}

// NewValidator creates a Validator.
func NewValidator(requireCategory bool) *Validator {
	return &Validator{
		RequireCategory: requireCategory,
		logger:          slog.Default().With("component", "classify-validator"),
	}
}

// Validate checks every item and returns the outcomes that pass along
// with the count of rejected items. A rejected item never aborts the
// batch; it is logged and dropped.
func (v *Validator) Validate(items []RawItem) ([]core.Outcome, int) {
	outcomes := make([]core.Outcome, 0, len(items))
	rejected := 0
	for _, item := range items {
		outcome, err := v.validateOne(item)
		if err != nil {
			v.logger.Warn("dropping invalid result", "id", item.ID, "err", err)
			rejected++
			continue
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, rejected
}

func (v *Validator) validateOne(item RawItem) (core.Outcome, error) {
	impact, err := core.ParseImpactType(item.Type)
	if err != nil {
		return core.Outcome{}, err
	}

	category := strings.TrimSpace(item.Category)
	if !core.ValidCategory(category) {
		if v.RequireCategory {
			return core.Outcome{}, fmt.Errorf("%w: %q", core.ErrInvalidCategory, item.Category)
		}
		category = ""
	}

	relevance, err := item.Relevance.Int64()
	if err != nil {
		return core.Outcome{}, fmt.Errorf("%w: relevance %q is not an integer", core.ErrInvalidOutcome, item.Relevance.String())
	}

	outcome := core.Outcome{
		ID:        strings.TrimSpace(item.ID),
		Type:      impact,
		Category:  category,
		Summary:   strings.TrimSpace(item.Summary),
		Relevance: int(relevance),
	}
	if err := core.ValidateOutcome(&outcome); err != nil {
		return core.Outcome{}, err
	}
	return outcome, nil
}
