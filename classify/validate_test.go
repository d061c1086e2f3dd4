package classify

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guillermop2002/Patch-Boe/core"
)

func validItem() RawItem {
	return RawItem{
		ID:        "BOE-A-2025-12345",
		Type:      "buff",
		Category:  "NormasYDisposiciones",
		Summary:   "Sube las pensiones mínimas.",
		Relevance: json.Number("78"),
	}
}

func TestValidateAcceptsWellFormedItem(t *testing.T) {
	v := NewValidator(true)

	outcomes, rejected := v.Validate([]RawItem{validItem()})
	require.Len(t, outcomes, 1)
	assert.Zero(t, rejected)
	assert.Equal(t, core.ImpactPositive, outcomes[0].Type)
	assert.Equal(t, 78, outcomes[0].Relevance)
}

func TestValidateNormalizesTypeSpelling(t *testing.T) {
	v := NewValidator(true)

	item := validItem()
	item.Type = "ACTUALIZACIÓN"
	outcomes, rejected := v.Validate([]RawItem{item})
	require.Len(t, outcomes, 1)
	assert.Zero(t, rejected)
	assert.Equal(t, core.ImpactNeutral, outcomes[0].Type)
}

func TestValidateRejectsUnknownType(t *testing.T) {
	v := NewValidator(true)

	item := validItem()
	item.Type = "buf"
	outcomes, rejected := v.Validate([]RawItem{item})
	assert.Empty(t, outcomes)
	assert.Equal(t, 1, rejected)
}

func TestValidateUnknownCategoryRequired(t *testing.T) {
	v := NewValidator(true)

	item := validItem()
	item.Category = "CategoriaInventada"
	outcomes, rejected := v.Validate([]RawItem{item})
	assert.Empty(t, outcomes)
	assert.Equal(t, 1, rejected)
}

func TestValidateUnknownCategoryCleared(t *testing.T) {
	v := NewValidator(false)

	item := validItem()
	item.Category = "CategoriaInventada"
	outcomes, rejected := v.Validate([]RawItem{item})
	require.Len(t, outcomes, 1)
	assert.Zero(t, rejected)
	assert.Empty(t, outcomes[0].Category)
}

func TestValidateRejectsNonIntegerRelevance(t *testing.T) {
	v := NewValidator(true)

	item := validItem()
	item.Relevance = json.Number("78.5")
	outcomes, rejected := v.Validate([]RawItem{item})
	assert.Empty(t, outcomes)
	assert.Equal(t, 1, rejected)
}

func TestValidateRejectsOutOfRangeRelevance(t *testing.T) {
	v := NewValidator(true)

	low := validItem()
	low.Relevance = json.Number("0")
	high := validItem()
	high.Relevance = json.Number("101")

	outcomes, rejected := v.Validate([]RawItem{low, high})
	assert.Empty(t, outcomes)
	assert.Equal(t, 2, rejected)
}

func TestValidateKeepsGoodItemsAmongBad(t *testing.T) {
	v := NewValidator(true)

	bad := validItem()
	bad.Summary = "   "
	good := validItem()
	good.ID = "BOE-A-2025-99"

	outcomes, rejected := v.Validate([]RawItem{bad, good})
	require.Len(t, outcomes, 1)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, "BOE-A-2025-99", outcomes[0].ID)
}
