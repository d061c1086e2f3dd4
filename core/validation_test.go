package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOutcome() *Outcome {
	return &Outcome{
		ID:        "BOE-A-2025-1",
		Type:      ImpactPositive,
		Category:  "SubvencionesAyudas",
		Summary:   "Nuevas ayudas para autónomos",
		Relevance: 45,
	}
}

func TestValidateOutcome_Valid(t *testing.T) {
	require.NoError(t, ValidateOutcome(validOutcome()))
}

func TestValidateOutcome_Nil(t *testing.T) {
	err := ValidateOutcome(nil)
	assert.ErrorIs(t, err, ErrInvalidOutcome)
}

func TestValidateOutcome_BadType(t *testing.T) {
	outcome := validOutcome()
	outcome.Type = ImpactType("mega-buff")
	err := ValidateOutcome(outcome)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidImpactType)
}

func TestValidateOutcome_BadCategory(t *testing.T) {
	outcome := validOutcome()
	outcome.Category = "Inventada"
	err := ValidateOutcome(outcome)
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestValidateOutcome_EmptyCategoryAllowed(t *testing.T) {
	outcome := validOutcome()
	outcome.Category = ""
	assert.NoError(t, ValidateOutcome(outcome))
}

func TestValidateOutcome_EmptySummary(t *testing.T) {
	outcome := validOutcome()
	outcome.Summary = ""
	err := ValidateOutcome(outcome)
	assert.ErrorIs(t, err, ErrEmptySummary)
}

func TestValidateOutcome_RelevanceBounds(t *testing.T) {
	outcome := validOutcome()

	outcome.Relevance = 0
	assert.ErrorIs(t, ValidateOutcome(outcome), ErrRelevanceOutOfRange)

	outcome.Relevance = 101
	assert.ErrorIs(t, ValidateOutcome(outcome), ErrRelevanceOutOfRange)

	outcome.Relevance = 1
	assert.NoError(t, ValidateOutcome(outcome))

	outcome.Relevance = 100
	assert.NoError(t, ValidateOutcome(outcome))
}

func TestValidatePatchRecord_Valid(t *testing.T) {
	record := &PatchRecord{
		ID:        "BOE-A-2025-1",
		Date:      "20250101",
		Title:     "Real Decreto 1/2025",
		Type:      ImpactNegative,
		Category:  "FiscalidadPresupuestos",
		Subtype:   "A",
		Summary:   "Sube el tipo impositivo",
		Relevance: 70,
		Content:   "Texto completo",
	}
	require.NoError(t, ValidatePatchRecord(record))
}

func TestValidatePatchRecord_RejectsNeutral(t *testing.T) {
	record := &PatchRecord{
		ID:        "BOE-A-2025-1",
		Date:      "20250101",
		Title:     "Corrección de errores",
		Type:      ImpactNeutral,
		Summary:   "Errata menor",
		Relevance: 3,
	}
	err := ValidatePatchRecord(record)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotImpactful)
}

func TestValidatePatchRecord_RejectsBadDate(t *testing.T) {
	record := &PatchRecord{
		ID:        "BOE-A-2025-1",
		Date:      "2025-01-01",
		Title:     "Real Decreto 1/2025",
		Type:      ImpactPositive,
		Summary:   "x",
		Relevance: 10,
	}
	assert.ErrorIs(t, ValidatePatchRecord(record), ErrInvalidDate)
}
