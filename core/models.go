package core

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ImpactType classifies the real-world effect of a gazette document.
type ImpactType string

const (
	// ImpactPositive marks measures that benefit citizens or companies ("buff").
	ImpactPositive ImpactType = "buff"

	// ImpactNegative marks measures that restrict or harden conditions ("nerf").
	ImpactNegative ImpactType = "nerf"

	// ImpactNeutral marks technical or administrative changes with no
	// societal impact. Neutral outcomes are never persisted.
	ImpactNeutral ImpactType = "update"
)

// ParseImpactType maps a raw classifier label onto an ImpactType.
// Matching is case-insensitive and accepts both the patch-notes spelling
// (buff/nerf/actualización) and the positive/negative/neutral one.
func ParseImpactType(raw string) (ImpactType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "buff", "positive":
		return ImpactPositive, nil
	case "nerf", "negative":
		return ImpactNegative, nil
	case "update", "neutral", "actualización", "actualizacion":
		return ImpactNeutral, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidImpactType, raw)
}

// Impactful reports whether records of this type are persisted.
func (t ImpactType) Impactful() bool {
	return t == ImpactPositive || t == ImpactNegative
}

// RawDocument is one gazette document as produced by the acquisition
// stage for a single date. It is read-only input to the pipeline.
type RawDocument struct {
	ID      string
	Title   string
	Content string
}

// Outcome is the transient result of classifying a single document.
// It is produced per chunk, validated, and either discarded (neutral,
// invalid) or joined with its RawDocument into a PatchRecord.
type Outcome struct {
	ID        string
	Type      ImpactType
	Category  string
	Summary   string
	Relevance int // 1-100, breadth/severity of real-world impact
}

// PatchRecord is the persisted entity for an impactful document.
// (ID, Date) is unique; a later classification run for the same pair
// replaces the record wholesale.
type PatchRecord struct {
	ID        string
	Date      string // YYYYMMDD
	Title     string
	Type      ImpactType
	Category  string
	Subtype   string // gazette section letter, empty if unknown
	Summary   string
	Relevance int
	Content   string
	CreatedAt time.Time
}

// Stats aggregates the persisted records of one date.
type Stats struct {
	Buffs int
	Nerfs int
	Total int
}

// ContentChecksum returns a 64-bit BLAKE2b digest of a document's
// content. Identical content always produces identical checksums.
func ContentChecksum(text string) uint64 {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return binary.LittleEndian.Uint64(sum)
}
