package core

import "strings"

// Categories is the fixed 20-value taxonomy describing the administrative
// nature of a BOE document. The classifier is instructed to pick exactly
// one of these tokens, so matching is exact.
var Categories = []string{
	"NormasYDisposiciones",
	"DisposicionesAdministrativas",
	"ActosIndividuales",
	"AnunciosEdictosNotificaciones",
	"ContratacionPublica",
	"ConvocatoriasEmpleoPublico",
	"SubvencionesAyudas",
	"FiscalidadPresupuestos",
	"RegistrosPropiedadMercantil",
	"Jurisprudencia",
	"NormativaInternacionalUE",
	"CorreccionesRectificaciones",
	"InformesEstadisticas",
	"TransparenciaFiscalizacion",
	"ConcursosYProcedimientos",
	"SectorialesTecnicos",
	"ComunicadosInstitucionales",
	"PublicidadLegal",
	"MedidasEmergencia",
	"Otros",
}

var categorySet = func() map[string]bool {
	set := make(map[string]bool, len(Categories))
	for _, c := range Categories {
		set[c] = true
	}
	return set
}()

// ValidCategory reports whether raw is one of the taxonomy tokens.
func ValidCategory(raw string) bool {
	return categorySet[raw]
}

// SectionFromID extracts the gazette section letter from a BOE document
// identifier ("BOE-A-2025-12345" yields "A"). Returns the empty string
// for identifiers that do not follow the BOE pattern.
func SectionFromID(id string) string {
	parts := strings.Split(id, "-")
	if len(parts) < 3 || parts[0] != "BOE" {
		return ""
	}
	section := parts[1]
	if len(section) != 1 || section[0] < 'A' || section[0] > 'Z' {
		return ""
	}
	return section
}
