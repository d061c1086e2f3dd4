package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/guillermop2002/Patch-Boe/core"
	"github.com/guillermop2002/Patch-Boe/search"
)

// patchDTO is the wire form of a patch record.
type patchDTO struct {
	ID        string `json:"id"`
	Date      string `json:"fecha"`
	Title     string `json:"titulo"`
	Type      string `json:"tipo"`
	Category  string `json:"categoria,omitempty"`
	Subtype   string `json:"subtipo,omitempty"`
	Summary   string `json:"summary"`
	Relevance int    `json:"relevance"`
	Content   string `json:"contenido,omitempty"`
}

type statsDTO struct {
	Buffs int `json:"buffs"`
	Nerfs int `json:"nerfs"`
	Total int `json:"total"`
}

func toDTOs(records []core.PatchRecord) []patchDTO {
	dtos := make([]patchDTO, 0, len(records))
	for _, r := range records {
		dtos = append(dtos, patchDTO{
			ID:        r.ID,
			Date:      r.Date,
			Title:     r.Title,
			Type:      string(r.Type),
			Category:  r.Category,
			Subtype:   r.Subtype,
			Summary:   r.Summary,
			Relevance: r.Relevance,
			Content:   r.Content,
		})
	}
	return dtos
}

// handlePatches dispatches on the action parameter, falling back to a
// bare fecha lookup and finally to a criteria search.
func (s *Server) handlePatches(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx := r.Context()

	switch action := q.Get("action"); action {
	case "fechas-disponibles":
		dates, err := s.engine.AvailableDates(ctx)
		if err != nil {
			s.internalError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, map[string]any{"fechas": emptyIfNil(dates)})

	case "categorias-disponibles":
		categories, err := s.engine.AvailableCategories(ctx)
		if err != nil {
			s.internalError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, map[string]any{"categorias": emptyIfNil(categories)})

	case "subtipos-disponibles":
		subtypes, err := s.engine.AvailableSubtypes(ctx)
		if err != nil {
			s.internalError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, map[string]any{"subtipos": emptyIfNil(subtypes)})

	case "ultimos":
		date, records, err := s.engine.Latest(ctx)
		if err != nil {
			s.internalError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, map[string]any{
			"fecha":   date,
			"patches": toDTOs(records),
		})

	case "buscar":
		s.handleSearch(w, r)

	case "":
		if fecha := q.Get("fecha"); fecha != "" {
			s.handleByDate(w, r, fecha)
			return
		}
		if hasSearchParams(q) {
			s.handleSearch(w, r)
			return
		}
		s.badRequest(w, "missing action, fecha, or search parameters")

	default:
		s.badRequest(w, "unknown action: "+action)
	}
}

func (s *Server) handleByDate(w http.ResponseWriter, r *http.Request, fecha string) {
	records, stats, err := s.engine.ByDate(r.Context(), fecha)
	if err != nil {
		if errors.Is(err, core.ErrInvalidDate) {
			s.badRequest(w, "invalid fecha: "+fecha)
			return
		}
		s.internalError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"fecha":   fecha,
		"patches": toDTOs(records),
		"stats":   statsDTO{Buffs: stats.Buffs, Nerfs: stats.Nerfs, Total: stats.Total},
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 0
	if raw := q.Get("limite"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			s.badRequest(w, "invalid limite: "+raw)
			return
		}
		limit = parsed
	}

	query := search.Query{
		Dates:      splitParam(q.Get("fechasEspecificas")),
		Months:     splitParam(q.Get("meses")),
		Years:      splitParam(q.Get("años")),
		TypeFilter: q.Get("tipoFiltro"),
		Categories: splitParam(q.Get("categorias")),
		Subtypes:   splitParam(q.Get("subtipos")),
		Limit:      limit,
	}
	if fecha := q.Get("fecha"); fecha != "" {
		query.Dates = append(query.Dates, fecha)
	}

	records, err := s.engine.Search(r.Context(), query)
	if err != nil {
		if errors.Is(err, search.ErrInvalidTypeFilter) {
			s.badRequest(w, "invalid tipoFiltro: "+q.Get("tipoFiltro"))
			return
		}
		s.internalError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"patches": toDTOs(records),
		"total":   len(records),
	})
}

// hasSearchParams reports whether the request carries any search
// dimension beyond a bare fecha.
func hasSearchParams(q map[string][]string) bool {
	for _, param := range []string{"fechasEspecificas", "meses", "años", "tipoFiltro", "categorias", "subtipos", "limite"} {
		if values, ok := q[param]; ok && len(values) > 0 && values[0] != "" {
			return true
		}
	}
	return false
}

// splitParam splits a comma-separated parameter into trimmed tokens.
func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encoding response", "err", err)
	}
}

func (s *Server) badRequest(w http.ResponseWriter, msg string) {
	s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func (s *Server) internalError(w http.ResponseWriter, err error) {
	s.logger.Error("request failed", "err", err)
	s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}
