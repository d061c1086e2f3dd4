package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guillermop2002/Patch-Boe/core"
	"github.com/guillermop2002/Patch-Boe/search"
	"github.com/guillermop2002/Patch-Boe/storage/sqlite"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store := sqlite.NewTestStore(t)

	records := []core.PatchRecord{
		{ID: "BOE-A-2025-1", Date: "20250115", Title: "Uno", Type: core.ImpactPositive,
			Category: "NormasYDisposiciones", Subtype: "A", Summary: "Resumen uno", Relevance: 78},
		{ID: "BOE-A-2025-2", Date: "20250115", Title: "Dos", Type: core.ImpactNegative,
			Category: "FiscalidadPresupuestos", Subtype: "A", Summary: "Resumen dos", Relevance: 62},
		{ID: "BOE-B-2025-3", Date: "20250220", Title: "Tres", Type: core.ImpactPositive,
			Category: "SubvencionesAyudas", Subtype: "B", Summary: "Resumen tres", Relevance: 55},
	}
	require.NoError(t, store.UpsertMany(context.Background(), records))

	return New(search.NewEngine(store))
}

func get(t *testing.T, srv *Server, rawQuery string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/patches?"+rawQuery, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestAvailableDatesAction(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv, "action=fechas-disponibles")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{"20250220", "20250115"}, body["fechas"])
}

func TestAvailableCategoriesAction(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv, "action=categorias-disponibles")
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body["categorias"], 3)
}

func TestAvailableSubtypesAction(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv, "action=subtipos-disponibles")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{"A", "B"}, body["subtipos"])
}

func TestUltimosAction(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv, "action=ultimos")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "20250220", body["fecha"])
	assert.Len(t, body["patches"], 1)
}

func TestBareFechaReturnsRecordsAndStats(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv, "fecha=20250115")
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body["patches"], 2)

	stats, ok := body["stats"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 1, stats["buffs"])
	assert.EqualValues(t, 1, stats["nerfs"])
	assert.EqualValues(t, 2, stats["total"])
}

func TestBuscarActionWithFilters(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv, "action=buscar&tipoFiltro=nerf&"+url.Values{"años": {"2025"}}.Encode())
	assert.Equal(t, http.StatusOK, status)
	require.Len(t, body["patches"], 1)
	assert.EqualValues(t, 1, body["total"])

	patch := body["patches"].([]any)[0].(map[string]any)
	assert.Equal(t, "BOE-A-2025-2", patch["id"])
	assert.Equal(t, "nerf", patch["tipo"])
}

func TestBuscarNoMatchesReturnsEmptyArray(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv, "action=buscar&fechasEspecificas=19990101")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{}, body["patches"])
	assert.EqualValues(t, 0, body["total"])
}

func TestSearchWithoutActionParam(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv, "meses=202502")
	assert.Equal(t, http.StatusOK, status)
	require.Len(t, body["patches"], 1)
}

func TestLimiteParameter(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv, "action=buscar&limite=1")
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body["patches"], 1)
}

func TestBadRequests(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.NotEmpty(t, body["error"])

	status, _ = get(t, srv, "action=inventada")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = get(t, srv, "fecha=no-es-fecha")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = get(t, srv, "action=buscar&tipoFiltro=buf")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = get(t, srv, "action=buscar&limite=diez")
	assert.Equal(t, http.StatusBadRequest, status)
}
