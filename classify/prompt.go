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
	"strings"

	"github.com/guillermop2002/Patch-Boe/core"
)

// promptTemplate carries the task instructions, the fixed taxonomy, the
// relevance scale, and worked examples. The documents block is
// interpolated between the category list and the closing instructions.
const promptTemplate = `Eres un analista legislativo que clasifica cambios normativos españoles según su relevancia nacional real, como si fueran parches de videojuego.

CRITERIOS DE CLASIFICACIÓN:
- BUFF: medidas que benefician, mejoran condiciones o amplían derechos, con relevancia nacional o sectorial significativa.
- NERF: medidas que restringen, endurecen condiciones o reducen beneficios, con relevancia nacional o sectorial significativa.
- ACTUALIZACIÓN: cambios técnicos, administrativos, nombramientos, convocatorias locales o correcciones sin gran impacto.

CATEGORÍAS DEL BOE (clasifica cada documento en UNA categoría exacta):
%s

ESCALA DE RELEVANCIA (1-100):
- 95-100: reformas constitucionales, presupuestos generales del Estado, leyes orgánicas fundamentales (~0.5%% de los documentos).
- 85-94: leyes nacionales importantes, reformas fiscales mayores, cambios en derechos fundamentales (~1%%).
- 70-84: cambios significativos en sectores importantes a nivel nacional: sanidad, educación, empleo (~3%%).
- 55-69: regulaciones sectoriales moderadas que afectan a sectores amplios (~5%%).
- 40-54: cambios administrativos con impacto limitado, regulaciones de nicho (~8%%).
- 25-39: convocatorias de empleo público, nombramientos importantes (~12%%).
- 10-24: nombramientos individuales, correcciones de erratas, anuncios administrativos (~20%%).
- 1-9: cambios puramente técnicos, correcciones tipográficas, anuncios sin impacto (~50%%).

EJEMPLOS DE CLASIFICACIÓN:
1. "Convocatoria de 200 plazas de Policía Nacional" → BUFF, ConvocatoriasEmpleoPublico, relevancia 32.
2. "Real Decreto de aumento de pensiones mínimas en 50€/mes" → BUFF, NormasYDisposiciones, relevancia 78.
3. "Real Decreto-ley por el que se establece un nuevo impuesto sobre bebidas azucaradas" → NERF, FiscalidadPresupuestos, relevancia 62.
4. "Nombramiento de Secretario General Técnico del Ministerio de Cultura" → ACTUALIZACIÓN, ActosIndividuales, relevancia 8.
5. "Orden de exclusión de 3 deportistas de ayudas por dopaje" → ACTUALIZACIÓN, SubvencionesAyudas, relevancia 3.

DOCUMENTOS A ANALIZAR:
%s

INSTRUCCIONES:
1. Sé conservador con las puntuaciones altas (70+): resérvalas para impacto nacional real.
2. El 75%% de los documentos del BOE son ACTUALIZACIÓN; solo el impacto sectorial o nacional real justifica BUFF/NERF.
3. Usa valores enteros únicos y variados del 1 al 100; no redondees a múltiplos de 5.

Responde ÚNICAMENTE con JSON válido (sin markdown, sin explicaciones):
{
  "results": [
    {
      "id": "ID_del_documento",
      "tipo": "buff|nerf|actualización",
      "categoria": "categoria_exacta_de_la_lista",
      "summary": "Resumen conciso del impacto real",
      "relevance": numero_entero_1_a_100
    }
  ]
}`

// render produces the full prompt for one chunk.
func (b *Batcher) render(docs []core.RawDocument) string {
	blocks := make([]string, 0, len(docs))
	for _, doc := range docs {
		blocks = append(blocks, fmt.Sprintf("ID: %s\nTÍTULO: %s\nCONTENIDO:\n%s",
			doc.ID, doc.Title, b.truncate(doc.Content)))
	}
	return fmt.Sprintf(promptTemplate, categoryList(), strings.Join(blocks, "\n\n---\n\n"))
}

func categoryList() string {
	var sb strings.Builder
	for i, category := range core.Categories {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, category)
	}
	return strings.TrimRight(sb.String(), "\n")
}
