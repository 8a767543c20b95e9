// Package pdf implementa la generación del roster de equipo en PDF para
// entrega a umpires y coordinadores en día de juego.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la liga  │  Equipo + Categoría            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EQUIPO: Entrenadores / Contacto / Color de uniforme         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Jugador | Fecha Nac. | Edad | Contacto emergencia│
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Fecha de emisión + total de jugadores               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ligaspequenas/liga-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 82, Blue: 40}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoRosterGenerator genera el roster de un equipo usando Maroto v2.
type MarotoRosterGenerator struct {
	ligaNombre string
}

// NewMarotoRosterGenerator construye el generador.
func NewMarotoRosterGenerator(ligaNombre string) *MarotoRosterGenerator {
	return &MarotoRosterGenerator{ligaNombre: ligaNombre}
}

// GenerateRosterPDF genera el PDF del roster y devuelve sus bytes.
func (g *MarotoRosterGenerator) GenerateRosterPDF(
	_ context.Context,
	equipo *entity.EquipoInterno,
	jugadores []*entity.Jugador,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Roster "+equipo.Nombre, true).
		WithAuthor(g.ligaNombre, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(equipo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(equipoRow(equipo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableJugadorRows(jugadores) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(jugadores)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar roster: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la liga (izq) y equipo + categoría (der).
func (g *MarotoRosterGenerator) headerRow(equipo *entity.EquipoInterno) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.ligaNombre, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Roster oficial de equipo", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(equipo.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New(fmt.Sprintf("Categoría: %s (%d-%d años)",
				equipo.CategoriaNombre, equipo.EdadMinima, equipo.EdadMaxima,
			), props.Text{Size: 8, Align: align.Right, Top: 9, Color: colorGray}),
		),
	)
}

// equipoRow: entrenadores, contacto y uniforme.
func equipoRow(equipo *entity.EquipoInterno) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CUERPO TÉCNICO Y CONTACTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Entrenador: %s   |   Asistente: %s",
				nonEmpty(equipo.EntrenadorPrincipal, "—"),
				nonEmpty(equipo.EntrenadorAsistente, "—"),
			), props.Text{Size: 8, Top: 6, Color: colorGray}),
			text.New(fmt.Sprintf("Tel: %s   |   Email: %s   |   Uniforme: %s",
				nonEmpty(equipo.TelefonoContacto, "—"),
				nonEmpty(equipo.EmailContacto, "—"),
				nonEmpty(equipo.ColorUniforme, "—"),
			), props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de jugadores.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Jugador", 5, align.Left),
		h("Fecha Nac.", 2, align.Center),
		h("Edad", 1, align.Center),
		h("Contacto de emergencia", 3, align.Left),
	)
}

// tableJugadorRows: una fila por jugador.
func tableJugadorRows(jugadores []*entity.Jugador) []core.Row {
	result := make([]core.Row, 0, len(jugadores))
	for _, j := range jugadores {
		nombre := j.Nombre + " " + j.ApellidoPaterno
		if j.ApellidoMaterno != "" {
			nombre += " " + j.ApellidoMaterno
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", j.NumeroPlayera),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				nombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				j.FechaNacimiento.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", j.Edad),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				nonEmpty(j.TelefonoEmergencia, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

// footerRow: fecha de emisión y total de jugadores.
func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(6).Add(text.New(
			"Emitido: "+time.Now().Format("02/01/2006 15:04"),
			props.Text{Size: 7, Color: colorGray, Top: 2},
		)),
		col.New(6).Add(text.New(
			fmt.Sprintf("Jugadores en roster: %d", total),
			props.Text{Size: 7, Align: align.Right, Color: colorGray, Top: 2},
		)),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
