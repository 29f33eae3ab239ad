// Package pdf gera a lista de reposição em PDF para a compra/farmácia.
//
// Layout A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Lista de reposição  │  Data de geração / limite    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  POR PRODUTO: Produto | Un. | Total, residentes abaixo      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  POR RESIDENTE: Residente, produtos com saldo e sugestão    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ESTOQUE GERAL: produtos no mínimo ou abaixo                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/jhoicas/Estoque-Residencial-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain/replenishment"
)

var (
	colorPrimary = &props.Color{Red: 22, Green: 101, Blue: 52}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var _ inventory.PlanPDFGenerator = (*MarotoPlanGenerator)(nil)

// MarotoPlanGenerator implementa inventory.PlanPDFGenerator com Maroto v2.
type MarotoPlanGenerator struct {
	facility string
}

// NewMarotoPlanGenerator facility aparece no cabeçalho e como autor do documento.
func NewMarotoPlanGenerator(facility string) *MarotoPlanGenerator {
	return &MarotoPlanGenerator{facility: facility}
}

// GeneratePlanPDF gera o documento e devolve os bytes.
func (g *MarotoPlanGenerator) GeneratePlanPDF(_ context.Context, plan replenishment.Plan, generatedOn entity.Date) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lista de reposição", true).
		WithAuthor(nonEmpty(g.facility, "Estoque Residencial"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.facility, plan.Threshold, generatedOn))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow("POR PRODUTO"))
	if len(plan.ByProduct) == 0 {
		m.AddRows(emptyRow("Nenhum residente com saldo baixo."))
	}
	for _, p := range plan.ByProduct {
		m.AddRows(productRows(p)...)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionRow("POR RESIDENTE"))
	if len(plan.ByResident) == 0 {
		m.AddRows(emptyRow("Nenhum residente com saldo baixo."))
	}
	for _, r := range plan.ByResident {
		m.AddRows(residentRows(r)...)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionRow("ESTOQUE GERAL ABAIXO DO MÍNIMO"))
	if len(plan.Facility) == 0 {
		m.AddRows(emptyRow("Nenhum produto abaixo do mínimo."))
	}
	for _, f := range plan.Facility {
		m.AddRows(facilityRow(f))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(facility string, threshold int, generatedOn entity.Date) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("LISTA DE REPOSIÇÃO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(facility, "Estoque Residencial"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em "+formatDate(generatedOn), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Saldo pessoal <= %d", threshold), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func sectionRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(text.New(title, props.Text{
		Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
	})))
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(text.New(msg, props.Text{
		Size: 8, Color: colorGray, Style: fontstyle.Italic, Top: 1,
	})))
}

// productRows: linha do produto com total e uma linha por residente.
func productRows(p replenishment.ProductLine) []core.Row {
	rows := []core.Row{row.New(7).Add(
		col.New(7).Add(text.New(p.ProductName, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
		col.New(2).Add(text.New(nonEmpty(p.Unit, "-"), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(3).Add(text.New(fmt.Sprintf("Total: %d", p.TotalQuantity), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
		})),
	)}
	for _, r := range p.Residents {
		rows = append(rows, row.New(5).Add(
			col.New(7).Add(text.New("   "+r.ResidentName+overrideMark(r.Overridden), props.Text{Size: 8, Top: 0.5})),
			col.New(2).Add(text.New(fmt.Sprintf("saldo %d", r.Balance), balanceText(r.Balance))),
			col.New(3).Add(text.New(fmt.Sprintf("%d", r.SuggestedQuantity), props.Text{Size: 8, Align: align.Right, Top: 0.5})),
		))
	}
	return rows
}

func residentRows(r replenishment.ResidentLine) []core.Row {
	rows := []core.Row{row.New(7).Add(
		col.New(12).Add(text.New(r.ResidentName, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
	)}
	for _, p := range r.Products {
		rows = append(rows, row.New(5).Add(
			col.New(7).Add(text.New("   "+p.ProductName+overrideMark(p.Overridden), props.Text{Size: 8, Top: 0.5})),
			col.New(2).Add(text.New(fmt.Sprintf("saldo %d", p.Balance), balanceText(p.Balance))),
			col.New(3).Add(text.New(fmt.Sprintf("%d %s", p.SuggestedQuantity, p.Unit), props.Text{Size: 8, Align: align.Right, Top: 0.5})),
		))
	}
	return rows
}

func facilityRow(f replenishment.FacilityShortage) core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New(f.ProductName, props.Text{Size: 8, Top: 1})),
		col.New(3).Add(text.New(fmt.Sprintf("atual %d / mín. %d", f.CurrentStock, f.MinStock), props.Text{
			Size: 8, Align: align.Center, Top: 1, Color: colorAlert,
		})),
		col.New(3).Add(text.New(fmt.Sprintf("faltam %d %s", f.Deficit, f.Unit), props.Text{
			Size: 8, Align: align.Right, Top: 1,
		})),
	)
}

func balanceText(balance int) props.Text {
	t := props.Text{Size: 8, Align: align.Center, Top: 0.5, Color: colorGray}
	if balance <= 0 {
		t.Color = colorAlert
	}
	return t
}

func overrideMark(overridden bool) string {
	if overridden {
		return " (manual)"
	}
	return ""
}

func formatDate(d entity.Date) string {
	t := d.Time()
	if t.IsZero() {
		return string(d)
	}
	return t.Format("02/01/2006")
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
