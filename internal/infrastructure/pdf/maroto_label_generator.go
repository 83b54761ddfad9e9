// Package pdf implementa la generación de etiquetas QR de stock usando
// Maroto v2.
//
// Layout de la página A4: un título y una grilla de tarjetas, tres por fila.
// Cada tarjeta lleva el QR con la URL de escaneo del producto, el nombre y la
// referencia o EAN debajo.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/stockit-api/internal/application/labels"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ labels.LabelPDFGenerator = (*MarotoLabelGenerator)(nil)

// MarotoLabelGenerator implementa labels.LabelPDFGenerator usando Maroto v2.
type MarotoLabelGenerator struct{}

// NewMarotoLabelGenerator construye el generador.
func NewMarotoLabelGenerator() *MarotoLabelGenerator { return &MarotoLabelGenerator{} }

// Generate genera el PDF con la grilla de etiquetas y devuelve sus bytes.
func (g *MarotoLabelGenerator) Generate(data []labels.LabelData) ([]byte, error) {
	m := newDocument("Códigos QR de stock")

	m.AddRows(titleRow("Códigos QR de stock"))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Tres tarjetas por fila.
	for i := 0; i < len(data); i += 3 {
		end := i + 3
		if end > len(data) {
			end = len(data)
		}
		cols := make([]core.Col, 0, 3)
		for _, label := range data[i:end] {
			cols = append(cols, labelCard(label))
		}
		for len(cols) < 3 {
			cols = append(cols, col.New(4))
		}
		m.AddRows(row.New(70).Add(cols...))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateSingle genera el PDF de una sola etiqueta, centrada.
func (g *MarotoLabelGenerator) GenerateSingle(label labels.LabelData) ([]byte, error) {
	m := newDocument("Código QR - " + label.ProductName)

	m.AddRows(titleRow(label.ProductName))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(70).Add(
		col.New(4),
		labelCard(label),
		col.New(4),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
	return maroto.New(cfg)
}

func titleRow(title string) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center,
				Color: colorPrimary, Top: 2,
			}),
		),
	)
}

// labelCard: QR arriba, nombre y referencia/EAN debajo.
func labelCard(label labels.LabelData) core.Col {
	c := col.New(4).Add(
		code.NewQr(label.ScanURL, props.Rect{
			Center:  true,
			Percent: 75,
		}),
		text.New(label.ProductName, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 54,
		}),
	)
	if sub := labelSubtitle(label); sub != "" {
		c.Add(text.New(sub, props.Text{
			Size: 8, Align: align.Center, Top: 60, Color: colorGray,
		}))
	}
	return c
}

// labelSubtitle prioriza la referencia interna sobre el EAN.
func labelSubtitle(label labels.LabelData) string {
	if label.Reference != "" {
		return "Ref: " + label.Reference
	}
	if label.EAN != "" {
		return "EAN: " + label.EAN
	}
	return ""
}
