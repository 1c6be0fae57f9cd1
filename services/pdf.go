package services

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// RenderOptions controls the visual treatment of the label sheet.
type RenderOptions struct {
	// ShowGridLines draws solid cell borders for plain-paper printing.
	// When false the borders match the sheet background, for pre-cut
	// sticker sheets.
	ShowGridLines bool
}

// labelFontSize and labelLineHeight size the text inside a 70×37.125mm cell.
const (
	labelFontSize   = 10.0
	labelLineHeight = 4.2 // mm per text line
)

// MaxLinesPerCell is the most text lines that fit one cell: 8 lines at
// 4.2mm take 33.6mm of the 37.125mm height, a 9th would bleed into the
// next label row.
const MaxLinesPerCell = 8

// GenerateLabelPDF renders the label pages into one A4 PDF document.
// Each page is a full-bleed 3×8 grid: zero page margins, zero cell
// padding, 70mm × 37.125mm cells, center-aligned text. Pages appear in
// the order given. Any renderer failure aborts the whole document; no
// partial output is returned.
func GenerateLabelPDF(pages []Page, opts RenderOptions) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(0).
		WithTopMargin(0).
		WithRightMargin(0).
		WithBottomMargin(0).
		Build()

	m := maroto.New(cfg)

	for _, p := range pages {
		m.AddPages(buildLabelPage(p, opts))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate label PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// buildLabelPage lays out one 8-row × 3-column label grid.
func buildLabelPage(p Page, opts RenderOptions) core.Page {
	borderColor := &props.Color{Red: 255, Green: 255, Blue: 255}
	if opts.ShowGridLines {
		borderColor = &props.Color{Red: 0, Green: 0, Blue: 0}
	}
	cellStyle := &props.Cell{
		BorderType:      border.Full,
		BorderColor:     borderColor,
		BorderThickness: 0.4,
	}

	rows := make([]core.Row, 0, GridRows)
	for r := 0; r < GridRows; r++ {
		cols := make([]core.Col, 0, GridColumns)
		for c := 0; c < GridColumns; c++ {
			cols = append(cols, labelCell(p.Cells[r][c], cellStyle))
		}
		rows = append(rows, row.New(CellHeightMM).Add(cols...))
	}
	return page.New().Add(rows...)
}

// labelCell builds one grid cell with its text lines vertically centered.
func labelCell(content string, style *props.Cell) core.Col {
	cell := col.New(12 / GridColumns).WithStyle(style)
	if content == "" {
		return cell
	}

	lines := strings.Split(content, "\n")
	top := (CellHeightMM - float64(len(lines))*labelLineHeight) / 2
	if top < 0 {
		top = 0
	}

	for i, line := range lines {
		cell.Add(text.New(line, props.Text{
			Top:   top + float64(i)*labelLineHeight,
			Size:  labelFontSize,
			Align: align.Center,
		}))
	}
	return cell
}
