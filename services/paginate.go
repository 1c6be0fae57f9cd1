package services

// Fixed label sheet geometry: a 3×8 grid tiles one A4 page exactly.
const (
	GridColumns   = 3
	GridRows      = 8
	LabelsPerPage = GridColumns * GridRows

	// Cell dimensions in millimeters: 210/3 × 297/8.
	CellWidthMM  = 70.0
	CellHeightMM = 37.125
)

// Page is one sheet of labels: an 8×3 grid of fitted label texts in
// row-major order. Cells past the end of the label sequence are empty.
type Page struct {
	Cells [GridRows][GridColumns]string
}

// PagesNeeded returns ceil(labelCount / 24).
func PagesNeeded(labelCount int) int {
	return (labelCount + LabelsPerPage - 1) / LabelsPerPage
}

// BuildPages partitions the ordered label texts into fixed 8×3 pages,
// fitting each text to the per-line budget on the way in. The cell at
// row r, column c of page p holds label index p*24 + r*3 + c. The
// second return value counts labels that lost lines to the maxLines
// cap.
func BuildPages(labels []string, charsPerLine, maxLines int) ([]Page, int) {
	truncated := 0
	pages := make([]Page, 0, PagesNeeded(len(labels)))

	for p := 0; p < PagesNeeded(len(labels)); p++ {
		var page Page
		start := p * LabelsPerPage
		for r := 0; r < GridRows; r++ {
			for c := 0; c < GridColumns; c++ {
				idx := start + r*GridColumns + c
				if idx >= len(labels) {
					continue
				}
				fitted, wasTruncated := FitLabelText(labels[idx], charsPerLine, maxLines)
				if wasTruncated {
					truncated++
				}
				page.Cells[r][c] = fitted
			}
		}
		pages = append(pages, page)
	}
	return pages, truncated
}
