package document

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

const (
	gridColumns  = 12
	labelColumns = 4
	rowHeight    = 6
)

var pageSizes = map[string]pagesize.Type{
	PageA4:     pagesize.A4,
	PageLetter: pagesize.Letter,
}

// PDF lays the document out with maroto. The creation date comes from the
// document so equal documents produce equal files.
func PDF(doc Document) ([]byte, error) {
	size, ok := pageSizes[doc.PageSize]
	if !ok {
		size = pagesize.A4
	}

	cfg := config.NewBuilder().
		WithPageSize(size).
		WithTopMargin(doc.Margins.Top).
		WithLeftMargin(doc.Margins.Left).
		WithRightMargin(doc.Margins.Right).
		WithCreationDate(doc.CreatedAt).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, doc.Header)

	for _, sec := range doc.Sections {
		addSection(m, sec)
	}

	if doc.Summary != nil {
		addSummary(m, *doc.Summary)
	}

	if doc.Signature != nil {
		addSignature(m, *doc.Signature)
	}

	for _, note := range doc.Footer {
		m.AddRow(rowHeight, text.NewCol(gridColumns, note, props.Text{Size: 8, Align: align.Center, Top: 2}))
	}

	pdf, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s pdf: %w", doc.Variant, err)
	}

	return pdf.GetBytes(), nil
}

func addHeader(m core.Maroto, h Header) {
	company := col.New(8)
	for i, lineText := range h.CompanyLines {
		style := props.Text{Size: 9, Top: float64(i * 4)}
		if i == 0 {
			style.Style = fontstyle.Bold
		}

		company.Add(text.New(lineText, style))
	}

	if len(h.Logo) > 0 {
		m.AddRow(24,
			image.NewFromBytesCol(4, h.Logo, extension.Png, props.Rect{Percent: 80}),
			company,
		)
	} else if len(h.CompanyLines) > 0 {
		m.AddRow(24, col.New(4), company)
	}

	m.AddRow(12,
		text.NewCol(8, h.Title, props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Left}),
		text.NewCol(4, h.Badge, props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right, Top: 2}),
	)
	m.AddRow(2, line.NewCol(gridColumns))
}

func addSection(m core.Maroto, sec Section) {
	m.AddRow(8, text.NewCol(gridColumns, sec.Title, props.Text{Size: 11, Style: fontstyle.Bold, Top: 2}))

	for _, row := range sec.Rows {
		m.AddRow(rowHeight,
			text.NewCol(labelColumns, row.Label, props.Text{Size: 9}),
			text.NewCol(gridColumns-labelColumns, row.Value, props.Text{Size: 9}),
		)
	}
}

func addSummary(m core.Maroto, sum Summary) {
	m.AddRow(4, col.New(gridColumns))
	m.AddRow(8, text.NewCol(gridColumns, sum.Title, props.Text{Size: 11, Style: fontstyle.Bold, Top: 2}))

	for _, row := range sum.Lines {
		m.AddRow(rowHeight,
			col.New(4),
			text.NewCol(5, row.Label, props.Text{Size: 9}),
			text.NewCol(3, row.Value, props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(2, col.New(4), line.NewCol(8))
	m.AddRow(8,
		col.New(4),
		text.NewCol(5, sum.Total.Label, props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(3, sum.Total.Value, props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
	)
}

func addSignature(m core.Maroto, sig Signature) {
	ext := extension.Png
	if sig.Format == "jpeg" || sig.Format == "jpg" {
		ext = extension.Jpg
	}

	m.AddRow(8, text.NewCol(gridColumns, "Client signature", props.Text{Size: 11, Style: fontstyle.Bold, Top: 2}))
	m.AddRow(25, image.NewFromBytesCol(4, sig.Image, ext, props.Rect{Percent: 90}), col.New(8))

	if sig.SignedAt != "" {
		m.AddRow(rowHeight, text.NewCol(gridColumns, "Terms accepted "+sig.SignedAt, props.Text{Size: 8}))
	}
}
