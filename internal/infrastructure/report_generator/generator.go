package report_generator

import (
	"fmt"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

const (
	gridSize        = 12
	titleRowHeight  = 12
	infoRowHeight   = 7
	tableRowHeight  = 7
	recordGapHeight = 4
)

var (
	titleProps  = props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Center}
	infoProps   = props.Text{Size: 9, Align: align.Left}
	headerProps = props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}
	cellProps   = props.Text{Size: 8, Align: align.Left}
)

// Generator renders extracted receipt rows as a PDF table. Up to twelve
// columns fit the grid; wider data is laid out as one key/value block per
// record.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateReport(w io.Writer, title string, header []string, records [][]string) error {
	m := maroto.New(config.NewBuilder().
		WithLeftMargin(10).
		WithTopMargin(15).
		WithRightMargin(10).
		Build())

	m.AddRows(text.NewRow(titleRowHeight, title, titleProps))
	m.AddRows(text.NewRow(infoRowHeight, fmt.Sprintf("Records: %d", len(records)), infoProps))

	switch {
	case len(header) == 0:
		m.AddRows(text.NewRow(infoRowHeight, "No columns extracted", infoProps))
	case len(header) <= gridSize:
		addTable(m, header, records)
	default:
		addBlocks(m, header, records)
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate pdf: %w", err)
	}

	if _, err := w.Write(doc.GetBytes()); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}

	return nil
}

func addTable(m core.Maroto, header []string, records [][]string) {
	size := gridSize / len(header)

	m.AddRow(tableRowHeight, cols(size, header, headerProps)...)
	for _, record := range records {
		m.AddRow(tableRowHeight, cols(size, fit(record, len(header)), cellProps)...)
	}
}

func addBlocks(m core.Maroto, header []string, records [][]string) {
	for i, record := range records {
		m.AddRows(text.NewRow(tableRowHeight, fmt.Sprintf("Record #%d", i+1), headerProps))

		record = fit(record, len(header))
		for j, column := range header {
			m.AddRow(tableRowHeight,
				text.NewCol(4, column, headerProps),
				text.NewCol(8, record[j], cellProps),
			)
		}

		m.AddRows(text.NewRow(recordGapHeight, ""))
	}
}

func cols(size int, values []string, ps props.Text) []core.Col {
	out := make([]core.Col, 0, len(values))
	for _, v := range values {
		out = append(out, text.NewCol(size, v, ps))
	}

	return out
}

// fit pads or truncates a record to the header width.
func fit(record []string, width int) []string {
	out := make([]string, width)
	copy(out, record)

	return out
}
