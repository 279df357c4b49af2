package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadWorkbook decodes the first sheet of an XLSX upload into rows the
// parser understands. Cell values arrive already formatted as strings, so
// everything non-empty reads as text; that is all the fixed column layout
// needs.
func ReadWorkbook(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	rows := make([]Row, len(raw))
	for i, cells := range raw {
		row := make(Row, len(cells))
		for j, v := range cells {
			if v == "" {
				row[j] = Cell{}
				continue
			}
			row[j] = TextCell(v)
		}
		rows[i] = row
	}
	return rows, nil
}
