package ingest

import "strconv"

type CellType int

const (
	CellBlank CellType = iota
	CellText
	CellNumber
	CellBool
	CellFormula
)

// Cell is one spreadsheet cell, decoupled from whichever library read it.
// For CellFormula, Text holds the cached formula result when present.
type Cell struct {
	Type   CellType
	Text   string
	Number float64
	Bool   bool
}

func TextCell(s string) Cell { return Cell{Type: CellText, Text: s} }
func NumberCell(f float64) Cell { return Cell{Type: CellNumber, Number: f} }

// String renders the cell the way the upload sheets are read: numbers in
// their shortest decimal form, blanks as "".
func (c Cell) String() string {
	switch c.Type {
	case CellText, CellFormula:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellBool:
		return strconv.FormatBool(c.Bool)
	default:
		return ""
	}
}

// Row is one sheet row. Missing trailing cells read as blank.
type Row []Cell

func (r Row) Cell(i int) Cell {
	if i < 0 || i >= len(r) {
		return Cell{}
	}
	return r[i]
}

// ColumnSet is one of the two independent three-column sub-tables the
// source document lays side by side.
type ColumnSet struct {
	Name     int
	Quantity int
	Price    int
}

var (
	LeftColumns  = ColumnSet{Name: 0, Quantity: 1, Price: 2}
	RightColumns = ColumnSet{Name: 4, Quantity: 5, Price: 6}
)
