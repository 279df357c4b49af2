package ingest

import (
	"testing"

	"github.com/lodfresh/customer-service/internal/model"
	"github.com/stretchr/testify/assert"
)

func markerRow(name, phone string) Row {
	return Row{TextCell(name + " " + PickupMarker + " " + phone)}
}

func lineRow(product, qty, price string) Row {
	return Row{TextCell(product), TextCell(qty), TextCell(price)}
}

func TestParseRows_CustomerHeaderSplit(t *testing.T) {
	rows := []Row{markerRow("John Doe", "0521234567")}

	events := ParseRows(rows, LeftColumns)

	assert.Len(t, events, 1)
	assert.Equal(t, EventNewCustomer, events[0].Kind)
	assert.Equal(t, "John Doe", events[0].CustomerName)
	assert.Equal(t, "0521234567", events[0].Phone)
}

func TestParseRows_RowsBeforeFirstHeaderAreSkipped(t *testing.T) {
	rows := []Row{
		lineRow("Tomato", "2", "10"),
		markerRow("John Doe", "0521234567"),
		lineRow("Tomato", "2", "10"),
	}

	events := ParseRows(rows, LeftColumns)

	assert.Equal(t, EventSkip, events[0].Kind)
	assert.Equal(t, EventNewCustomer, events[1].Kind)
	assert.Equal(t, EventLineItem, events[2].Kind)
}

func TestParseRows_EmptyNameHeaderClosesBlock(t *testing.T) {
	rows := []Row{
		markerRow("John Doe", "0521234567"),
		Row{TextCell(PickupMarker)},
		lineRow("Tomato", "2", "10"),
	}

	events := ParseRows(rows, LeftColumns)

	assert.Equal(t, EventNewCustomer, events[1].Kind)
	assert.Equal(t, "", events[1].CustomerName)
	assert.Equal(t, EventSkip, events[2].Kind, "rows after a closing header belong to no customer")
}

func TestParseRows_SkipsColumnTitlesAndIncompleteLines(t *testing.T) {
	rows := []Row{
		markerRow("John Doe", "0521234567"),
		lineRow("מוצר", "2", "10"),
		Row{TextCell("Tomato"), TextCell("2")}, // price column missing
		Row{TextCell(""), TextCell("2"), TextCell("10")},
		lineRow("Cucumber", "1", "5"),
	}

	events := ParseRows(rows, LeftColumns)

	assert.Equal(t, EventSkip, events[1].Kind)
	assert.Equal(t, EventSkip, events[2].Kind)
	assert.Equal(t, EventSkip, events[3].Kind)
	assert.Equal(t, EventLineItem, events[4].Kind)
	assert.Equal(t, "Cucumber", events[4].Product)
}

func TestParseRows_StripsQuotesFromProductNames(t *testing.T) {
	rows := []Row{
		markerRow("John Doe", ""),
		lineRow(`Tomato 1 "kg`, "1", "8"),
	}

	events := ParseRows(rows, LeftColumns)

	assert.Equal(t, "Tomato 1 kg", events[1].Product)
}

func TestParseRows_ColumnSetsAreIndependent(t *testing.T) {
	// Left side has a customer, right side does not. The right pass must not
	// inherit the left pass's open block.
	rows := []Row{
		{TextCell("John " + PickupMarker + " 052"), TextCell(""), TextCell(""), {}, TextCell("Tomato"), TextCell("2"), TextCell("10")},
	}

	left := ParseRows(rows, LeftColumns)
	right := ParseRows(rows, RightColumns)

	assert.Equal(t, EventNewCustomer, left[0].Kind)
	assert.Equal(t, EventSkip, right[0].Kind)
}

func TestParseRows_NumberCellsRenderShortestForm(t *testing.T) {
	rows := []Row{
		markerRow("John Doe", ""),
		Row{TextCell("Tomato"), NumberCell(2.5), NumberCell(20)},
	}

	events := ParseRows(rows, LeftColumns)

	assert.Equal(t, "2.5", events[1].QuantityText)
	assert.Equal(t, "20", events[1].PriceText)
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"12.5", 12.5},
		{"₪12.50", 12.5},
		{"2 kg", 2},
		{"-3.5", -3.5},
		{"1.23456", 1.235},
		{"", 0},
		{"abc", 0},
		{"1.2.3", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseDecimal(tt.in), "input %q", tt.in)
	}
}

func TestLineValues_KgQuantity(t *testing.T) {
	qty, total, unitPrice, typ := LineValues("2 kg", "20")

	assert.Equal(t, 2.0, qty)
	assert.Equal(t, 20.0, total)
	assert.Equal(t, 10.0, unitPrice)
	assert.Equal(t, model.ItemTypeKg, typ)
}

func TestLineValues_UnitMarkerClassifiesPerUnit(t *testing.T) {
	qty, total, unitPrice, typ := LineValues("3 יח", "15")

	assert.Equal(t, 3.0, qty)
	assert.Equal(t, 15.0, total)
	assert.Equal(t, 5.0, unitPrice)
	assert.Equal(t, model.ItemTypeUnit, typ)
}

func TestLineValues_ZeroQuantityYieldsZeroUnitPrice(t *testing.T) {
	qty, total, unitPrice, _ := LineValues("0", "10")

	assert.Equal(t, 0.0, qty)
	assert.Equal(t, 10.0, total)
	assert.Equal(t, 0.0, unitPrice)
}

func TestLineValues_QuantityTakenFromLeadingToken(t *testing.T) {
	qty, _, _, _ := LineValues("1.5 ארגז", "30")

	assert.Equal(t, 1.5, qty)
}

func TestLineValues_UnitSuffixGluedToQuantity(t *testing.T) {
	qty, total, unitPrice, typ := LineValues("2kg", "10.00")

	assert.Equal(t, 2.0, qty)
	assert.Equal(t, 10.0, total)
	assert.Equal(t, 5.0, unitPrice)
	assert.Equal(t, model.ItemTypeKg, typ)
}
