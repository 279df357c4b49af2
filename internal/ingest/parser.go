package ingest

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lodfresh/customer-service/internal/model"
)

// The upload sheets mark each customer block with a pickup-location header
// cell of the form "<name> איסוף: לוד <phone>".
const (
	PickupMarker  = "איסוף: לוד"
	productHeader = "מוצר"
	unitToken     = "יח"
)

type EventKind int

const (
	EventSkip EventKind = iota
	EventNewCustomer
	EventLineItem
)

// Event is one classified sheet row.
type Event struct {
	Kind EventKind

	// EventNewCustomer. An empty CustomerName closes the current block.
	CustomerName string
	Phone        string

	// EventLineItem.
	Product      string
	QuantityText string
	PriceText    string
}

// ParseRows folds one column set over the full row sequence and returns the
// classified event stream. The block cursor lives only inside this fold, so
// the two side-by-side passes never see each other's state.
func ParseRows(rows []Row, cols ColumnSet) []Event {
	events := make([]Event, 0, len(rows))
	active := false

	for _, row := range rows {
		ev := classifyRow(row, cols, active)
		switch ev.Kind {
		case EventNewCustomer:
			active = ev.CustomerName != ""
		}
		events = append(events, ev)
	}
	return events
}

func classifyRow(row Row, cols ColumnSet, active bool) Event {
	first := row.Cell(cols.Name)

	if first.Type == CellText && strings.Contains(first.Text, PickupMarker) {
		parts := strings.SplitN(first.Text, PickupMarker, 2)
		name := strings.TrimSpace(parts[0])
		phone := ""
		if len(parts) > 1 {
			phone = strings.TrimSpace(parts[1])
		}
		return Event{Kind: EventNewCustomer, CustomerName: name, Phone: phone}
	}

	if !active {
		return Event{Kind: EventSkip}
	}

	product := first
	quantity := row.Cell(cols.Quantity)
	price := row.Cell(cols.Price)

	if product.Type != CellText || product.Text == "" || product.Text == productHeader {
		return Event{Kind: EventSkip}
	}
	if quantity.Type == CellBlank || price.Type == CellBlank {
		return Event{Kind: EventSkip}
	}

	return Event{
		Kind:         EventLineItem,
		Product:      strings.ReplaceAll(product.Text, `"`, ""),
		QuantityText: quantity.String(),
		PriceText:    price.String(),
	}
}

var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// ParseDecimal strips everything but digits, dot and minus, parses the rest
// and rounds to 3 fractional digits. Unparseable input reads as 0.
func ParseDecimal(s string) float64 {
	cleaned := nonNumeric.ReplaceAllString(s, "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return math.Round(v*1000) / 1000
}

// LineValues derives the numeric content of a line item: quantity (taken
// from the leading token), the line total, the per-kg-or-unit price and the
// item type. A quantity token carrying the unit marker classifies the item
// as per-unit.
func LineValues(quantityText, priceText string) (quantity, total, unitPrice float64, itemType model.ItemType) {
	token := quantityText
	if fields := strings.Fields(quantityText); len(fields) > 0 {
		token = fields[0]
	}
	quantity = ParseDecimal(token)
	total = ParseDecimal(priceText)

	if quantity != 0 {
		unitPrice = total / quantity
	}

	itemType = model.ItemTypeKg
	if strings.Contains(quantityText, unitToken) {
		itemType = model.ItemTypeUnit
	}
	return quantity, total, unitPrice, itemType
}
