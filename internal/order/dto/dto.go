package dto

import "time"

type OrderView struct {
	ID           int64     `json:"id"`
	Date         time.Time `json:"date"`
	CustomerID   int64     `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

type OrderItemView struct {
	ID         int64   `json:"id"`
	ItemID     int64   `json:"item_id"`
	ItemName   string  `json:"item_name"`
	Amount     float64 `json:"amount"`
	TotalPrice float64 `json:"total_price"`
}
