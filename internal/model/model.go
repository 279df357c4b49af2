package model

import "time"

// PackageType is the delivery preference a customer (or a single order) carries.
type PackageType string

const (
	PackageNone            PackageType = "none"
	PackagePack            PackageType = "pack"
	PackageDelivery        PackageType = "delivery"
	PackageMorningPackage  PackageType = "morning_package"
	PackageMorningDelivery PackageType = "morning_delivery"
)

// ItemType is the pricing basis of an item.
type ItemType string

const (
	ItemTypeKg   ItemType = "kg"
	ItemTypeUnit ItemType = "unit"
)

type Customer struct {
	ID             int64        `db:"id"`
	UserID         *string      `db:"user_id"`
	Name           string       `db:"name"`
	Phones         string       `db:"phones"`
	Address        *string      `db:"address"`
	Email          *string      `db:"email"`
	DefaultPackage *PackageType `db:"default_package"`
	Metadata       *string      `db:"metadata"`
}

type Item struct {
	ID        int64    `db:"id"`
	Name      string   `db:"name"`
	Price     float64  `db:"price"`
	Type      ItemType `db:"type"`
	Available bool     `db:"available"`
	Metadata  string   `db:"metadata"`
}

type Order struct {
	ID              int64        `db:"id"`
	Date            time.Time    `db:"date"`
	CustomerID      int64        `db:"customer_id"`
	UploadedAt      time.Time    `db:"uploaded_at"`
	PackageValue    *int         `db:"package_value"`
	SelectedPackage *PackageType `db:"selected_package"`

	// In-memory reference, wired by the import reconciler before the
	// batch is persisted. Not a column.
	Customer *Customer `db:"-"`
}

type OrderItem struct {
	ID         int64   `db:"id"`
	OrderID    int64   `db:"order_id"`
	ItemID     int64   `db:"item_id"`
	Amount     float64 `db:"amount"`
	TotalPrice float64 `db:"total_price"`

	Order *Order `db:"-"`
	Item  *Item  `db:"-"`
}
