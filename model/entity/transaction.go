package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoodsReceiving is one append-only entry in the receiving log. TotalRate is
// derived (quantity * rate, plus tax); Timestamp is always assigned by the
// store at insert time, never by the caller.
type GoodsReceiving struct {
	ID           uint            `gorm:"column:id;primaryKey;autoIncrement"`
	ProductName  string          `gorm:"column:product_name;type:varchar(255);not null" validate:"required"`
	SupplierName string          `gorm:"column:supplier_name;type:varchar(255);not null" validate:"required"`
	Quantity     int             `gorm:"column:quantity;not null" validate:"min=1"`
	Unit         Unit            `gorm:"column:unit_of_measurement;type:varchar(16);not null" validate:"oneof=pcs kg liters boxes packs"`
	RatePerUnit  decimal.Decimal `gorm:"column:rate_per_unit;type:decimal(12,2);not null" validate:"gt=0"`
	TotalRate    decimal.Decimal `gorm:"column:total_rate;type:decimal(14,2);not null"`
	Tax          decimal.Decimal `gorm:"column:tax;type:decimal(5,2);not null" validate:"gte=0,lte=100"`
	Timestamp    time.Time       `gorm:"column:timestamp;autoCreateTime"`
}

func (GoodsReceiving) TableName() string {
	return "goods_receiving"
}

// Sale is one append-only entry in the sales log. Identical to GoodsReceiving
// except the counterparty is a customer.
type Sale struct {
	ID           uint            `gorm:"column:id;primaryKey;autoIncrement"`
	ProductName  string          `gorm:"column:product_name;type:varchar(255);not null" validate:"required"`
	CustomerName string          `gorm:"column:customer_name;type:varchar(255);not null" validate:"required"`
	Quantity     int             `gorm:"column:quantity;not null" validate:"min=1"`
	Unit         Unit            `gorm:"column:unit_of_measurement;type:varchar(16);not null" validate:"oneof=pcs kg liters boxes packs"`
	RatePerUnit  decimal.Decimal `gorm:"column:rate_per_unit;type:decimal(12,2);not null" validate:"gt=0"`
	TotalRate    decimal.Decimal `gorm:"column:total_rate;type:decimal(14,2);not null"`
	Tax          decimal.Decimal `gorm:"column:tax;type:decimal(5,2);not null" validate:"gte=0,lte=100"`
	Timestamp    time.Time       `gorm:"column:timestamp;autoCreateTime"`
}

func (Sale) TableName() string {
	return "sales"
}
