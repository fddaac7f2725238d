package entity

import "github.com/shopspring/decimal"

// ProductMaster is one row of the product catalog. Barcode, SKU and name are
// each globally unique; the index names matter, duplicate classification in
// the catalog repository parses them out of driver errors.
type ProductMaster struct {
	ID               uint            `gorm:"column:id;primaryKey;autoIncrement"`
	Barcode          string          `gorm:"column:barcode;type:varchar(64);uniqueIndex:uq_product_master_barcode;not null" validate:"required"`
	SkuID            string          `gorm:"column:sku_id;type:varchar(64);uniqueIndex:uq_product_master_sku_id;not null" validate:"required"`
	Category         string          `gorm:"column:category;type:varchar(128);not null" validate:"required"`
	Subcategory      string          `gorm:"column:subcategory;type:varchar(128);not null" validate:"required"`
	ProductImagePath *string         `gorm:"column:product_image_path;type:varchar(255)"`
	ProductName      string          `gorm:"column:product_name;type:varchar(255);uniqueIndex:uq_product_master_product_name;not null" validate:"required"`
	Description      string          `gorm:"column:description;type:text"`
	Tax              decimal.Decimal `gorm:"column:tax;type:decimal(5,2);not null" validate:"gte=0,lte=100"`
	Price            decimal.Decimal `gorm:"column:price;type:decimal(12,2);not null" validate:"gt=0"`
	DefaultUnit      Unit            `gorm:"column:default_unit_of_measurement;type:varchar(16);not null" validate:"oneof=pcs kg liters boxes packs"`
}

func (ProductMaster) TableName() string {
	return "product_master"
}
