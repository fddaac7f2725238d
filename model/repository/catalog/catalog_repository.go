// Package catalog owns the product master table: create and read only, no
// update or delete path.
package catalog

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"stockbook/core/fault"
	"stockbook/core/validate"
	entity "stockbook/model/entity"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Init creates the product_master table and its unique indexes if absent.
func (r *CatalogRepository) Init() error {
	return fault.Storage("migrate product_master", r.db.AutoMigrate(&entity.ProductMaster{}))
}

// InsertProduct validates and durably commits one catalog row. A uniqueness
// violation on barcode, sku_id or product_name comes back as a
// DuplicateKeyError naming the colliding column; any other store failure is a
// StorageError. Text fields are trimmed in place before validation.
func (r *CatalogRepository) InsertProduct(p *entity.ProductMaster) error {
	p.Barcode = strings.TrimSpace(p.Barcode)
	p.SkuID = strings.TrimSpace(p.SkuID)
	p.Category = strings.TrimSpace(p.Category)
	p.Subcategory = strings.TrimSpace(p.Subcategory)
	p.ProductName = strings.TrimSpace(p.ProductName)
	p.Description = strings.TrimSpace(p.Description)

	if err := validate.Struct(p); err != nil {
		return err
	}
	if err := r.db.Create(p).Error; err != nil {
		if field, ok := duplicateField(err); ok {
			return &fault.DuplicateKeyError{Field: field}
		}
		return fault.Storage("insert product", err)
	}
	return nil
}

// duplicateField inspects a driver error for a uniqueness violation and
// extracts the colliding column. SQLite reports "UNIQUE constraint failed:
// product_master.barcode"; MySQL reports the index name
// ("... for key 'uq_product_master_barcode'").
func duplicateField(err error) (string, bool) {
	msg := err.Error()
	if !errors.Is(err, gorm.ErrDuplicatedKey) &&
		!strings.Contains(msg, "UNIQUE constraint failed") &&
		!strings.Contains(msg, "Duplicate entry") {
		return "", false
	}
	for _, field := range []string{"barcode", "sku_id", "product_name"} {
		if strings.Contains(msg, "product_master."+field) ||
			strings.Contains(msg, "uq_product_master_"+field) {
			return field, true
		}
	}
	return "unique key", true
}

// ListProductNames returns every product name in ascending lexicographic
// order. The store is re-queried on each call; results are never cached.
func (r *CatalogRepository) ListProductNames() ([]string, error) {
	names := []string{}
	err := r.db.Model(&entity.ProductMaster{}).
		Order("product_name ASC").
		Pluck("product_name", &names).Error
	if err != nil {
		return nil, fault.Storage("list product names", err)
	}
	return names, nil
}

// ProductRef is the (id, name) pair the product picker works from.
type ProductRef struct {
	ID          uint
	ProductName string
}

// ListProducts returns (id, name) for every product, ordered by name.
func (r *CatalogRepository) ListProducts() ([]ProductRef, error) {
	refs := []ProductRef{}
	err := r.db.Model(&entity.ProductMaster{}).
		Select("id", "product_name").
		Order("product_name ASC").
		Find(&refs).Error
	if err != nil {
		return nil, fault.Storage("list products", err)
	}
	return refs, nil
}

// GetProduct looks a product up by exact name. An absent product is
// (nil, nil), not an error.
func (r *CatalogRepository) GetProduct(productName string) (*entity.ProductMaster, error) {
	var p entity.ProductMaster
	err := r.db.Where("product_name = ?", productName).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fault.Storage("get product", err)
	}
	return &p, nil
}
