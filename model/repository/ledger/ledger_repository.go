// Package ledger owns the goods_receiving and sales tables. Both are pure
// append-only logs: rows are timestamped at insert and never updated or
// deleted. Receiving and sales share one validated insert path, parameterized
// by the counterparty field, so the two kinds cannot drift apart.
package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"stockbook/core/fault"
	"stockbook/core/money"
	"stockbook/core/validate"
	entity "stockbook/model/entity"
)

// ProductLookup resolves a product name against the catalog. Used only when
// the known-product policy is enabled.
type ProductLookup interface {
	GetProduct(productName string) (*entity.ProductMaster, error)
}

type LedgerRepository struct {
	db     *gorm.DB
	lookup ProductLookup
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Init creates both log tables if absent.
func (r *LedgerRepository) Init() error {
	return fault.Storage("migrate logs", r.db.AutoMigrate(&entity.GoodsReceiving{}, &entity.Sale{}))
}

// RequireKnownProduct makes inserts reject product names absent from the
// catalog. The legacy system accepted free-text names; this stays off unless
// configured.
func (r *LedgerRepository) RequireKnownProduct(lookup ProductLookup) {
	r.lookup = lookup
}

func (r *LedgerRepository) InsertGoodsReceiving(e *entity.GoodsReceiving) error {
	return r.appendEntry(e, entryFields{
		op:           "insert goods receiving",
		productName:  &e.ProductName,
		counterparty: &e.SupplierName,
		quantity:     e.Quantity,
		rate:         e.RatePerUnit,
		tax:          e.Tax,
		total:        &e.TotalRate,
		timestamp:    &e.Timestamp,
	})
}

func (r *LedgerRepository) InsertSales(e *entity.Sale) error {
	return r.appendEntry(e, entryFields{
		op:           "insert sales",
		productName:  &e.ProductName,
		counterparty: &e.CustomerName,
		quantity:     e.Quantity,
		rate:         e.RatePerUnit,
		tax:          e.Tax,
		total:        &e.TotalRate,
		timestamp:    &e.Timestamp,
	})
}

func (r *LedgerRepository) CountGoodsReceiving() (int64, error) {
	var n int64
	err := r.db.Model(&entity.GoodsReceiving{}).Count(&n).Error
	return n, fault.Storage("count goods receiving", err)
}

func (r *LedgerRepository) CountSales() (int64, error) {
	var n int64
	err := r.db.Model(&entity.Sale{}).Count(&n).Error
	return n, fault.Storage("count sales", err)
}

// entryFields points into one concrete entry so the shared path can trim and
// fill it regardless of which log it belongs to.
type entryFields struct {
	op           string
	productName  *string
	counterparty *string
	quantity     int
	rate         decimal.Decimal
	tax          decimal.Decimal
	total        *decimal.Decimal
	timestamp    *time.Time
}

// appendEntry is the single insert path for both logs: trim, validate, derive
// or verify the total, apply the known-product policy, stamp the server time,
// append. Nothing is written when any step fails.
func (r *LedgerRepository) appendEntry(rec interface{}, f entryFields) error {
	*f.productName = strings.TrimSpace(*f.productName)
	*f.counterparty = strings.TrimSpace(*f.counterparty)

	if err := validate.Struct(rec); err != nil {
		return err
	}

	want := money.RoundForStorage(money.Total(f.quantity, f.rate, f.tax))
	if f.total.IsZero() {
		*f.total = want
	} else if !money.RoundForStorage(*f.total).Equal(want) {
		return fault.Invalid("total_rate", "does not match quantity, rate and tax")
	} else {
		*f.total = want
	}

	if r.lookup != nil {
		p, err := r.lookup.GetProduct(*f.productName)
		if err != nil {
			return err
		}
		if p == nil {
			return fault.Invalid("product_name", "not in product catalog")
		}
	}

	*f.timestamp = time.Now()
	if err := r.db.Create(rec).Error; err != nil {
		return fault.Storage(f.op, err)
	}
	return nil
}
