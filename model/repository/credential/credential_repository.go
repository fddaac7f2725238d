// Package credential owns the operator account table. Accounts are seeded
// once and never mutated afterwards; the only runtime operation is
// Authenticate.
package credential

import (
	"errors"

	"gorm.io/gorm"

	"stockbook/core/fault"
	entity "stockbook/model/entity"
)

// Default operator accounts, inserted only when the users table is empty.
// The legacy store shipped the same pairs; passwords are bcrypt-hashed here
// instead of stored raw.
const DefaultPassword = "password123"

var DefaultOperators = []string{"operator1", "operator2"}

type CredentialRepository struct {
	db *gorm.DB
}

func NewCredentialRepository(db *gorm.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// Init creates the users table if absent and seeds the default operators when
// it is empty. Idempotent across repeated calls.
func (r *CredentialRepository) Init() error {
	if err := r.db.AutoMigrate(&entity.Operator{}); err != nil {
		return fault.Storage("migrate users", err)
	}
	var count int64
	if err := r.db.Model(&entity.Operator{}).Count(&count).Error; err != nil {
		return fault.Storage("count users", err)
	}
	if count > 0 {
		return nil
	}
	for _, name := range DefaultOperators {
		op := entity.Operator{Username: name}
		if err := op.SetPassword(DefaultPassword); err != nil {
			return fault.Storage("seed users", err)
		}
		if err := r.db.Create(&op).Error; err != nil {
			return fault.Storage("seed users", err)
		}
	}
	return nil
}

// Authenticate reports whether an operator with this exact username and
// password exists. Query failures surface as a StorageError with ok=false;
// a store error is never treated as a successful login.
func (r *CredentialRepository) Authenticate(username, password string) (bool, error) {
	var op entity.Operator
	err := r.db.Where("username = ?", username).First(&op).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fault.Storage("authenticate", err)
	}
	// MySQL's default collation matches case-insensitively; recheck the exact
	// spelling so both backends behave like the original store.
	if op.Username != username {
		return false, nil
	}
	return op.CheckPassword(password), nil
}
