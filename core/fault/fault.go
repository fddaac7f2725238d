// Package fault defines the error taxonomy shared by every store: validation
// failures, uniqueness collisions, storage failures and asset (image copy)
// failures. Callers match with errors.As / errors.Is; nothing here is ever
// fatal except a failed connection at process startup, which is the caller's
// call to make.
package fault

import "fmt"

// ValidationError reports caller-supplied data violating a field constraint.
// Nothing has been written when it is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Invalid builds a ValidationError.
func Invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// DuplicateKeyError reports a uniqueness violation on catalog insert and names
// the colliding column (barcode, sku_id or product_name).
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("a product with this %s already exists", e.Field)
}

// StorageError wraps an underlying store failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err as a StorageError, or returns nil if err is nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// AssetError reports a failed image copy. The product insert may still
// proceed without an image path.
type AssetError struct {
	Path string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("asset: %s: %v", e.Path, e.Err)
}

func (e *AssetError) Unwrap() error { return e.Err }
