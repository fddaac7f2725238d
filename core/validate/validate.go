// Package validate wraps go-playground/validator for the store layer. Decimal
// fields are registered as a custom type so numeric tags (gt, lte, ...) apply
// to money columns, and field names in errors use the gorm column name so the
// caller sees the persisted spelling (sku_id, rate_per_unit, ...).
package validate

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"stockbook/core/fault"
)

var (
	once sync.Once
	v    *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New()
		v.RegisterCustomTypeFunc(decimalToFloat, decimal.Decimal{})
		v.RegisterTagNameFunc(columnName)
	})
	return v
}

func decimalToFloat(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func columnName(fld reflect.StructField) string {
	for _, part := range strings.Split(fld.Tag.Get("gorm"), ";") {
		if after, ok := strings.CutPrefix(part, "column:"); ok {
			return after
		}
	}
	return fld.Name
}

// Struct validates rec against its `validate` tags and returns the first
// violation as a fault.ValidationError, or nil.
func Struct(rec interface{}) error {
	err := instance().Struct(rec)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return fault.Invalid("record", err.Error())
	}
	fe := errs[0]
	return fault.Invalid(fe.Field(), reason(fe))
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or more", fe.Param())
	case "lte":
		return fmt.Sprintf("must be %s or less", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	}
	return fmt.Sprintf("failed %q constraint", fe.Tag())
}
