package handlers

import (
	"reflect"

	"github.com/jefremassingue/sales-plat-backend/internal/core/money"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Teach the binding validator to treat money.Amount as its decimal string so
// tags like "required" see the numeric value, not the wrapper struct.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if a, ok := field.Interface().(money.Amount); ok {
				return a.String()
			}
			return nil
		}, money.Amount{})
	}
}
