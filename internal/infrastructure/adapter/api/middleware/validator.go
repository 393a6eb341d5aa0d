package middleware

import (
	"fmt"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators adds the ledger's custom rules to gin's validator engine:
// assetsymbol (three upper-case letters and a trailing lower-case letter) and
// decimalamount (a positive decimal string)
func RegisterValidators() error {
	engine, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	if err := engine.RegisterValidation("assetsymbol", func(fl validator.FieldLevel) bool {
		return entity.ValidateSymbol(fl.Field().String())
	}); err != nil {
		return err
	}

	return engine.RegisterValidation("decimalamount", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.IsPositive()
	})
}
