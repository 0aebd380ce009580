package validation

import (
	"reflect"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// New returns a validator with the price and currency tags registered. Field errors are reported
// under their JSON names.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("price", validatePrice)
	_ = v.RegisterValidation("currency", validateCurrency)

	return v
}

// validatePrice accepts non-negative decimals with at most two fractional digits.
func validatePrice(fl validatorv10.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return !d.IsNegative() && d.Equal(d.Round(2))
}

func validateCurrency(fl validatorv10.FieldLevel) bool {
	_, err := currency.ParseISO(fl.Field().String())
	return err == nil
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}
