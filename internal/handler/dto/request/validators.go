package request

import (
	"regexp"

	"sandwich-storefront/internal/domain/promo"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var zipcodeRegex = regexp.MustCompile(`^[0-9]{5}$`)

// RegisterValidators adds the storefront tags to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return registerOn(v)
}

func registerOn(v *validator.Validate) error {
	if err := v.RegisterValidation("promocode", validPromoCode); err != nil {
		return err
	}
	return v.RegisterValidation("zipcode", validZipcode)
}

// codes are stored upper-cased, so the back office may type them in any case
func validPromoCode(fl validator.FieldLevel) bool {
	_, err := promo.NewCode(fl.Field().String())
	return err == nil
}

func validZipcode(fl validator.FieldLevel) bool {
	return zipcodeRegex.MatchString(fl.Field().String())
}
