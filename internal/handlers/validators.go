package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// RegisterCustomValidators installs the domain enum validations used in the
// request binding tags. Must run once before the router serves traffic.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("direction", func(fl validator.FieldLevel) bool {
		switch domain.Direction(fl.Field().String()) {
		case domain.DirectionIn, domain.DirectionOut:
			return true
		}
		return false
	})

	v.RegisterValidation("paymentmode", func(fl validator.FieldLevel) bool {
		switch domain.PaymentMode(fl.Field().String()) {
		case domain.ModeCash, domain.ModeBkash, domain.ModeNagad, domain.ModeBank, domain.ModeOther:
			return true
		}
		return false
	})

	v.RegisterValidation("salarytype", func(fl validator.FieldLevel) bool {
		switch domain.SalaryType(fl.Field().String()) {
		case domain.SalaryDaily, domain.SalaryMonthly, domain.SalaryPerJob:
			return true
		}
		return false
	})
}
