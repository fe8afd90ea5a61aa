// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// invoiceMonthRegex matches the YYYY-MM billing cycle label format.
var invoiceMonthRegex = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("account_type", validateAccountType)
		_ = v.RegisterValidation("investment_type", validateInvestmentType)
		_ = v.RegisterValidation("invoice_month", validateInvoiceMonth)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateAccountType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "checking", "savings", "investment", "cash":
		return true
	}
	return false
}

func validateInvestmentType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "stock", "fund", "crypto", "pension":
		return true
	}
	return false
}

func validateInvoiceMonth(fl validator.FieldLevel) bool {
	return invoiceMonthRegex.MatchString(fl.Field().String())
}
