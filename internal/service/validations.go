package service

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/focusflow/internal/error_values"
	"github.com/limbo/focusflow/pkg/entity"
	"github.com/shopspring/decimal"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// Text must contain something besides whitespace
		validate.RegisterValidation("notblank_text", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		// YYYY-MM-DD calendar day
		validate.RegisterValidation("calendar_date", func(fl validator.FieldLevel) bool {
			return entity.IsDate(fl.Field().String())
		})
		// Decimal given as a string, zero or positive
		validate.RegisterValidation("nonneg_decimal", func(fl validator.FieldLevel) bool {
			d, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
			return err == nil && !d.IsNegative()
		})
	})
}

func validateStruct(req any) error {
	InitValidator()
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return errors.Join(errorvalues.ErrValidation, verrs)
		}
		return errors.Join(errorvalues.ErrValidation, err)
	}
	return nil
}

func validateDate(date string) error {
	if !entity.IsDate(date) {
		return errors.Join(errorvalues.ErrValidation, errors.New("date must be formatted as YYYY-MM-DD"))
	}
	return nil
}
