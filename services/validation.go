package services

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"product-catalog/models"
	"product-catalog/utils"

	"github.com/go-playground/validator/v10"
)

var fieldMessages = map[string]string{
	"name":        "Name must be at least 3 characters long.",
	"description": "Description must be at least 10 characters long.",
	"price":       "Price must be a positive number.",
	"imageUrl":    "Please enter a valid URL for the image.",
}

var productValidator = newProductValidator()

func newProductValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their wire names so error keys match the form.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("positive_price", func(fl validator.FieldLevel) bool {
		_, ok := parsePrice(fl.Field().String())
		return ok
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("image_url", func(fl validator.FieldLevel) bool {
		return utils.IsValidImageURL(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

func parsePrice(raw string) (float64, bool) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, false
	}
	return price, true
}

func trimForm(form models.ProductForm) models.ProductForm {
	return models.ProductForm{
		Name:        strings.TrimSpace(form.Name),
		Description: strings.TrimSpace(form.Description),
		Price:       strings.TrimSpace(form.Price),
		ImageURL:    strings.TrimSpace(form.ImageURL),
	}
}

// validateProductForm returns field-keyed messages, or nil when form is valid.
func validateProductForm(form models.ProductForm) map[string][]string {
	err := productValidator.Struct(form)
	if err == nil {
		return nil
	}

	fieldErrors := map[string][]string{}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		fieldErrors[models.FormErrorKey] = []string{err.Error()}
		return fieldErrors
	}

	for _, fe := range validationErrors {
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = fe.Error()
		}
		fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], msg)
	}
	return fieldErrors
}
