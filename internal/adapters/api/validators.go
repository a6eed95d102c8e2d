package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"leadmail.app/internal/core/template"
)

const (
	maxDocTypes      = 20
	maxDocTypeLength = 100
)

// validateTemplateSet validates the template set identifier in the URI
func validateTemplateSet(fl validator.FieldLevel) bool {
	return template.SetIDFromString(fl.Field().String()).IsValid()
}

// validateDocTypes bounds the number and length of document type tags
func validateDocTypes(fl validator.FieldLevel) bool {
	docTypes, ok := fl.Field().Interface().(DocTypes)
	if !ok {
		return false
	}
	if len(docTypes) > maxDocTypes {
		return false
	}
	for _, d := range docTypes {
		if len(d) > maxDocTypeLength {
			return false
		}
	}
	return true
}

// RegisterValidators registers the custom binding validators with gin
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("template_set", validateTemplateSet); err != nil {
		return err
	}
	return v.RegisterValidation("doc_types", validateDocTypes)
}
