// Package validate is the schema layer for inbound payloads. Functions are
// pure: they inspect a decoded payload and report every failing field, not
// just the first one.
package validate

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/brightelectricals/backend/internal/model"
)

// FieldError describes a single failing field of a payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON name, which is what clients sent.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return val
}

// ContactForm validates a contact-form payload: name, service and message
// must be non-empty and email must be a well-formed address. Phone is
// optional.
func ContactForm(data model.ContactFormData) []FieldError {
	return collect(v.Struct(data))
}

// ButtonClick validates a click-tracking payload: buttonType and
// buttonLabel must be non-empty. Metadata is an opaque passthrough.
func ButtonClick(data model.ButtonClickData) []FieldError {
	return collect(v.Struct(data))
}

func collect(err error) []FieldError {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}
