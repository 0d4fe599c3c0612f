package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator reporting fields by their json tag name,
// so 400 messages match the wire payload instead of Go struct fields.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}

		return name
	})

	return v
}

// dateLayouts are the accepted formats for date fields carried as strings.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ValidDate reports whether the value parses as one of the accepted date
// formats.
func ValidDate(value string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}

	return false
}

// ValidationMessage turns a validator error into the client-facing 400
// message naming the first missing or invalid field.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return fmt.Sprintf("%s is required", fe.Field())
		}

		return fmt.Sprintf("%s is invalid", fe.Field())
	}

	return "invalid request payload"
}
