// Package forms holds the request schemas and their field-level validation.
// A failed validation yields a mapping of field name -> human-readable
// messages; validation is all-or-nothing, nothing is partially applied.
package forms

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the wire field name, not the Go struct field.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// collect turns validator errors into the field-error mapping, looking up
// messages by "<field>.<tag>".
func collect(err error, messages map[string]string) map[string][]string {
	out := make(map[string][]string)
	if err == nil {
		return out
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["_form"] = append(out["_form"], "invalid form submission")
		return out
	}
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Field() + " is invalid"
		}
		out[fe.Field()] = append(out[fe.Field()], msg)
	}
	return out
}
