package apperror

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init makes gin's validator report JSON field names (dateOfBirth) instead
// of Go field names (DateOfBirth). Call once before serving.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(JSONTagName)
	}
}

// JSONTagName reports the json (or, for query structs, form) tag name of a
// struct field for validator messages.
func JSONTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "" {
		name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
	}
	if name == "-" {
		return ""
	}
	return name
}
