package request

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := registerValidators(v); err != nil {
			panic(fmt.Sprintf("request validators: %v", err))
		}
	}
}

func registerValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	if err := v.RegisterValidation("cep", validateCEP); err != nil {
		return err
	}
	return v.RegisterValidation("uf", validateUF)
}

// validateCEP accepts "24000000" and "24000-000".
func validateCEP(fl validator.FieldLevel) bool {
	digits := 0
	for _, r := range strings.Replace(fl.Field().String(), "-", "", 1) {
		if r < '0' || r > '9' {
			return false
		}
		digits++
	}
	return digits == 8
}

func validateUF(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 2 {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
