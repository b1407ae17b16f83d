// Package validation comprueba las entradas (DTOs) antes de tocar la persistencia.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/biztime-api/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Nombres de campo según la etiqueta json, como los ve el cliente.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// decimal.Decimal se valida como número (gt=0, etc.).
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// Struct valida in según sus etiquetas validate. Devuelve un error de tipo
// domain.ErrInvalidInput que nombra cada campo rechazado.
func Struct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.Invalidf("entrada inválida: %v", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}
	return domain.Invalidf("%s", strings.Join(msgs, "; "))
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es requerido", fe.Field())
	case "gt":
		return fmt.Sprintf("%s debe ser mayor que %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s admite como máximo %s caracteres", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s no es válido (%s)", fe.Field(), fe.Tag())
	}
}
