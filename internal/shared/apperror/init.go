package apperror

import (
	"reflect"
	"strings"

	"go-salary/internal/shared/money"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validate checks the `validate` tags of request DTOs inside the service layer,
// so HTTP and stream callers share one set of rules.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	register(v)
	return v
}

func register(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonTagName)
	v.RegisterCustomTypeFunc(amountValue, money.Amount{})
}

func Init() {
	// Daftarkan fungsi kustom ke validator bawaan Gin
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		register(v)
	}
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// amountValue lets numeric tags (min, max) run against a parsed money.Amount.
// Unparseable input is handed over as its raw text so `numeric` rejects it.
func amountValue(field reflect.Value) any {
	a, ok := field.Interface().(money.Amount)
	if !ok {
		return nil
	}
	if !a.Valid() {
		return a.Raw()
	}
	return a.Exact().InexactFloat64()
}

// ValidateStruct runs the `validate` tags of s and returns a ValidationError
// listing every failing field, or nil.
func ValidateStruct(s any) error {
	if err := validate.Struct(s); err != nil {
		return MapValidationError(err)
	}
	return nil
}
