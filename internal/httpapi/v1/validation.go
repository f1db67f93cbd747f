package v1

import (
    "errors"
    "fmt"
    "reflect"
    "strings"

    "github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports field errors under their JSON names.
func newValidator() *validator.Validate {
    v := validator.New(validator.WithRequiredStructEnabled())
    v.RegisterTagNameFunc(func(f reflect.StructField) string {
        name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
        if name == "-" {
            return ""
        }
        return name
    })
    return v
}

// fieldErrors validates v and flattens any violations into field -> message.
// A nil map means v is valid.
func fieldErrors(v any) map[string]string {
    err := validate.Struct(v)
    if err == nil {
        return nil
    }
    var verrs validator.ValidationErrors
    if !errors.As(err, &verrs) {
        return map[string]string{"_": err.Error()}
    }
    out := make(map[string]string, len(verrs))
    for _, fe := range verrs {
        out[fe.Field()] = describe(fe)
    }
    return out
}

func describe(fe validator.FieldError) string {
    switch fe.Tag() {
    case "required":
        return "is required"
    case "min":
        return fmt.Sprintf("must be at least %s characters", fe.Param())
    case "max":
        return fmt.Sprintf("must be at most %s characters", fe.Param())
    case "gte":
        return fmt.Sprintf("must be >= %s", fe.Param())
    }
    return "failed " + fe.Tag()
}
