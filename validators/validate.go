package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"monetizr/errutil"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

const validatedKey = "validatedRequest"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			name = strings.SplitN(field.Tag.Get("query"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	// Money is validated by its numeric value.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return v
}

// Normalizer is implemented by requests that trim or default their fields before validation.
type Normalizer interface {
	Normalize()
}

// Checker is implemented by requests with rules that struct tags cannot express.
type Checker interface {
	Check() map[string]string
}

// Struct validates req and converts failures into a field -> message map.
func Struct(req interface{}) error {
	if n, ok := req.(Normalizer); ok {
		n.Normalize()
	}

	details := map[string]string{}
	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return errutil.BadRequest("Invalid request body!")
		}
		for _, fe := range fieldErrs {
			if _, exists := details[fe.Field()]; !exists {
				details[fe.Field()] = message(fe)
			}
		}
	}

	if checker, ok := req.(Checker); ok {
		for field, msg := range checker.Check() {
			if _, exists := details[field]; !exists {
				details[field] = msg
			}
		}
	}

	if len(details) > 0 {
		return errutil.ValidationFailed(details)
	}
	return nil
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required!", field)
	case "email":
		return "Invalid email!"
	case "url":
		return "Invalid URL!"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s!", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long!", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s!", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long!", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s!", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid!", field)
	}
}

// Body returns a middleware that parses the JSON body into T, validates it and stores it
// for the controller.
func Body[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(T)
		if err := c.BodyParser(reqData); err != nil {
			return errutil.BadRequest("Invalid request body!")
		}
		if err := Struct(reqData); err != nil {
			return err
		}

		c.Locals(validatedKey, reqData)
		return c.Next()
	}
}

// Query is Body for query string parameters.
func Query[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(T)
		if err := c.QueryParser(reqData); err != nil {
			return errutil.BadRequest("Invalid query parameters!")
		}
		if err := Struct(reqData); err != nil {
			return err
		}

		c.Locals(validatedKey, reqData)
		return c.Next()
	}
}

// Validated returns the request stored by Body or Query.
func Validated[T any](c *fiber.Ctx) (*T, error) {
	reqData, ok := c.Locals(validatedKey).(*T)
	if !ok || reqData == nil {
		return nil, errutil.BadRequest("Invalid request data!")
	}
	return reqData, nil
}

// PageQuery is the pagination query shared by list endpoints.
type PageQuery struct {
	Page  int `query:"page" validate:"min=1"`
	Limit int `query:"limit" validate:"min=1,max=100"`
}

func (q *PageQuery) Normalize() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = 20
	}
}
