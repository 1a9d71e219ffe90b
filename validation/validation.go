// Package validation checks form input before anything is sent to the backend.
// Every check returns a Result listing field failures instead of touching UI state.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/princinho/menufront/dto"
	"github.com/princinho/menufront/models"
	"github.com/princinho/menufront/utils"
)

type FieldError struct {
	Field   string
	Message string
}

type Result struct {
	Errors   []FieldError
	Warnings []string
}

func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// For returns the first message reported for field, or "".
func (r Result) For(field string) string {
	for _, e := range r.Errors {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

func (r Result) Error() string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

func (r *Result) add(field, msg string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: msg})
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

func checkStruct(s any) Result {
	var res Result
	err := validate.Struct(s)
	if err == nil {
		return res
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		res.add("", err.Error())
		return res
	}
	for _, fe := range verrs {
		res.add(fe.Field(), message(fe))
	}
	return res
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "enter a valid email address"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func Category(f dto.CategoryForm) Result {
	return checkStruct(f)
}

func Login(f dto.LoginForm) Result {
	return checkStruct(f)
}

// Product validates the add/edit product form. images may be nil when no
// file can be attached.
func Product(f dto.ProductForm, images *utils.FileValidator) Result {
	res := checkStruct(f)

	if strings.TrimSpace(f.Price) != "" {
		if price, ok := f.PriceValue(); !ok || price <= 0 {
			res.add("price", "price must be a positive number")
		}
	}

	if f.Type != "" {
		if _, ok := models.ParseProductType(f.Type); !ok {
			res.add("type", "type must be one of food, hot or cold")
		}
	}

	if f.Image != nil {
		if images == nil {
			res.add("image", "image uploads are not supported here")
		} else if _, err := images.ValidateUpload(f.Image); err != nil {
			res.add("image", err.Error())
		}
		return res
	}

	if current := strings.TrimSpace(f.CurrentImage); current != "" && strings.TrimSpace(f.ImageURL) == current {
		return res
	}
	if msg, warning := ImageURL(f.ImageURL); msg != "" {
		res.add("image_url", msg)
	} else if warning != "" {
		res.Warnings = append(res.Warnings, warning)
	}
	return res
}

// ImageURL checks an image link. A link starting with "www." is accepted with a warning.
func ImageURL(raw string) (errMsg, warning string) {
	u := strings.TrimSpace(raw)
	switch {
	case u == "":
		return "", ""
	case strings.HasPrefix(u, "http://"), strings.HasPrefix(u, "https://"):
		return "", ""
	case strings.HasPrefix(u, "www."):
		return "", "the image may not show unless the link starts with http:// or https://"
	default:
		return "image link must start with http://, https:// or www.", ""
	}
}
