// Package forms declares the site's form schemas and validates
// submitted values against them. Validation is pure: it inspects the
// decoded form only and reports every failing field, so a page can
// redisplay all messages at once.
package forms

import (
	"errors"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors maps a form field name to a user-visible message.
type Errors map[string]string

func (e Errors) Any() bool {
	return len(e) > 0
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under the submitted field name, not the Go field
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

type SubscribeForm struct {
	Email string `form:"email" validate:"required,email"`
}

func NewSubscribeForm(values url.Values) SubscribeForm {
	return SubscribeForm{
		Email: normalizeEmail(values.Get("email")),
	}
}

type RegisterForm struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

func NewRegisterForm(values url.Values) RegisterForm {
	return RegisterForm{
		Name:     strings.TrimSpace(values.Get("name")),
		Email:    normalizeEmail(values.Get("email")),
		Password: values.Get("password"),
	}
}

type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

func NewLoginForm(values url.Values) LoginForm {
	return LoginForm{
		Email:    normalizeEmail(values.Get("email")),
		Password: values.Get("password"),
	}
}

type PostForm struct {
	Title    string `form:"title" validate:"required"`
	Subtitle string `form:"subtitle" validate:"required"`
	Body     string `form:"body" validate:"required"`
	Author   string `form:"author" validate:"required"`
	ImageURL string `form:"image" validate:"required,url"`
}

func NewPostForm(values url.Values) PostForm {
	return PostForm{
		Title:    strings.TrimSpace(values.Get("title")),
		Subtitle: strings.TrimSpace(values.Get("subtitle")),
		Body:     strings.TrimSpace(values.Get("body")),
		Author:   strings.TrimSpace(values.Get("author")),
		ImageURL: strings.TrimSpace(values.Get("image")),
	}
}

type ContactForm struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required,email"`
	Subject string `form:"subject" validate:"required"`
	Body    string `form:"body" validate:"required"`
}

func NewContactForm(values url.Values) ContactForm {
	return ContactForm{
		Name:    strings.TrimSpace(values.Get("name")),
		Email:   normalizeEmail(values.Get("email")),
		Subject: strings.TrimSpace(values.Get("subject")),
		Body:    strings.TrimSpace(values.Get("body")),
	}
}

// Validate checks every rule on the form and returns a message for
// each failing field. An empty map means the form is valid.
func Validate(form any) Errors {
	errs := Errors{}

	err := validate.Struct(form)
	if err == nil {
		return errs
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		// Non-field error (bad schema); surface it on the form itself
		errs["form"] = "Invalid submission."
		return errs
	}

	for _, fe := range fieldErrors {
		errs[fe.Field()] = message(fe)
	}

	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Kindly enter correct email."
	case "url":
		return "Kindly enter a valid URL."
	default:
		return "Invalid value."
	}
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}
