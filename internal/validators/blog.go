// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-blog-client/models"
	"github.com/go-playground/validator/v10"
)

// Struct field names accepted by Validate for partial checks.
const (
	FieldUsername = "Username"
	FieldEmail    = "Email"
	FieldPassword = "Password"
	FieldTitle    = "Title"
	FieldContent  = "Content"
	FieldCategory = "Category"
)

// postInput is the create-time shape of a post. Every field is mandatory.
type postInput struct {
	Title    string `json:"title" validate:"required,max=255"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"required,max=50"`
}

// BlogValidator implements [Validator] for the blog's request models on top
// of go-playground/validator struct tags.
type BlogValidator struct {
	v *validator.Validate
}

func NewBlogValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return strings.ToLower(f.Name)
		}
		return name
	})
	return &BlogValidator{v: v}
}

// Validate dispatches on the value's type:
//   - int64 is a resource id and must be positive;
//   - models.Credentials needs an identifier and a password;
//   - models.PostDraft is checked with create rules;
//   - models.UpdateProfileRequest and models.PostPayload need at least one
//     field set;
//   - any other struct is checked against its validate tags.
//
// With fields, only the named struct fields are checked.
func (b *BlogValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch v := value.(type) {
	case int64:
		if v < 1 {
			return ErrInvalidID
		}
		return nil
	case models.Credentials:
		if strings.TrimSpace(v.Identifier()) == "" {
			return ErrEmptyIdentifier
		}
		return b.structCtx(ctx, v, fields...)
	case models.PostDraft:
		return b.structCtx(ctx, postInput{Title: v.Title, Content: v.Markdown(), Category: v.Category}, fields...)
	case models.PostPayload:
		if v == (models.PostPayload{}) {
			return ErrNoFieldsToUpdate
		}
		return b.structCtx(ctx, v, fields...)
	case models.UpdateProfileRequest:
		if v.Username == nil && v.Email == nil && v.Password == nil {
			return ErrNoFieldsToUpdate
		}
		return b.structCtx(ctx, v, fields...)
	}

	if reflect.Indirect(reflect.ValueOf(value)).Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
	return b.structCtx(ctx, value, fields...)
}

func (b *BlogValidator) structCtx(ctx context.Context, value any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = b.v.StructPartialCtx(ctx, value, fields...)
	} else {
		err = b.v.StructCtx(ctx, value)
	}
	return describe(err)
}

// describe turns validator errors into one readable line.
func describe(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
	case "email":
		return name + " must be a valid email address"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", name, fe.Tag())
	}
}
