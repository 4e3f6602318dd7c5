package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"userhub/internal/http-api/models"
)

// CreateUserDTO used for POST /users/
type CreateUserDTO struct {
	Username  string       `json:"username" binding:"required"`
	Email     string       `json:"email" binding:"required,email"`
	FirstName string       `json:"first_name" binding:"required"`
	LastName  string       `json:"last_name" binding:"required"`
	Role      *models.Role `json:"role,omitempty" binding:"omitempty,userrole"`
	Active    *bool        `json:"active,omitempty"`
}

// UpdateUserDTO used for PUT /users/:user_id (partial updates allowed)
type UpdateUserDTO struct {
	Username  *string      `json:"username,omitempty"`
	Email     *string      `json:"email,omitempty" binding:"omitempty,email"`
	FirstName *string      `json:"first_name,omitempty"`
	LastName  *string      `json:"last_name,omitempty"`
	Role      *models.Role `json:"role,omitempty" binding:"omitempty,userrole"`
	Active    *bool        `json:"active,omitempty"`
}

// ToModel builds a User from the create payload, applying the documented
// defaults for role and active.
func (d CreateUserDTO) ToModel() models.User {
	u := models.User{
		Username:  d.Username,
		Email:     d.Email,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Role:      models.DefaultRole,
		Active:    true,
	}
	if d.Role != nil {
		u.Role = *d.Role
	}
	if d.Active != nil {
		u.Active = *d.Active
	}
	return u
}

// ApplyTo merges only the fields present in the payload onto the existing
// user. Absent (nil) fields are left untouched.
func (d UpdateUserDTO) ApplyTo(u *models.User) {
	if d.Username != nil {
		u.Username = *d.Username
	}
	if d.Email != nil {
		u.Email = *d.Email
	}
	if d.FirstName != nil {
		u.FirstName = *d.FirstName
	}
	if d.LastName != nil {
		u.LastName = *d.LastName
	}
	if d.Role != nil {
		u.Role = *d.Role
	}
	if d.Active != nil {
		u.Active = *d.Active
	}
}

// FieldError is one entry of a 422 response body.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// RegisterValidations wires the custom rules into gin's validator engine.
// Field names in validation errors are taken from the json tag so the 422
// detail matches the wire format.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("userrole", func(fl validator.FieldLevel) bool {
		return models.Role(fl.Field().String()).Valid()
	})
}

// FieldErrors flattens a binding error into field/reason pairs. Malformed
// JSON (not a validation failure per se) yields a single body entry.
func FieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Reason: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Reason: reasonFor(fe)})
	}
	return out
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "userrole":
		return "must be one of: admin, user, guest"
	default:
		return "failed validation rule '" + fe.Tag() + "'"
	}
}
