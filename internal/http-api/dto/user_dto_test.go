package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"userhub/internal/http-api/models"
)

func TestCreateToModel_Defaults(t *testing.T) {
	in := CreateUserDTO{
		Username:  "jordan",
		Email:     "jordan@example.com",
		FirstName: "Jordan",
		LastName:  "Heredia",
	}

	u := in.ToModel()

	assert.Equal(t, models.RoleUser, u.Role)
	assert.True(t, u.Active)
}

func TestCreateToModel_ExplicitValues(t *testing.T) {
	role := models.RoleGuest
	active := false
	in := CreateUserDTO{
		Username:  "jordan",
		Email:     "jordan@example.com",
		FirstName: "Jordan",
		LastName:  "Heredia",
		Role:      &role,
		Active:    &active,
	}

	u := in.ToModel()

	assert.Equal(t, models.RoleGuest, u.Role)
	assert.False(t, u.Active)
}

func TestUpdateApplyTo_SubsetOnly(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	u := models.User{
		ID:        1,
		Username:  "old_username",
		Email:     "old@example.com",
		FirstName: "Old",
		LastName:  "Name",
		Role:      models.RoleGuest,
		Active:    true,
		CreatedAt: created,
		UpdatedAt: created,
	}

	email := "new@example.com"
	active := false
	UpdateUserDTO{Email: &email, Active: &active}.ApplyTo(&u)

	assert.Equal(t, "new@example.com", u.Email)
	assert.False(t, u.Active)
	// Everything absent from the payload stays as it was.
	assert.Equal(t, "old_username", u.Username)
	assert.Equal(t, "Old", u.FirstName)
	assert.Equal(t, "Name", u.LastName)
	assert.Equal(t, models.RoleGuest, u.Role)
	assert.Equal(t, created, u.CreatedAt)
}

func TestUpdateApplyTo_EmptyPayloadIsNoop(t *testing.T) {
	u := models.User{Username: "keep", Email: "keep@example.com", Active: true}
	before := u

	UpdateUserDTO{}.ApplyTo(&u)

	assert.Equal(t, before, u)
}
