package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listing struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required,category"`
	Status   string `json:"status,omitempty" validate:"omitempty,product_status"`
}

type resolution struct {
	Status string `json:"status" validate:"required,swap_resolution"`
	Role   string `json:"role" validate:"omitempty,role"`
}

func TestValidate_EnumTags(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&listing{Name: "Pixel", Category: "smartphones"}))
	require.NoError(t, v.Validate(&listing{Name: "Pixel", Category: "smartphones", Status: "sold"}))
	require.NoError(t, v.Validate(&resolution{Status: "accepted", Role: "admin"}))

	assert.Error(t, v.Validate(&listing{Name: "Drone", Category: "drones"}))
	assert.Error(t, v.Validate(&listing{Name: "Pixel", Category: "tvs", Status: "reserved"}))
	assert.Error(t, v.Validate(&resolution{Status: "pending"}))
	assert.Error(t, v.Validate(&resolution{Status: "rejected", Role: "owner"}))
}

func TestFieldErrors_UsesJSONNames(t *testing.T) {
	err := New().Validate(&listing{Category: "drones"})

	fields := FieldErrors(err)

	assert.Equal(t, map[string]string{
		"name":     "required",
		"category": "category",
	}, fields)
	assert.Nil(t, FieldErrors(assert.AnError))
}
