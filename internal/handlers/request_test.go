package handlers

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestNewValidatorRegistersCustomTags(t *testing.T) {
	type sample struct {
		Username   string `json:"username" validate:"username"`
		Status     string `json:"status" validate:"jobstatus"`
		Preference string `json:"preference" validate:"preference"`
	}

	v := newValidator()
	assert.NoError(t, v.Struct(sample{Username: "alice", Status: "Offered", Preference: "Hybrid"}))
	assert.Error(t, v.Struct(sample{Username: "a b", Status: "Offered", Preference: "Hybrid"}))
	assert.Error(t, v.Struct(sample{Username: "alice", Status: "Ghosted", Preference: "Hybrid"}))
	assert.Error(t, v.Struct(sample{Username: "alice", Status: "Offered", Preference: "Mars"}))
}

func TestMustRegisterPanicsOnRejectedTag(t *testing.T) {
	assert.Panics(t, func() {
		mustRegister(validator.New(), "", func(validator.FieldLevel) bool { return true })
	})
}
