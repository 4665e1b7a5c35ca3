package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Merge(t *testing.T) {
	form := NewValidationError(map[string][]string{"email": {"Enter a valid email address."}})
	file := NewFieldError("resume", msgNoFile)

	merged := form.Merge(file)
	assert.Equal(t, ErrorCodeValidationFailed, merged.Code)
	assert.Equal(t, map[string][]string{
		"email":  {"Enter a valid email address."},
		"resume": {msgNoFile},
	}, merged.Fields)

	assert.Same(t, form, form.Merge(nil))
	assert.Same(t, file, (*Error)(nil).Merge(file))
}
