package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
	assert.Equal(t, "user@example.com", NormalizeEmail("user+tag@example.com"))
	assert.Equal(t, "johndoe@gmail.com", NormalizeEmail("John.Doe@gmail.com"))
	assert.Equal(t, "johndoe@gmail.com", NormalizeEmail("john.doe+spam@googlemail.com"))
	assert.Equal(t, "user.name@company.org", NormalizeEmail("User.Name@company.org"))
	assert.Equal(t, "invalid", NormalizeEmail("invalid"))
}
