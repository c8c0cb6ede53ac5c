package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	meta := NewPaginationMeta(1, 50, 0)
	assert.Equal(t, 0, meta.Pages)

	meta = NewPaginationMeta(1, 50, 50)
	assert.Equal(t, 1, meta.Pages)

	meta = NewPaginationMeta(2, 50, 51)
	assert.Equal(t, 2, meta.Pages)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 51, meta.Total)

	meta = NewPaginationMeta(1, 0, 10)
	assert.Equal(t, 0, meta.Pages)
}
