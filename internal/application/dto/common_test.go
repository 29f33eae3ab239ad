package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_DefaultPageEBounds(t *testing.T) {
	p := PageRequest{Limit: 0, Offset: -3}
	p.DefaultPage()
	assert.Equal(t, 50, p.Limit)
	assert.Equal(t, 0, p.Offset)

	p = PageRequest{Limit: 10000}
	p.DefaultPage()
	assert.Equal(t, MaxPageLimit, p.Limit)

	start, end := PageRequest{Limit: 2, Offset: 1}.Bounds(5)
	assert.Equal(t, 1, start)
	assert.Equal(t, 3, end)

	start, end = PageRequest{Limit: 2, Offset: 9}.Bounds(5)
	assert.Equal(t, 5, start)
	assert.Equal(t, 5, end)
}
