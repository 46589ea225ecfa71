package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type widget struct {
	FocusableBase
	SizeableBase
}

var (
	_ Focusable = (*widget)(nil)
	_ Sizeable  = (*widget)(nil)
)

func TestBases(t *testing.T) {
	w := &widget{}
	assert.False(t, w.IsFocused())
	w.Focus()
	assert.True(t, w.IsFocused())
	w.Blur()
	assert.False(t, w.IsFocused())

	w.SetSize(80, 24)
	width, height := w.GetSize()
	assert.Equal(t, 80, width)
	assert.Equal(t, 24, height)
	assert.Equal(t, 72, w.ContentWidth(8, 20))
	assert.Equal(t, 20, w.ContentWidth(70, 20))
}
