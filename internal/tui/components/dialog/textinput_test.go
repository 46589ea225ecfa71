package dialog

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestNumberInput(t *testing.T) {
	in := NewNumberInput(4)

	in.Update(tea.KeyPressMsg{Code: '1', Text: "1"})
	assert.Empty(t, in.Value(), "unfocused input ignores keys")

	in.Focus()
	for _, msg := range typed("12a34") {
		in.Update(msg)
	}
	assert.Equal(t, "1234", in.Value())

	in.Update(tea.KeyPressMsg{Code: tea.KeyHome})
	in.Update(tea.KeyPressMsg{Code: tea.KeyDelete})
	assert.Equal(t, "234", in.Value())

	in.Update(tea.KeyPressMsg{Code: '9', Text: "9"})
	assert.Equal(t, "9234", in.Value())

	n, ok := in.Int()
	assert.True(t, ok)
	assert.Equal(t, 9234, n)

	in.SetValue("")
	_, ok = in.Int()
	assert.False(t, ok)
}
