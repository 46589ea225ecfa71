package dialog

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/billie-coop/winprefs/internal/tui/styles"
)

// NumberInput is a digits-only text field used to type durations
type NumberInput struct {
	value     string
	maxLen    int
	focused   bool
	cursorPos int
}

// NewNumberInput creates an input that accepts at most maxLen digits
func NewNumberInput(maxLen int) *NumberInput {
	return &NumberInput{maxLen: maxLen}
}

// Value returns the current text
func (t *NumberInput) Value() string {
	return t.value
}

// Int parses the current text
func (t *NumberInput) Int() (int, bool) {
	n, err := strconv.Atoi(t.value)
	return n, err == nil
}

// SetValue sets the text and moves the cursor to the end
func (t *NumberInput) SetValue(value string) {
	t.value = value
	t.cursorPos = len(value)
}

// Focus focuses the input
func (t *NumberInput) Focus() {
	t.focused = true
}

// Blur removes focus
func (t *NumberInput) Blur() {
	t.focused = false
}

// Focused reports whether the input takes keys
func (t *NumberInput) Focused() bool {
	return t.focused
}

// Update handles input events
func (t *NumberInput) Update(msg tea.Msg) tea.Cmd {
	if !t.focused {
		return nil
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "backspace":
		if t.cursorPos > 0 {
			t.value = t.value[:t.cursorPos-1] + t.value[t.cursorPos:]
			t.cursorPos--
		}
	case "delete":
		if t.cursorPos < len(t.value) {
			t.value = t.value[:t.cursorPos] + t.value[t.cursorPos+1:]
		}
	case "left":
		if t.cursorPos > 0 {
			t.cursorPos--
		}
	case "right":
		if t.cursorPos < len(t.value) {
			t.cursorPos++
		}
	case "home", "ctrl+a":
		t.cursorPos = 0
	case "end", "ctrl+e":
		t.cursorPos = len(t.value)
	default:
		s := keyMsg.String()
		if len(s) == 1 && s[0] >= '0' && s[0] <= '9' && len(t.value) < t.maxLen {
			t.value = t.value[:t.cursorPos] + s + t.value[t.cursorPos:]
			t.cursorPos++
		}
	}

	return nil
}

// View renders the input
func (t *NumberInput) View() string {
	theme := styles.CurrentTheme()
	style := lipgloss.NewStyle().Foreground(theme.FgBase)

	if !t.focused {
		return style.Render(t.value)
	}

	cursor := lipgloss.NewStyle().
		Background(theme.Accent).
		Foreground(theme.FgInverted)

	if t.cursorPos < len(t.value) {
		return style.Render(t.value[:t.cursorPos]) +
			cursor.Render(string(t.value[t.cursorPos])) +
			style.Render(t.value[t.cursorPos+1:])
	}
	return style.Render(t.value) + cursor.Render(" ")
}
