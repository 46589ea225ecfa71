package status

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/rivo/uniseg"

	"github.com/billie-coop/winprefs/internal/tui/styles"
)

// MessageType represents the type of status message
type MessageType int

const (
	Info MessageType = iota
	Warning
	Error
	Success
)

// ParseType maps an event payload type ("info", "warning", ...) to a MessageType
func ParseType(s string) MessageType {
	switch s {
	case "warning":
		return Warning
	case "error":
		return Error
	case "success":
		return Success
	default:
		return Info
	}
}

// StatusMessage represents a status bar message
type StatusMessage struct {
	Content   string
	Type      MessageType
	Timestamp time.Time
}

// Component is a one-line status bar: fixed left text and a temporary
// message on the right.
type Component struct {
	message     *StatusMessage
	width       int
	leftContent string

	clearAfter time.Duration
}

// New creates a new status bar component
func New() *Component {
	return &Component{
		clearAfter: 5 * time.Second,
	}
}

// SetMessage sets a status message and schedules its removal
func (c *Component) SetMessage(content string, msgType MessageType) tea.Cmd {
	stamp := time.Now()
	c.message = &StatusMessage{
		Content:   content,
		Type:      msgType,
		Timestamp: stamp,
	}

	return tea.Tick(c.clearAfter, func(time.Time) tea.Msg {
		return clearMessageMsg{timestamp: stamp}
	})
}

// Message returns the current message, if any
func (c *Component) Message() *StatusMessage {
	return c.message
}

// SetLeftContent sets the left side content
func (c *Component) SetLeftContent(content string) {
	c.leftContent = content
}

// SetSize implements the Sizeable interface
func (c *Component) SetSize(width, height int) tea.Cmd {
	c.width = width
	return nil
}

// clearMessageMsg is sent when a status message should be cleared
type clearMessageMsg struct {
	timestamp time.Time
}

// Init implements the Component interface
func (c *Component) Init() tea.Cmd {
	return nil
}

// Update implements the Component interface
func (c *Component) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(clearMessageMsg); ok {
		// a newer message may have replaced the one this tick was for
		if c.message != nil && msg.timestamp.Equal(c.message.Timestamp) {
			c.message = nil
		}
	}
	return c, nil
}

// View implements the Component interface
func (c *Component) View() string {
	if c.width == 0 {
		return ""
	}

	s := styles.CurrentTheme().S()
	available := c.width - 2 // padding

	left := c.leftContent
	right := ""
	if c.message != nil {
		right = c.formatMessage()
	}

	rightWidth := uniseg.StringWidth(right)
	if rightWidth > available/2 && rightWidth > 40 {
		right = truncate(right, max(available/2, 40))
		rightWidth = uniseg.StringWidth(right)
	}
	left = truncate(left, available-rightWidth-1)

	gap := available - uniseg.StringWidth(left) - rightWidth
	content := left
	if right != "" {
		content += strings.Repeat(" ", max(gap, 1)) + c.styleFor(s).Render(right)
	}

	return s.StatusBar.Width(c.width).Render(content)
}

func (c *Component) styleFor(s *styles.Styles) lipgloss.Style {
	switch c.message.Type {
	case Success:
		return s.Success
	case Warning:
		return s.Warning
	case Error:
		return s.Error
	default:
		return s.Info
	}
}

// formatMessage prefixes the message with a type marker
func (c *Component) formatMessage() string {
	switch c.message.Type {
	case Success:
		return "✓ " + c.message.Content
	case Warning:
		return "! " + c.message.Content
	case Error:
		return "✗ " + c.message.Content
	default:
		return c.message.Content
	}
}

// truncate cuts s to at most width cells, ending with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}

	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > width-1 {
			break
		}
		b.WriteString(g.Str())
		used += w
	}
	return b.String() + "…"
}
