package cli

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/billie-coop/winprefs/internal/settings"
	"github.com/billie-coop/winprefs/internal/tui"
	"github.com/billie-coop/winprefs/internal/tui/events"
	"github.com/billie-coop/winprefs/internal/tui/styles"
)

// runDialog opens the instance's store with a file watch and runs the
// preferences dialog until OK, Cancel or ctrl+c.
func runDialog(cmd *cobra.Command, e *env, instanceID string) error {
	themes, err := themeManager(e.theme)
	if err != nil {
		return err
	}

	store, err := settings.Open(e.dir, instanceID,
		settings.WithTemplate(e.template),
		settings.WithDebounce(e.cfg.Get().Debounce()),
		settings.WithLogger(e.log),
	)
	if err != nil {
		return err
	}
	defer func() {
		e.log.LogError(store.Close())
	}()

	styles.SetDefaultManager(themes)

	broker := events.NewBroker()
	defer broker.Clear()

	model := tui.New(store, broker, e.log)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil {
		return err
	}

	e.log.Logf("Dialog for %s closed: %s", store.Path(), model.Result().Action)
	return nil
}

// themeManager selects the named theme. An empty name keeps the default.
func themeManager(name string) (*styles.Manager, error) {
	m := styles.NewManager(styles.DefaultThemeName)
	if name == "" {
		return m, nil
	}
	if err := m.SetTheme(name); err != nil {
		return nil, err
	}
	return m, nil
}
