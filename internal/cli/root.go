package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/billie-coop/winprefs/internal/config"
	"github.com/billie-coop/winprefs/internal/logging"
	"github.com/billie-coop/winprefs/internal/settings"
	"github.com/billie-coop/winprefs/internal/tui/styles"
)

const usage = "Usage: winprefs <instance-id>"

// flags shared by every command
type rootFlags struct {
	configDir   string
	settingsDir string
	template    string
	theme       string
}

// env is everything a command needs, resolved once per run
type env struct {
	cfg      *config.Manager
	log      *logging.Logger
	dir      settings.Dir
	template settings.Template
	theme    string
}

// NewRootCommand builds the winprefs command tree
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "winprefs <instance-id>",
		Short: "Edit the preferences of a Window List applet instance",
		Long: `winprefs edits the settings file of one instance of the
windowlist@cobinja.de panel applet:

  <config dir>/cobinja/windowlist@cobinja.de/<instance-id>.json

A new instance is seeded from the default template. The file is watched
while the dialog is open, so changes written by the applet show up live.

Available commands:
  show     - Print an instance's settings
  set      - Change one setting and save immediately
  path     - Print the settings file path
  config   - Show or change winprefs' own configuration`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				// a usage error still exits 0
				fmt.Fprintln(cmd.OutOrStdout(), usage)
				return nil
			}

			e, err := setup(flags)
			if err != nil {
				return err
			}
			defer e.log.Close()

			return runDialog(cmd, e, args[0])
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configDir, "config-dir", "", "winprefs config directory (default <user config dir>/winprefs)")
	pf.StringVar(&flags.settingsDir, "settings-dir", "", "applet settings directory (default <user config dir>/cobinja/windowlist@cobinja.de)")
	pf.StringVar(&flags.template, "template", "", "default settings template used to seed new instances")
	pf.StringVar(&flags.theme, "theme", "", "color theme: "+fmt.Sprint(styles.NewManager("").List()))

	root.AddCommand(newShowCommand(flags))
	root.AddCommand(newSetCommand(flags))
	root.AddCommand(newPathCommand(flags))
	root.AddCommand(newConfigCommand(flags))

	return root
}

// Execute runs the root command with os.Args
func Execute() error {
	return NewRootCommand().Execute()
}

// setup loads the tool config and resolves directories, flags first
func setup(flags *rootFlags) (*env, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}
	c := cfg.Get()

	e := &env{
		cfg: cfg,
		log: logging.New(logging.Config{
			Filename: cfg.LogPath(),
			JSON:     c.JSONLogs,
		}),
		template: settings.Template{Path: c.TemplatePath},
		theme:    c.Theme,
	}
	if flags.template != "" {
		e.template.Path = flags.template
	}
	if flags.theme != "" {
		e.theme = flags.theme
	}

	if flags.settingsDir != "" {
		e.dir = settings.Dir(flags.settingsDir)
	} else {
		dir, err := settings.ResolveDir()
		if err != nil {
			e.log.Close()
			return nil, err
		}
		e.dir = dir
	}

	return e, nil
}

func loadConfig(flags *rootFlags) (*config.Manager, error) {
	dir := flags.configDir
	if dir == "" {
		d, err := config.DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}

	cfg := config.NewManager(dir)
	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// openStore opens an instance without watching, for one-shot commands
func (e *env) openStore(instanceID string) (*settings.Store, error) {
	return settings.Open(e.dir, instanceID,
		settings.WithTemplate(e.template),
		settings.WithLogger(e.log),
		settings.WithoutWatch(),
	)
}
