// Package config holds winprefs' own configuration, separate from the
// applet settings it edits.
//
// Configuration File Structure:
//
//	~/.config/winprefs/
//	├── config.json        # Tool configuration
//	└── winprefs.log       # Rotating log (default location)
//
// config.json is created with defaults on first run:
//
//	{
//	  "template_path": "",
//	  "theme": "cobalt",
//	  "debounce_ms": 100,
//	  "log_file": "",
//	  "json_logs": false
//	}
//
// An empty template_path selects the default template bundled with the
// binary. Path values can reference environment variables using $VAR or
// ${VAR} syntax:
//
//	{
//	  "template_path": "${XDG_DATA_HOME}/cinnamon/applets/windowlist@cobinja.de/default_settings.json"
//	}
//
// Example usage:
//
//	manager := config.NewManager(dir)
//	if err := manager.Load(); err != nil {
//		return err
//	}
//
//	cfg := manager.Get()
//	fmt.Println("Theme:", cfg.Theme)
//
//	// Update a setting
//	manager.Set("theme", "ember")
package config
