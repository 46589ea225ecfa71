// Package settings stores the per-instance preferences of the window list
// applet.
//
// Each applet instance has one flat JSON document:
//
//	~/.config/cobinja/windowlist@cobinja.de/
//	└── <instance-id>.json
//
// A new instance is seeded with a copy of the bundled default template:
//
//	{
//	  "caption-type": 0,
//	  "display-caption-for": 3,
//	  "display-number": 2,
//	  "group-windows": 2,
//	  "display-pinned": true,
//	  "hover-preview": true,
//	  "preview-timeout-show": 500,
//	  "preview-timeout-hide": 300,
//	  "animation-time": 200
//	}
//
// Values are booleans or integers. Key order is preserved from load to
// write so files stay diff-friendly.
//
// The Store keeps the document in memory and compares it to a snapshot of
// what was last loaded or written to decide whether anything needs saving.
// Persist is a no-op until something changed. When another process edits
// the file, the Store's watcher signals on Changes and the owner calls
// Reload from its event loop to merge the new values in.
//
// Example usage:
//
//	dir, err := settings.ResolveDir()
//	if err != nil {
//		return err
//	}
//	store, err := settings.Open(dir, "42")
//	if err != nil {
//		return err
//	}
//	defer store.Close()
//
//	store.SetEntry(settings.KeyHoverPreview, settings.Bool(false), false)
//	if store.Changed() {
//		err = store.Persist()
//	}
package settings
