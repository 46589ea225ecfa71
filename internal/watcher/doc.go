// Package watcher reports changes to individual files with debouncing.
//
// # Overview
//
// Editors and other writers rarely change a file in one step: they may
// truncate and write, or write a temp file and rename it into place. A
// FileWatcher collects those bursts and calls back once the file has been
// quiet for the debounce delay.
//
// The parent directory of every target is watched, so a file replaced by
// a rename is still followed after the swap.
//
// # Usage
//
//	w, err := watcher.NewWatcher(100*time.Millisecond, func(paths []string) {
//	    select {
//	    case changes <- struct{}{}:
//	    default:
//	    }
//	})
//	if err != nil {
//	    return err
//	}
//	defer w.Stop()
//
//	if err := w.Add("/home/me/.config/cobinja/windowlist@cobinja.de/42.json"); err != nil {
//	    return err
//	}
//
// The callback runs on the watcher's goroutine. Callers that own state
// should hand the signal to their own loop rather than mutate from it.
package watcher
