// Command watch-settings follows one applet instance's settings file and
// prints the decoded options every time another process changes it.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/billie-coop/winprefs/internal/settings"
)

func main() {
	dir := flag.String("dir", "", "settings directory (default <user config dir>/cobinja/windowlist@cobinja.de)")
	debounce := flag.Duration("debounce", 100*time.Millisecond, "settle time after a change")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("Usage: watch-settings [-dir path] <instance-id>")
		return
	}

	settingsDir := settings.Dir(*dir)
	if *dir == "" {
		d, err := settings.ResolveDir()
		if err != nil {
			log.Fatal(err)
		}
		settingsDir = d
	}

	store, err := settings.Open(settingsDir, flag.Arg(0), settings.WithDebounce(*debounce))
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("👀 Watching %s\n", store.Path())
	printOptions(store)

	for {
		select {
		case <-ctx.Done():
			return
		case <-store.Changes():
			if err := store.Reload(); err != nil {
				log.Printf("reload failed: %v", err)
				continue
			}
			printOptions(store)
		}
	}
}

func printOptions(store *settings.Store) {
	opts, err := settings.OptionsFrom(store.Document())
	if err != nil {
		log.Printf("invalid settings: %v", err)
		return
	}

	fmt.Printf("%s caption=%s for=%s number=%s group=%s pinned=%t preview=%t show=%s hide=%s animation=%s\n",
		time.Now().Format(time.TimeOnly),
		opts.CaptionType, opts.DisplayCaptionFor, opts.DisplayNumber, opts.GroupWindows,
		opts.DisplayPinned, opts.HoverPreview,
		opts.PreviewTimeoutShow, opts.PreviewTimeoutHide, opts.AnimationTime,
	)
}
