package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	clipboard "github.com/hecrj/window-clipboard"
	"github.com/hecrj/window-clipboard/internal/config"
	"github.com/hecrj/window-clipboard/internal/notify"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	clip        clipboard.Clipboard
	notifier    *notify.Notifier
	config      *config.Config
	ownedAlerts bool
	lostAlerts  bool
	display     string
}

func (r *root) Program() string {
	return r.program
}

func (r *root) subcommand(name string) *root {
	program := strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
	return &root{
		program:     program,
		clip:        r.clip,
		notifier:    r.notifier,
		config:      r.config,
		ownedAlerts: r.ownedAlerts,
		lostAlerts:  r.lostAlerts,
		display:     r.display,
	}
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	prefs := notify.LoadPreferences()
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:       flag.NewFlagSet("wclip", flag.ExitOnError),
		program:  "wclip",
		notifier: notify.New(prefs),
		config:   cfg,
	}
	r.fs.BoolVar(&r.ownedAlerts, "notify-owned", cfg.Notify.Owned, "show a desktop notification after taking ownership of a selection")
	r.fs.BoolVar(&r.lostAlerts, "notify-lost", cfg.Notify.Lost, "show a desktop notification after losing ownership of a selection")

	// Precedence: CLI > Env > Config > default ($DISPLAY).
	r.fs.StringVar(&r.display, "display", "", "X11 display name to connect to (default: config, then $DISPLAY)")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventOwned, r.ownedAlerts)
		r.notifier.Enable(notify.EventLost, r.lostAlerts)
	}

	// Precedence: CLI flag > $WINDOW_CLIPBOARD_DISPLAY > config file >
	// $DISPLAY (honoured by ConnectX11 itself when display is "").
	display := r.display
	if display == "" {
		display = os.Getenv("WINDOW_CLIPBOARD_DISPLAY")
	}
	if display == "" {
		display = r.config.Display
	}

	c, err := clipboard.ConnectX11(display)
	if err != nil {
		return fmt.Errorf("connect to clipboard: %w", err)
	}
	r.clip = c

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var cmd runnable
	switch cmdName {
	case "read":
		cmd, err = parseReadCmd(subArgs, r)
	case "write":
		cmd, err = parseWriteCmd(subArgs, r)
	case "copy":
		cmd, err = parseCopyCmd(subArgs, r)
	case "paste":
		cmd, err = parsePasteCmd(subArgs, r)
	case "watch":
		cmd, err = parseWatchCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	if runErr := cmd.Run(); runErr != nil {
		return runErr
	}
	return r.clip.Close()
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (r *root) notifyOwned(selection string) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Owned(selection)
}

func (r *root) notifyLost(selection string) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Lost(selection)
}
