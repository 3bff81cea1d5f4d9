// Package notify sends optional desktop notifications about clipboard
// activity. It is never called by internal/x11clipboard itself — the core's
// worker goroutine only logs (see internal/x11clipboard/log.go) — this
// package is wired in by the CLI (cmd/wclip) for users who want a visible
// cue when a selection changes hands.
package notify

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hecrj/window-clipboard/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventOwned fires when this process takes ownership of a selection
	// (a successful Write/WritePrimary).
	EventOwned Event = "owned"
	// EventLost fires when this process sees that another client has taken
	// a selection: cmd/wclip's watch command fires it when a Read returns
	// a value different from the last one it saw. A SelectionClear on the
	// worker does not fire it.
	EventLost Event = "lost"
)

// EventPreference describes formatting for a notification event.
type EventPreference struct {
	Template string
}

// Preferences describes notification behaviour loaded from configuration.
type Preferences struct {
	Title  string
	Events map[Event]EventPreference
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: "window-clipboard",
		Events: map[Event]EventPreference{
			EventOwned: {Template: "Copied %s"},
			EventLost:  {Template: "Clipboard changed: %s"},
		},
	}
}

// LoadPreferences reads configuration from environment variables.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("WINDOW_CLIPBOARD_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	apply := func(key string, event Event) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			eventPrefs := prefs.Events[event]
			eventPrefs.Template = v
			prefs.Events[event] = eventPrefs
		}
	}
	apply("WINDOW_CLIPBOARD_NOTIFY_OWNED_TEXT", EventOwned)
	apply("WINDOW_CLIPBOARD_NOTIFY_LOST_TEXT", EventLost)
	return prefs
}

// Notifier sends OS-level notifications based on the configured preferences.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
}

// New creates a new Notifier using the provided preferences.
func New(prefs Preferences) *Notifier {
	cloned := Preferences{Title: prefs.Title, Events: make(map[Event]EventPreference, len(prefs.Events))}
	for k, v := range prefs.Events {
		cloned.Events[k] = v
	}
	return &Notifier{prefs: cloned, enabled: make(map[Event]bool)}
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	if n.enabled == nil {
		n.enabled = make(map[Event]bool)
	}
	n.enabled[event] = enabled
}

// Owned sends a notification that this process now owns a selection
// (selection is "CLIPBOARD" or "PRIMARY").
func (n *Notifier) Owned(selection string) {
	n.dispatch(EventOwned, selection, platform.Options{})
}

// Lost sends a notification that this process no longer owns a selection.
func (n *Notifier) Lost(selection string) {
	n.dispatch(EventLost, selection, platform.Options{})
}

func (n *Notifier) enabledFor(event Event) bool {
	if n == nil || n.enabled == nil {
		return false
	}
	return n.enabled[event]
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	if !n.enabledFor(event) {
		return
	}
	template := strings.TrimSpace(n.template(event))
	if template == "" {
		return
	}
	body := strings.TrimSpace(fmt.Sprintf(template, strings.TrimSpace(detail)))
	if body == "" {
		return
	}
	if err := platform.Notify(n.prefs.Title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}

func (n *Notifier) template(event Event) string {
	if n == nil {
		return ""
	}
	if pref, ok := n.prefs.Events[event]; ok {
		return pref.Template
	}
	return ""
}
