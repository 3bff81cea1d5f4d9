package config

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
display = :1

[notify]
owned = true
lost = false
`
	r := strings.NewReader(input)
	cfg, err := Parse(r)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Display != ":1" {
		t.Errorf("Expected display ':1', got '%s'", cfg.Display)
	}
	if !cfg.Notify.Owned {
		t.Error("Expected notify.owned to be true")
	}
	if cfg.Notify.Lost {
		t.Error("Expected notify.lost to be false")
	}
}

func TestConfigStringRoundTrip(t *testing.T) {
	cfg := New()
	cfg.Display = ":2"
	cfg.Notify.Owned = true

	parsed, err := Parse(strings.NewReader(cfg.String()))
	if err != nil {
		t.Fatalf("Parse(cfg.String()) failed: %v", err)
	}
	if parsed.Display != cfg.Display {
		t.Errorf("Display = %q, want %q", parsed.Display, cfg.Display)
	}
	if parsed.Notify.Owned != cfg.Notify.Owned {
		t.Errorf("Notify.Owned = %v, want %v", parsed.Notify.Owned, cfg.Notify.Owned)
	}
}
