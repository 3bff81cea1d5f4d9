package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// HelpData is implemented by root and every subcommand so UsageError can
// render a consistent "usage: <program>" block, followed by its flags, for
// whichever one failed to parse.
type HelpData interface {
	Program() string
	FlagSet() *flag.FlagSet
}

type UsageError struct {
	of HelpData
}

func (e *UsageError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "usage: %s\n", e.of.Program())
	if fs := e.of.FlagSet(); fs != nil {
		var has bool
		fs.VisitAll(func(*flag.Flag) { has = true })
		if has {
			sb.WriteString("\nflags:\n")
			fs.VisitAll(func(f *flag.Flag) {
				fmt.Fprintf(&sb, "  -%s\n    \t%s (default %q)\n", f.Name, f.Usage, f.DefValue)
			})
		}
	}
	if e.of.Program() == "wclip" {
		sb.WriteString("\ncommands:\n")
		sb.WriteString("  read     print the CLIPBOARD selection to stdout\n")
		sb.WriteString("  write    set the CLIPBOARD selection from an argument or stdin\n")
		sb.WriteString("  paste    alias for read -primary\n")
		sb.WriteString("  copy     alias for write -primary\n")
		sb.WriteString("  watch    poll CLIPBOARD and print it whenever it changes\n")
		sb.WriteString("  version  print the build version\n")
	}
	return sb.String()
}

func usageFunc(of HelpData) func() {
	return func() {
		fmt.Fprint(os.Stderr, (&UsageError{of: of}).Error())
	}
}
