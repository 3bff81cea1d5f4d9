package main

import (
	"flag"
	"fmt"
	"os"
)

// pasteCmd is the PRIMARY-selection counterpart of readCmd: "paste" is what
// middle-click historically does on X11, so it reads PRIMARY rather than
// CLIPBOARD without needing a -primary flag.
type pasteCmd struct {
	r  *root
	fs *flag.FlagSet
}

func (c *pasteCmd) Program() string        { return c.r.program }
func (c *pasteCmd) FlagSet() *flag.FlagSet { return c.fs }

func parsePasteCmd(args []string, r *root) (*pasteCmd, error) {
	sub := r.subcommand("paste")
	cmd := &pasteCmd{r: sub, fs: flag.NewFlagSet(sub.program, flag.ExitOnError)}
	cmd.fs.Usage = usageFunc(cmd)
	if err := cmd.fs.Parse(args); err != nil {
		return nil, err
	}
	return cmd, nil
}

func (c *pasteCmd) Run() error {
	text, err := c.r.clip.ReadPrimary()
	if err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	_, err = fmt.Fprint(os.Stdout, text)
	return err
}
