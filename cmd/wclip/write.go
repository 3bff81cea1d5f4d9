package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

type writeCmd struct {
	r       *root
	fs      *flag.FlagSet
	primary bool
}

func (c *writeCmd) Program() string        { return c.r.program }
func (c *writeCmd) FlagSet() *flag.FlagSet { return c.fs }

func parseWriteCmd(args []string, r *root) (*writeCmd, error) {
	sub := r.subcommand("write")
	cmd := &writeCmd{r: sub, fs: flag.NewFlagSet(sub.program, flag.ExitOnError)}
	cmd.fs.BoolVar(&cmd.primary, "primary", false, "write the PRIMARY selection instead of CLIPBOARD")
	cmd.fs.Usage = usageFunc(cmd)
	if err := cmd.fs.Parse(args); err != nil {
		return nil, err
	}
	return cmd, nil
}

// text returns the write command's content: the positional arguments joined
// by single spaces if any are given, otherwise all of stdin.
func (c *writeCmd) text() (string, error) {
	if c.fs.NArg() > 0 {
		return strings.Join(c.fs.Args(), " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func (c *writeCmd) Run() error {
	text, err := c.text()
	if err != nil {
		return err
	}

	selection := "CLIPBOARD"
	if c.primary {
		selection = "PRIMARY"
		err = c.r.clip.WritePrimary(text)
	} else {
		err = c.r.clip.Write(text)
	}
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}
	c.r.notifyOwned(selection)
	return nil
}
