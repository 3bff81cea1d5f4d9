package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// copyCmd is the PRIMARY-selection counterpart of writeCmd.
type copyCmd struct {
	r  *root
	fs *flag.FlagSet
}

func (c *copyCmd) Program() string        { return c.r.program }
func (c *copyCmd) FlagSet() *flag.FlagSet { return c.fs }

func parseCopyCmd(args []string, r *root) (*copyCmd, error) {
	sub := r.subcommand("copy")
	cmd := &copyCmd{r: sub, fs: flag.NewFlagSet(sub.program, flag.ExitOnError)}
	cmd.fs.Usage = usageFunc(cmd)
	if err := cmd.fs.Parse(args); err != nil {
		return nil, err
	}
	return cmd, nil
}

func (c *copyCmd) text() (string, error) {
	if c.fs.NArg() > 0 {
		return strings.Join(c.fs.Args(), " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func (c *copyCmd) Run() error {
	text, err := c.text()
	if err != nil {
		return err
	}
	if err := c.r.clip.WritePrimary(text); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	c.r.notifyOwned("PRIMARY")
	return nil
}
