package main

import (
	"flag"
	"fmt"
	"os"
)

type readCmd struct {
	r       *root
	fs      *flag.FlagSet
	primary bool
}

func (c *readCmd) Program() string        { return c.r.program }
func (c *readCmd) FlagSet() *flag.FlagSet { return c.fs }

func parseReadCmd(args []string, r *root) (*readCmd, error) {
	sub := r.subcommand("read")
	cmd := &readCmd{r: sub, fs: flag.NewFlagSet(sub.program, flag.ExitOnError)}
	cmd.fs.BoolVar(&cmd.primary, "primary", false, "read the PRIMARY selection instead of CLIPBOARD")
	cmd.fs.Usage = usageFunc(cmd)
	if err := cmd.fs.Parse(args); err != nil {
		return nil, err
	}
	return cmd, nil
}

func (c *readCmd) Run() error {
	var (
		text string
		err  error
	)
	if c.primary {
		text, err = c.r.clip.ReadPrimary()
	} else {
		text, err = c.r.clip.Read()
	}
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	_, err = fmt.Fprint(os.Stdout, text)
	return err
}
